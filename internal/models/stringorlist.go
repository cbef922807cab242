package models

import (
	"encoding/json"
	"fmt"
)

// StringOrList accepts either a JSON string or an array of strings and
// normalizes both to a slice. A bare string becomes a one-element list.
// Marshalling always emits an array.
type StringOrList []string

func (s *StringOrList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*s = StringOrList{}
		} else {
			*s = StringOrList{single}
		}
		return nil
	}

	return fmt.Errorf("expected string or list of strings, got %s", string(data))
}

func (s StringOrList) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}
