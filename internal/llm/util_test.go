package llm

import "testing"

// TestCleanJSONBlock tests stripping of markdown code fences from model
// responses
func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Bare JSON passes through",
			input: `{"skills": ["Go"]}`,
			want:  `{"skills": ["Go"]}`,
		},
		{
			name:  "json fence",
			input: "```json\n{\"skills\": [\"Go\"]}\n```",
			want:  `{"skills": ["Go"]}`,
		},
		{
			name:  "Plain fence",
			input: "```\n{\"skills\": [\"Go\"]}\n```",
			want:  `{"skills": ["Go"]}`,
		},
		{
			name:  "Fence with surrounding whitespace",
			input: "\n  ```json\n{\"a\": 1}\n```  \n",
			want:  `{"a": 1}`,
		},
		{
			name:  "Fence with language identifier",
			input: "```javascript\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "Brace on fence line is kept",
			input: "```{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "Unfenced prose is untouched",
			input: "Here is the JSON you asked for",
			want:  "Here is the JSON you asked for",
		},
		{
			name:  "Empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanJSONBlock(tt.input); got != tt.want {
				t.Errorf("CleanJSONBlock(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
