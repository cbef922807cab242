package document

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	// paragraphOpen matches a paragraph element open tag. The character
	// class keeps it from matching other w:p-prefixed elements (w:pgSz,
	// w:pPr) that can appear outside a paragraph.
	paragraphOpen = regexp.MustCompile(`<w:p[ >/]`)
	runText       = regexp.MustCompile(`(?s)<w:t[^>]*>(.*?)</w:t>`)
	// Word writes empty paragraphs as self-closing elements. Normalizing
	// them to open/close pairs keeps the split below paragraph-accurate.
	selfClosedPara = regexp.MustCompile(`<w:p(\s[^>]*)?/>`)
)

// loadWordDocument extracts all paragraph texts from a .docx file in
// document order, joined with newline separators. Paragraphs with no text
// still contribute an empty line, preserving the document's spacing.
func loadWordDocument(path string) (string, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open Word document %s: %w", path, err)
	}
	defer r.Close()

	return strings.Join(paragraphTexts(r.Editable().GetContent()), "\n"), nil
}

// paragraphTexts splits WordprocessingML into per-paragraph plain text.
// Each paragraph's text is the concatenation of its run texts with XML
// entities decoded.
func paragraphTexts(documentXML string) []string {
	documentXML = selfClosedPara.ReplaceAllString(documentXML, "<w:p></w:p>")

	var paras []string
	for _, chunk := range strings.Split(documentXML, "</w:p>") {
		loc := paragraphOpen.FindStringIndex(chunk)
		if loc == nil {
			continue
		}

		var sb strings.Builder
		for _, m := range runText.FindAllStringSubmatch(chunk[loc[0]:], -1) {
			sb.WriteString(html.UnescapeString(m[1]))
		}
		paras = append(paras, sb.String())
	}
	return paras
}
