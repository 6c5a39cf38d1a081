package markup

import "github.com/microcosm-cc/bluemonday"

// Sanitizer strips dangerous markup from editorial content before storage.
// Article bodies allow the usual formatting tags; excerpts and titles are
// reduced to plain text.
type Sanitizer struct {
	content *bluemonday.Policy
	strict  *bluemonday.Policy
}

// NewSanitizer builds the shared policies once; bluemonday policies are safe
// for concurrent use.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{
		content: bluemonday.UGCPolicy(),
		strict:  bluemonday.StrictPolicy(),
	}
}

// Content sanitizes an article or page body, keeping user-generated-content
// formatting.
func (s *Sanitizer) Content(input string) string {
	return s.content.Sanitize(input)
}

// PlainText strips all markup, for titles and excerpts.
func (s *Sanitizer) PlainText(input string) string {
	return s.strict.Sanitize(input)
}
