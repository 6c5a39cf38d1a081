package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizerContent(t *testing.T) {
	s := NewSanitizer()

	out := s.Content(`<p>hello <strong>world</strong></p><script>alert(1)</script>`)
	assert.Contains(t, out, "<strong>world</strong>")
	assert.NotContains(t, out, "<script>")

	out = s.Content(`<a href="javascript:alert(1)">x</a>`)
	assert.NotContains(t, out, "javascript:")
}

func TestSanitizerPlainText(t *testing.T) {
	s := NewSanitizer()

	assert.Equal(t, "a headline", s.PlainText(`<em>a headline</em>`))
	assert.Equal(t, "plain already", s.PlainText("plain already"))
}
