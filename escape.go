package netregex

import (
	"strings"

	"go.dw1.io/netregex/engine"
)

// Escape returns a pattern that matches text literally.
func Escape(text string) string {
	return engine.QuoteMeta(text)
}

// Unescape removes the backslash from every escaped character in text. A
// backslash before a newline or at the end of text is kept.
func Unescape(text string) string {
	if !strings.Contains(text, `\`) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] == '\\' && i+1 < len(text) && text[i+1] != '\n' {
			i++
		}
		b.WriteByte(text[i])
	}

	return b.String()
}
