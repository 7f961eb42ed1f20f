package netregex

import (
	"strconv"
	"strings"
)

// rewriteNamedGroups turns every .NET named group opener "(?<" into the host
// form "(?P<". Lookbehinds, escaped characters and character class members
// are left alone, and so is everything else in the pattern.
func rewriteNamedGroups(pattern string) string {
	if !strings.Contains(pattern, "(?<") {
		return pattern
	}

	var b strings.Builder
	b.Grow(len(pattern) + 8)

	inClass := false
	classStart := 0
	last := 0
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; {
		case c == '\\':
			i++
		case inClass:
			if c == ']' && i > classStart {
				inClass = false
			}
		case c == '[':
			inClass = true
			classStart = i + 1
			if classStart < len(pattern) && pattern[classStart] == '^' {
				classStart++
			}
		case c == '(' && strings.HasPrefix(pattern[i+1:], "?<"):
			rest := pattern[i+3:]
			if rest == "" || rest[0] == '=' || rest[0] == '!' {
				continue
			}
			b.WriteString(pattern[last : i+2])
			b.WriteByte('P')
			last = i + 2
		}
	}
	b.WriteString(pattern[last:])

	return b.String()
}

func quote(s string) string {
	if strconv.CanBackquote(s) {
		return "`" + s + "`"
	}

	return strconv.Quote(s)
}
