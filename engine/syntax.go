package engine

import (
	"strings"
	"unicode/utf8"
)

// syntaxInfo is what a shallow scan of a pattern reveals.
type syntaxInfo struct {
	// names lists capturing groups in the order their opening parenthesis
	// appears; unnamed groups are "". A repeated name is listed once.
	names []string
	// leftContext is set if matching can look at text before the match.
	leftContext bool
	// wideRune is set if a single-character construct can match a non-ASCII
	// rune: ".", a negated class, a class with non-ASCII members, or \W, \S,
	// \D, \p and \P. coregex matches those one byte at a time.
	wideRune bool
}

// inspect scans pattern for capturing groups, left-context assertions and
// rune-width constructs. It tracks escapes and character classes but does
// not otherwise parse.
func inspect(pattern string) syntaxInfo {
	var info syntaxInfo
	seen := make(map[string]bool)

	inClass := false
	classStart := 0
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]

		if c == '\\' {
			if i+1 < len(pattern) {
				switch pattern[i+1] {
				case 'b', 'B', 'A', 'G':
					info.leftContext = info.leftContext || !inClass
				case 'W', 'S', 'D', 'p', 'P':
					info.wideRune = true
				}
			}
			i++
			continue
		}

		if inClass {
			switch {
			case c >= utf8.RuneSelf:
				info.wideRune = true
			case c == ']' && i > classStart:
				inClass = false
			case c == '[' && i+1 < len(pattern) && pattern[i+1] == ':':
				if end := strings.Index(pattern[i+2:], ":]"); end >= 0 {
					if strings.HasPrefix(pattern[i+2:], "^") {
						info.wideRune = true
					}
					i += end + 3
				}
			}
			continue
		}

		switch c {
		case '[':
			inClass = true
			classStart = i + 1
			if classStart < len(pattern) && pattern[classStart] == '^' {
				info.wideRune = true
				classStart++
			}
		case '.':
			info.wideRune = true
		case '^':
			info.leftContext = true
		case '(':
			name, capture, lookbehind := groupOpener(pattern[i+1:])
			if lookbehind {
				info.leftContext = true
			}
			if !capture {
				continue
			}
			if name != "" {
				if seen[name] {
					continue
				}
				seen[name] = true
			}
			info.names = append(info.names, name)
		}
	}

	return info
}

// groupOpener classifies the group whose "(" precedes rest.
func groupOpener(rest string) (name string, capture, lookbehind bool) {
	switch {
	case rest == "" || rest[0] == '*':
		return "", false, false
	case rest[0] != '?':
		return "", true, false
	case strings.HasPrefix(rest, "?<=") || strings.HasPrefix(rest, "?<!"):
		return "", false, true
	case strings.HasPrefix(rest, "?P<"):
		return groupName(rest[3:], '>')
	case strings.HasPrefix(rest, "?<"):
		return groupName(rest[2:], '>')
	case strings.HasPrefix(rest, "?'"):
		return groupName(rest[2:], '\'')
	}

	return "", false, false
}

func groupName(s string, end byte) (string, bool, bool) {
	i := strings.IndexByte(s, end)
	if i <= 0 {
		return "", false, false
	}

	return s[:i], true, false
}
