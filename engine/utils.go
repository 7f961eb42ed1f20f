package engine

import (
	"strings"
	"unicode/utf8"
)

// pcreOnly lists constructs RE2/coregex cannot execute, based on
// pcre2syntax and the .NET grouping constructs regexp2 understands.
//
// Ref: https://pcre2project.github.io/pcre2/doc/pcre2syntax/
var pcreOnly = []string{
	// Lookarounds
	"(?=", "(?!", "(?<=", "(?<!",
	"(*pla:", "(*positive_lookahead:", "(*nla:", "(*negative_lookahead:",
	"(*plb:", "(*positive_lookbehind:", "(*nlb:", "(*negative_lookbehind:",
	// Atomic, branch reset, conditional and comment groups
	"(?>", "(*atomic:", "(?|", "(?(", "(?#",
	// Recursion and subroutine calls
	"(?R)", "(?P>", "(?&",
	// Backtracking control verbs
	"(*ACCEPT)", "(*FAIL)", "(*F)", "(*MARK:", "(*:", "(*COMMIT)", "(*PRUNE)", "(*SKIP)", "(*THEN)",
	// Named backreferences
	"(?P=", `\k<`, `\k'`, `\k{`, `\g`,
	// Escapes Go does not support or treats differently
	`\h`, `\H`, `\v`, `\V`, `\R`, `\X`, `\N`, `\K`, `\e`, `\f`, `\a`, `\C`,
	`\o{`, `\x{`, `\p{`, `\P{`,
	// Anchors beyond ^ and $
	`\A`, `\Z`, `\z`, `\G`,
	// .NET named groups with quotes
	"(?'",
}

// needsPCRE checks if the pattern contains PCRE2/.NET-only features, or
// constructs coregex does not match rune by rune.
func needsPCRE(pattern string) bool {
	for _, v := range pcreOnly {
		if strings.Contains(pattern, v) {
			return true
		}
	}

	// Numbered backreferences: \1, \2, ...
	for i := 0; i < len(pattern)-1; i++ {
		if pattern[i] != '\\' {
			continue
		}
		if next := pattern[i+1]; next >= '1' && next <= '9' {
			return true
		}
		i++
	}

	info := inspect(pattern)

	// coregex steps over non-ASCII input byte by byte in single-character
	// constructs such as . and [^a].
	if info.wideRune {
		return true
	}

	// NOTE(dwisiswant0): Go supports (?P<name>...) and, since 1.22,
	// (?<name>...). Balancing groups (?<a-b>...) are .NET only.
	for _, name := range info.names {
		if strings.ContainsAny(name, "-") {
			return true
		}
	}

	return false
}

// normalizePos clamps pos into s and moves it forward to a rune boundary.
// It reports false when pos lies past the end of s.
func normalizePos(s string, pos int) (int, bool) {
	if pos > len(s) {
		return 0, false
	}
	if pos < 0 {
		return 0, true
	}

	for pos < len(s) && !utf8.RuneStart(s[pos]) {
		pos++
	}

	return pos, true
}

// shift offsets a submatch index slice found in s[pos:] back into s.
func shift(loc []int, pos int) []int {
	if loc == nil || pos == 0 {
		return loc
	}

	for i, v := range loc {
		if v >= 0 {
			loc[i] = v + pos
		}
	}

	return loc
}

// runeOffsets returns the byte offset of every rune index in s, including the
// end of the string.
func runeOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}

	return append(offsets, len(s))
}
