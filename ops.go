package netregex

import (
	"iter"
	"unicode/utf8"
)

// MatchEvaluator computes the replacement text for a match.
type MatchEvaluator func(m *Match) string

// Match returns the first match in input, or nil.
func (re *Regex) Match(input string) *Match {
	return re.MatchAt(input, 0)
}

// MatchAt returns the first match in input that starts at or after byte
// offset offset, or nil. Text before offset is still visible to anchors and
// lookbehinds, and positions are relative to input. An offset past the end of
// input yields nil.
func (re *Regex) MatchAt(input string, offset int) *Match {
	return newMatch(re, input, re.host.FindStringSubmatchIndexAt(input, offset))
}

// Matches returns every non-overlapping match in input, left to right.
func (re *Regex) Matches(input string) iter.Seq[*Match] {
	return re.MatchesAt(input, 0)
}

// MatchesAt is like Matches but starts searching at byte offset offset.
// Matches are found lazily as the sequence is consumed. After an empty match
// the search moves on by one character.
func (re *Regex) MatchesAt(input string, offset int) iter.Seq[*Match] {
	return func(yield func(*Match) bool) {
		for spans := range re.host.AllStringSubmatchIndex(input, offset) {
			if !yield(newMatch(re, input, spans)) {
				return
			}
		}
	}
}

// FindAll collects MatchesAt(input, offset) into a slice.
func (re *Regex) FindAll(input string, offset int) []*Match {
	var out []*Match
	for m := range re.MatchesAt(input, offset) {
		out = append(out, m)
	}

	return out
}

// IsMatch reports whether input contains a match.
func (re *Regex) IsMatch(input string) bool {
	return re.IsMatchAt(input, 0)
}

// IsMatchAt reports whether input contains a match at or after byte offset
// offset.
func (re *Regex) IsMatchAt(input string, offset int) bool {
	return re.host.MatchStringAt(input, offset)
}

// Replace replaces every match in input with the .NET replacement template
// replacement. $1, ${name}, $& and $$ are understood; a reference to a group
// re does not have is copied literally.
func (re *Regex) Replace(input, replacement string) string {
	return re.ReplaceN(input, replacement, -1, 0)
}

// ReplaceN replaces at most limit matches (all if limit < 0) in
// input[offset:]; input[:offset] is copied through unchanged.
func (re *Regex) ReplaceN(input, replacement string, limit, offset int) string {
	template := re.rewritePlaceholders(replacement)

	return re.replace(input, limit, offset, func(dst []byte, suffix string, spans []int) []byte {
		return re.host.Expand(dst, template, suffix, spans)
	})
}

// ReplaceFunc replaces every match in input with the result of eval.
func (re *Regex) ReplaceFunc(input string, eval MatchEvaluator) string {
	return re.ReplaceFuncN(input, eval, -1, 0)
}

// ReplaceFuncN is like ReplaceN but computes each replacement with eval.
// The matches passed to eval describe input[offset:], so their positions
// are relative to offset.
func (re *Regex) ReplaceFuncN(input string, eval MatchEvaluator, limit, offset int) string {
	return re.replace(input, limit, offset, func(dst []byte, suffix string, spans []int) []byte {
		return append(dst, eval(newMatch(re, suffix, spans))...)
	})
}

func (re *Regex) replace(input string, limit, offset int, repl func(dst []byte, suffix string, spans []int) []byte) string {
	if limit == 0 {
		return input
	}

	offset = clampOffset(input, offset)
	suffix := input[offset:]

	var buf []byte
	last, n := 0, 0
	for spans := range re.host.AllStringSubmatchIndex(suffix, 0) {
		if buf == nil {
			buf = make([]byte, 0, len(input))
			buf = append(buf, input[:offset]...)
		}
		buf = append(buf, suffix[last:spans[0]]...)
		buf = repl(buf, suffix, spans)
		last = spans[1]

		if n++; limit > 0 && n >= limit {
			break
		}
	}
	if buf == nil {
		return input
	}

	return string(append(buf, suffix[last:]...))
}

// Split splits input around every match.
func (re *Regex) Split(input string) []string {
	return re.SplitN(input, -1, 0)
}

// SplitN splits input[offset:] around the matches of re. At most limit
// matches split the input (all if limit < 0, none if limit is 0); the last
// piece holds the unsplit remainder. Text captured by groups that took part
// in a match is inserted after the piece preceding that match, and the
// result is then cut to limit entries.
func (re *Regex) SplitN(input string, limit, offset int) []string {
	if limit == 0 {
		return nil
	}

	input = input[clampOffset(input, offset):]
	if limit == 1 {
		return []string{input}
	}

	var out []string
	last, pieces := 0, 1
	for spans := range re.host.AllStringSubmatchIndex(input, 0) {
		out = append(out, input[last:spans[0]])
		for i := 2; i < len(spans); i += 2 {
			if spans[i] >= 0 {
				out = append(out, input[spans[i]:spans[i+1]])
			}
		}
		last = spans[1]

		if pieces++; limit > 0 && pieces >= limit {
			break
		}
	}

	out = append(out, input[last:])
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}

// clampOffset bounds a replace/split offset to input and moves it forward to
// a rune boundary.
func clampOffset(input string, offset int) int {
	offset = max(0, min(offset, len(input)))
	for offset < len(input) && !utf8.RuneStart(input[offset]) {
		offset++
	}

	return offset
}
