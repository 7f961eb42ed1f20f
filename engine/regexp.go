package engine

import (
	"iter"
	"slices"
	"strconv"
	"sync"
	"unicode/utf8"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Backend identifies the engine a Regexp was compiled with.
type Backend uint8

const (
	// Core is coregex.
	Core Backend = iota
	// PCRE is regexp2.
	PCRE
)

// String returns the backend name.
func (b Backend) String() string {
	if b == PCRE {
		return "regexp2"
	}

	return "coregex"
}

// Regexp is a compiled regular expression that delegates to either coregex
// (fast, RE2-compatible) or regexp2 (PCRE-compatible) depending on the
// pattern features detected at compile time. It is safe for concurrent use.
type Regexp struct {
	pattern string
	flags   Flags
	core    *coregex.Regex
	pcre    *regexp2.Regexp

	// names holds capture names in declaration order, names[0] is the whole
	// match. groups maps the same slots to regexp2 group numbers.
	names  []string
	groups []int

	// leftContext is set when a match can depend on text before the search
	// start (^, \b, \B, lookbehind).
	leftContext bool

	twinOnce sync.Once
	twin     *Regexp
}

// Compile parses a regular expression and returns a compiled Regexp. Patterns
// that require PCRE/Perl-only features, or that contain single-character
// constructs able to match a non-ASCII rune (detected by needsPCRE), are
// compiled with regexp2; everything else uses coregex for speed. A pattern coregex
// rejects but regexp2 accepts is compiled with regexp2; otherwise the coregex
// error is returned as is.
func Compile(pattern string, flags Flags) (*Regexp, error) {
	info := inspect(pattern)

	if needsPCRE(pattern) {
		return compilePCRE(pattern, flags, info)
	}

	re, err := coregex.Compile(flags.inline() + pattern)
	if err != nil {
		if fallback, perr := compilePCRE(pattern, flags, info); perr == nil {
			return fallback, nil
		}
		return nil, err
	}

	return &Regexp{
		pattern:     pattern,
		flags:       flags,
		core:        re,
		names:       re.SubexpNames(),
		leftContext: info.leftContext,
	}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(pattern string, flags Flags) *Regexp {
	re, err := Compile(pattern, flags)
	if err != nil {
		panic(err)
	}
	return re
}

func compilePCRE(pattern string, flags Flags, info syntaxInfo) (*Regexp, error) {
	re, err := regexp2.Compile(pattern, flags.pcreOptions())
	if err != nil {
		return nil, err
	}

	r := &Regexp{
		pattern:     pattern,
		flags:       flags,
		pcre:        re,
		leftContext: info.leftContext,
	}
	r.names, r.groups = declarationOrder(re, info.names)

	return r, nil
}

// declarationOrder lays regexp2 groups out the way RE2 numbers them: by the
// position of their opening parenthesis. regexp2 numbers named groups after
// all unnamed ones. When the scanned names cannot be reconciled with what
// regexp2 parsed, its own numbering is used.
func declarationOrder(re *regexp2.Regexp, declared []string) ([]string, []int) {
	numbers := re.GetGroupNumbers()
	slices.Sort(numbers)

	if len(numbers) == len(declared)+1 {
		groups := make([]int, len(numbers))
		named := make(map[int]bool, len(declared))
		ok := true
		for i, name := range declared {
			if name == "" {
				continue
			}
			n := re.GroupNumberFromName(name)
			if n <= 0 || named[n] {
				ok = false
				break
			}
			named[n] = true
			groups[i+1] = n
		}

		if ok {
			next := 1
			for i, name := range declared {
				if name != "" {
					continue
				}
				for next < len(numbers) && named[numbers[next]] {
					next++
				}
				groups[i+1] = numbers[next]
				next++
			}

			names := make([]string, len(numbers))
			copy(names[1:], declared)
			return names, groups
		}
	}

	names := make([]string, len(numbers))
	for i, n := range numbers {
		if name := re.GroupNameFromNumber(n); name != strconv.Itoa(n) {
			names[i] = name
		}
	}

	return names, numbers
}

// QuoteMeta escapes all regular expression metacharacters in s.
func QuoteMeta(s string) string {
	return coregex.QuoteMeta(s)
}

// String returns the source pattern used to compile the Regexp.
func (r *Regexp) String() string {
	return r.pattern
}

// Flags returns the flags the Regexp was compiled with.
func (r *Regexp) Flags() Flags {
	return r.flags
}

// Backend reports which engine executes the Regexp.
func (r *Regexp) Backend() Backend {
	if r.core != nil {
		return Core
	}

	return PCRE
}

// NumSubexp returns the number of parenthesized subexpressions in this Regexp.
func (r *Regexp) NumSubexp() int {
	return len(r.names) - 1
}

// SubexpNames returns the names of the parenthesized subexpressions in this
// Regexp. The name for the first sub-expression is names[1]. Unnamed groups
// have an empty name.
func (r *Regexp) SubexpNames() []string {
	return slices.Clone(r.names)
}

// SubexpIndex returns the index of the first subexpression with the given
// name, or -1 if there is none.
func (r *Regexp) SubexpIndex(name string) int {
	if name == "" {
		return -1
	}

	return slices.Index(r.names, name)
}

// MatchStringAt reports whether s contains a match starting at or after byte
// offset pos. Capture positions are not materialized on the coregex path.
func (r *Regexp) MatchStringAt(s string, pos int) bool {
	pos, ok := normalizePos(s, pos)
	if !ok {
		return false
	}

	if r.core != nil {
		if pos > 0 && r.leftContext {
			if twin := r.pcreTwin(); twin != nil {
				return twin.MatchStringAt(s, pos)
			}
		}
		return r.core.MatchString(s[pos:])
	}

	if pos == 0 {
		matched, err := r.pcre.MatchString(s)
		return err == nil && matched
	}

	m, err := r.pcre.FindStringMatchStartingAt(s, utf8.RuneCountInString(s[:pos]))
	return err == nil && m != nil
}

// FindStringSubmatchIndexAt returns the index pairs identifying the leftmost
// match in s that starts at or after byte offset pos, and its submatches.
// Pairs of non-participating groups are -1. It returns nil when there is no
// match.
func (r *Regexp) FindStringSubmatchIndexAt(s string, pos int) []int {
	pos, ok := normalizePos(s, pos)
	if !ok {
		return nil
	}

	if r.core != nil {
		if pos > 0 && r.leftContext {
			if twin := r.pcreTwin(); twin != nil {
				return twin.FindStringSubmatchIndexAt(s, pos)
			}
		}
		return shift(r.core.FindStringSubmatchIndex(s[pos:]), pos)
	}

	m, err := r.pcre.FindStringMatchStartingAt(s, utf8.RuneCountInString(s[:pos]))
	if err != nil || m == nil {
		return nil
	}

	return r.spans(m, runeOffsets(s))
}

// AllStringSubmatchIndex yields every non-overlapping match in s from byte
// offset pos onwards, left to right. After an empty match the scan resumes
// one rune later; an empty match right after a non-empty one is reported.
// The sequence is lazy: each match is searched for when requested.
func (r *Regexp) AllStringSubmatchIndex(s string, pos int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		pos, ok := normalizePos(s, pos)
		if !ok {
			return
		}

		if r.core != nil && r.leftContext {
			if twin := r.pcreTwin(); twin != nil {
				twin.pcreAll(s, pos, yield)
				return
			}
		}

		if r.core != nil {
			r.coreAll(s, pos, yield)
			return
		}

		r.pcreAll(s, pos, yield)
	}
}

func (r *Regexp) coreAll(s string, pos int, yield func([]int) bool) {
	for pos <= len(s) {
		loc := shift(r.core.FindStringSubmatchIndex(s[pos:]), pos)
		if loc == nil || !yield(loc) {
			return
		}

		pos = loc[1]
		if loc[0] == loc[1] {
			if pos == len(s) {
				return
			}
			_, size := utf8.DecodeRuneInString(s[pos:])
			pos += size
		}
	}
}

func (r *Regexp) pcreAll(s string, pos int, yield func([]int) bool) {
	offsets := runeOffsets(s)
	start, _ := slices.BinarySearch(offsets, pos)

	m, err := r.pcre.FindStringMatchStartingAt(s, start)
	for err == nil && m != nil {
		if !yield(r.spans(m, offsets)) {
			return
		}
		m, err = r.pcre.FindNextMatch(m)
	}
}

// pcreTwin compiles the pattern with regexp2 on first use. coregex only
// searches from the start of the string it is given, so patterns that look
// behind the search start are delegated to the twin for offset searches.
func (r *Regexp) pcreTwin() *Regexp {
	r.twinOnce.Do(func() {
		twin, err := compilePCRE(r.pattern, r.flags, inspect(r.pattern))
		if err == nil && slices.Equal(twin.names, r.names) {
			r.twin = twin
		}
	})

	return r.twin
}

// spans converts a regexp2 match into byte index pairs in slot order.
func (r *Regexp) spans(m *regexp2.Match, offsets []int) []int {
	out := make([]int, 2*len(r.names))
	out[0], out[1] = offsets[m.Index], offsets[m.Index+m.Length]

	for i := 1; i < len(r.names); i++ {
		g := m.GroupByNumber(r.groups[i])
		if g == nil || len(g.Captures) == 0 {
			out[2*i], out[2*i+1] = -1, -1
			continue
		}
		out[2*i], out[2*i+1] = offsets[g.Index], offsets[g.Index+g.Length]
	}

	return out
}
