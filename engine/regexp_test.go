package engine

import (
	"slices"
	"testing"
)

func TestCompileEngineSelection(t *testing.T) {
	corePat := "a+"
	coreRe, err := Compile(corePat, Compat)
	if err != nil {
		t.Fatalf("compile core: %v", err)
	}
	if coreRe.Backend() != Core || coreRe.pcre != nil {
		t.Fatalf("expected core backend for %q", corePat)
	}

	pcrePat := "(?<=a)b"
	pcreRe, err := Compile(pcrePat, Compat)
	if err != nil {
		t.Fatalf("compile pcre: %v", err)
	}
	if pcreRe.Backend() != PCRE || pcreRe.core != nil {
		t.Fatalf("expected regexp2 backend for %q", pcrePat)
	}

	if _, err := Compile("a(b", Compat); err == nil {
		t.Fatalf("expected error for unbalanced pattern")
	}
}

func TestNeedsPCRE(t *testing.T) {
	tests := []struct {
		pattern string
		want    bool
	}{
		{`a+`, false},
		{`(?P<year>\d{4})`, false},
		{`(?<year>\d{4})`, false},
		{`(?'year'\d{4})`, true},
		{`(?<open-close>x)`, true},
		{`(\w)\1`, true},
		{`\\1`, false},
		{`(?=x)`, true},
		{`\Afoo`, true},
		{`a.b`, true},
		{`[^a]`, true},
		{`[[:^alpha:]]`, true},
		{`[é]`, true},
		{`\W+`, true},
		{`[\S]`, true},
		{`\pL`, true},
		{`\.[a-z]\w\s\d`, false},
		{`[.]`, false},
	}

	for _, tt := range tests {
		if got := needsPCRE(tt.pattern); got != tt.want {
			t.Fatalf("needsPCRE(%q) = %v, want %v", tt.pattern, got, tt.want)
		}
	}
}

func TestRuneWidthConstructs(t *testing.T) {
	expect := [][]int{{0, 3}, {3, 6}}

	for _, pattern := range []string{`.`, `[^a]`, `\W`, `\S`, `(?s).`} {
		re := MustCompile(pattern, Compat)
		if re.Backend() != PCRE {
			t.Fatalf("expected regexp2 backend for %q", pattern)
		}

		if loc := re.FindStringSubmatchIndexAt("日本", 0); !slices.Equal(loc, expect[0]) {
			t.Fatalf("FindStringSubmatchIndexAt %s: got %v", pattern, loc)
		}

		var all [][]int
		for loc := range re.AllStringSubmatchIndex("日本", 0) {
			all = append(all, loc)
		}
		if !slices.EqualFunc(all, expect, slices.Equal) {
			t.Fatalf("AllStringSubmatchIndex %s: got %v want %v", pattern, all, expect)
		}
	}
}

func TestCoreFindAt(t *testing.T) {
	re := MustCompile("a+", Compat)

	if loc := re.FindStringSubmatchIndexAt("caaab", 0); !slices.Equal(loc, []int{1, 4}) {
		t.Fatalf("FindStringSubmatchIndexAt core: got %v", loc)
	}
	if loc := re.FindStringSubmatchIndexAt("caaab", 2); !slices.Equal(loc, []int{2, 4}) {
		t.Fatalf("FindStringSubmatchIndexAt core offset: got %v", loc)
	}
	if loc := re.FindStringSubmatchIndexAt("caaab", 4); loc != nil {
		t.Fatalf("FindStringSubmatchIndexAt core tail: got %v", loc)
	}
	if loc := re.FindStringSubmatchIndexAt("caaab", 6); loc != nil {
		t.Fatalf("FindStringSubmatchIndexAt past end: got %v", loc)
	}

	if !re.MatchStringAt("caaab", 3) {
		t.Fatalf("MatchStringAt core: expected true")
	}
	if re.MatchStringAt("caaab", 4) {
		t.Fatalf("MatchStringAt core tail: expected false")
	}
}

func TestFlags(t *testing.T) {
	if !MustCompile("abc", IgnoreCase|Compat).MatchStringAt("xABC", 0) {
		t.Fatalf("IgnoreCase: expected match")
	}
	if MustCompile("a.b", Compat).MatchStringAt("a\nb", 0) {
		t.Fatalf("dot without DotAll must not match newline")
	}
	if !MustCompile("a.b", DotAll|Compat).MatchStringAt("a\nb", 0) {
		t.Fatalf("DotAll: expected match")
	}

	re := MustCompile("^b", Multiline|Compat)
	if loc := re.FindStringSubmatchIndexAt("a\nb", 0); !slices.Equal(loc, []int{2, 3}) {
		t.Fatalf("Multiline: got %v", loc)
	}

	if got := (IgnoreCase | DotAll | Compat).String(); got != "isc" {
		t.Fatalf("Flags.String: got %q", got)
	}
	if got := (IgnoreCase | Multiline | Compat).inline(); got != "(?im)" {
		t.Fatalf("Flags.inline: got %q", got)
	}
}

func TestPCREBackreference(t *testing.T) {
	re := MustCompile(`(\w+)\s+\1`, Compat)

	if re.core != nil {
		t.Fatalf("expected PCRE backend for backreference pattern")
	}

	if !re.MatchStringAt("go go", 0) {
		t.Fatalf("MatchStringAt pcre backref: expected true")
	}

	idxs := re.FindStringSubmatchIndexAt("go go", 0)
	expect := []int{0, 5, 0, 2}
	if !slices.Equal(idxs, expect) {
		t.Fatalf("FindStringSubmatchIndexAt pcre backref: got %v want %v", idxs, expect)
	}
}

func TestPCRELookbehindRuneOffsets(t *testing.T) {
	// Emoji is 4 bytes; ensures rune-to-byte conversion is correct.
	re := MustCompile("(?<=🙂)a", Compat)

	input := "🙂a🙂a"
	idxs := re.FindStringSubmatchIndexAt(input, 0)
	if !slices.Equal(idxs, []int{4, 5}) {
		t.Fatalf("FindStringSubmatchIndexAt pcre lookbehind first: got %v", idxs)
	}

	idxs = re.FindStringSubmatchIndexAt(input, 5)
	if !slices.Equal(idxs, []int{9, 10}) {
		t.Fatalf("FindStringSubmatchIndexAt pcre lookbehind offset: got %v", idxs)
	}

	// Offset inside the first emoji moves to the next rune boundary.
	idxs = re.FindStringSubmatchIndexAt(input, 1)
	if !slices.Equal(idxs, []int{4, 5}) {
		t.Fatalf("FindStringSubmatchIndexAt mid-rune offset: got %v", idxs)
	}

	var all [][]int
	for loc := range re.AllStringSubmatchIndex(input, 0) {
		all = append(all, loc)
	}
	expect := [][]int{{4, 5}, {9, 10}}
	if !slices.EqualFunc(all, expect, slices.Equal) {
		t.Fatalf("AllStringSubmatchIndex pcre lookbehind: got %v want %v", all, expect)
	}
}

func TestLeftContextAtOffset(t *testing.T) {
	re := MustCompile(`\bb`, Compat)
	if re.Backend() != Core {
		t.Fatalf("expected core backend for %q", re)
	}

	// Slicing at 1 would see a word boundary before "b"; the text before the
	// offset must be taken into account.
	if loc := re.FindStringSubmatchIndexAt("ab b", 1); !slices.Equal(loc, []int{3, 4}) {
		t.Fatalf("FindStringSubmatchIndexAt word boundary: got %v", loc)
	}
	if re.MatchStringAt("ab", 1) {
		t.Fatalf("MatchStringAt word boundary: expected false")
	}

	anchored := MustCompile(`^a`, Compat)
	if loc := anchored.FindStringSubmatchIndexAt("aa", 1); loc != nil {
		t.Fatalf("FindStringSubmatchIndexAt anchor at offset: got %v", loc)
	}
}

func TestAllEmptyMatches(t *testing.T) {
	expect := [][]int{{0, 0}, {1, 4}, {4, 4}, {5, 5}}

	for _, pattern := range []string{`a*`, `a*(?!x)`} {
		re := MustCompile(pattern, Compat)

		var all [][]int
		for loc := range re.AllStringSubmatchIndex("baaab", 0) {
			all = append(all, loc)
		}
		if !slices.EqualFunc(all, expect, slices.Equal) {
			t.Fatalf("AllStringSubmatchIndex %s (%s): got %v want %v", pattern, re.Backend(), all, expect)
		}
	}
}

func TestAllStopsEarly(t *testing.T) {
	re := MustCompile(`\d`, Compat)

	n := 0
	for range re.AllStringSubmatchIndex("1234", 1) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("AllStringSubmatchIndex break: got %d iterations", n)
	}
}

func TestPCREDeclarationOrder(t *testing.T) {
	// regexp2 numbers named groups after unnamed ones.
	re := MustCompile(`(?<y>a)(b)(?=c)`, Compat)
	if re.Backend() != PCRE {
		t.Fatalf("expected regexp2 backend for %q", re)
	}

	if names := re.SubexpNames(); !slices.Equal(names, []string{"", "y", ""}) {
		t.Fatalf("SubexpNames: got %q", names)
	}
	if i := re.SubexpIndex("y"); i != 1 {
		t.Fatalf("SubexpIndex: got %d", i)
	}

	loc := re.FindStringSubmatchIndexAt("abc", 0)
	if !slices.Equal(loc, []int{0, 2, 0, 1, 1, 2}) {
		t.Fatalf("FindStringSubmatchIndexAt: got %v", loc)
	}
}

func TestUnsetGroups(t *testing.T) {
	for _, pattern := range []string{`(a)|(b)`, `(a)|(b)(?!x)`} {
		re := MustCompile(pattern, Compat)
		loc := re.FindStringSubmatchIndexAt("b", 0)
		if !slices.Equal(loc, []int{0, 1, -1, -1, 0, 1}) {
			t.Fatalf("%s (%s): got %v", pattern, re.Backend(), loc)
		}
	}
}

func TestExpand(t *testing.T) {
	re := MustCompile(`(?P<user>\w+)@(\w+)`, Compat)
	src := "me@host"
	loc := re.FindStringSubmatchIndexAt(src, 0)

	got := string(re.Expand(nil, "$2:${user}:$$:${9}:$!", src, loc))
	if got != "host:me:$::$!" {
		t.Fatalf("Expand: got %q", got)
	}

	got = string(re.Expand([]byte("<"), "${1}x$1x", src, loc))
	if got != "<mex" {
		t.Fatalf("Expand name greediness: got %q", got)
	}
}
