package netregex

import (
	"go.dw1.io/netregex/engine"
)

// Regex is a compiled .NET-dialect regular expression. It is immutable and
// safe for concurrent use.
type Regex struct {
	pattern string
	host    *engine.Regexp

	names []string
	index map[string]int
}

// PatternSyntaxError reports a pattern the host engine rejected. Its message
// is the host diagnostic, unchanged.
type PatternSyntaxError struct {
	// Pattern is the pattern as passed to Compile.
	Pattern string
	// Err is the host engine error.
	Err error
}

func (e *PatternSyntaxError) Error() string {
	return e.Err.Error()
}

func (e *PatternSyntaxError) Unwrap() error {
	return e.Err
}

// Compile rewrites pattern into host syntax and compiles it with the host
// equivalent of opts. A pattern the host cannot compile yields a
// *PatternSyntaxError.
func Compile(pattern string, opts Options) (*Regex, error) {
	host, err := engine.Compile(rewriteNamedGroups(pattern), HostFlags(opts))
	if err != nil {
		return nil, &PatternSyntaxError{Pattern: pattern, Err: err}
	}

	names := host.SubexpNames()
	index := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			continue
		}
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	return &Regex{
		pattern: pattern,
		host:    host,
		names:   names,
		index:   index,
	}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(pattern string, opts Options) *Regex {
	re, err := Compile(pattern, opts)
	if err != nil {
		panic(`netregex: Compile(` + quote(pattern) + `): ` + err.Error())
	}

	return re
}

// String returns the pattern passed to Compile.
func (re *Regex) String() string {
	return re.pattern
}

// HostPattern returns the pattern in host syntax, as it was compiled.
func (re *Regex) HostPattern() string {
	return re.host.String()
}

// Options reports the options of re in the .NET encoding. Only IgnoreCase,
// Multiline and Singleline survive compilation; ECMAScript is always set.
func (re *Regex) Options() Options {
	return ExternalOptions(re.host.Flags())
}

// GroupNames returns the group names in slot order. Slot 0 is the whole
// match; unnamed groups have an empty name.
func (re *Regex) GroupNames() []string {
	out := make([]string, len(re.names))
	copy(out, re.names)

	return out
}

// GroupNumber returns the slot of the named group, or -1.
func (re *Regex) GroupNumber(name string) int {
	if i, ok := re.index[name]; ok {
		return i
	}

	return -1
}
