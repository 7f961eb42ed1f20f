package engine

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Flags is the host representation of matching options.
type Flags uint8

const (
	// IgnoreCase enables case-insensitive matching.
	IgnoreCase Flags = 1 << iota
	// Multiline makes ^ and $ match at line boundaries.
	Multiline
	// DotAll lets . match \n.
	DotAll
	// Compat selects the RE2-compatible base mode on every backend, so
	// character classes such as \d and \w mean the same thing on coregex and
	// regexp2, and (?P<name>...) is accepted by both.
	Compat
)

// String returns the flags as inline flag letters, e.g. "ims".
func (f Flags) String() string {
	var b strings.Builder
	if f&IgnoreCase != 0 {
		b.WriteByte('i')
	}
	if f&Multiline != 0 {
		b.WriteByte('m')
	}
	if f&DotAll != 0 {
		b.WriteByte('s')
	}
	if f&Compat != 0 {
		b.WriteByte('c')
	}

	return b.String()
}

// inline renders the flags coregex understands as a pattern prefix.
func (f Flags) inline() string {
	if f&(IgnoreCase|Multiline|DotAll) == 0 {
		return ""
	}

	return "(?" + (f &^ Compat).String() + ")"
}

func (f Flags) pcreOptions() regexp2.RegexOptions {
	opts := regexp2.None
	if f&IgnoreCase != 0 {
		opts |= regexp2.IgnoreCase
	}
	if f&Multiline != 0 {
		opts |= regexp2.Multiline
	}
	if f&DotAll != 0 {
		opts |= regexp2.Singleline
	}
	if f&Compat != 0 {
		opts |= regexp2.RE2
	}

	return opts
}
