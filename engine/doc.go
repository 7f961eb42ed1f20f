// Package engine is the host regex engine used by netregex.
//
// By default it compiles patterns with coregex (an accelerated RE2-compatible
// engine). When the pattern requires PCRE/Perl features that RE2/coregex
// cannot execute, the package falls back to [regexp2].
//
// Unlike the standard library API, every search primitive takes a start
// position and honours the text before it, so lookbehinds, word boundaries
// and anchors see the whole input. All offsets are byte offsets, whichever
// backend ran the search.
package engine
