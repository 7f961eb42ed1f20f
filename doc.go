// Package netregex runs .NET-dialect regular expressions on Go regex engines
// while keeping the .NET observable behaviour.
//
// Patterns use the .NET option bits ([IgnoreCase], [Multiline],
// [Singleline], ...), (?<name>...) named groups and $1 replacement
// placeholders. Group 0 of every match is the whole match, groups that did
// not participate are reported as absent rather than empty, and successive
// matches follow the .NET rules for empty matches.
//
// Matching is delegated to the [engine] package, which picks coregex or
// regexp2 per pattern. All offsets are byte offsets.
//
// Replacement offsets re-slice the input: [Regex.ReplaceN],
// [Regex.ReplaceFuncN] and [Regex.SplitN] only look at input[offset:], so
// anchors match at the offset and positions reported to a [MatchEvaluator]
// are relative to it. [Regex.MatchAt] and [Regex.MatchesAt] instead search
// the whole input from the offset.
package netregex
