package netregex

// Match is the result of a successful match. Positions are byte offsets into
// the text that was searched.
type Match struct {
	re    *Regex
	input string
	spans []int
}

func newMatch(re *Regex, input string, spans []int) *Match {
	if spans == nil {
		return nil
	}

	return &Match{re: re, input: input, spans: spans}
}

// Value returns the matched text.
func (m *Match) Value() string {
	return m.input[m.spans[0]:m.spans[1]]
}

// Index returns the position of the first byte of the match.
func (m *Match) Index() int {
	return m.spans[0]
}

// Length returns the length of the match in bytes.
func (m *Match) Length() int {
	return m.spans[1] - m.spans[0]
}

// String returns the matched text.
func (m *Match) String() string {
	return m.Value()
}

// Groups projects m into a GroupCollection. Slot 0 is the whole match.
func (m *Match) Groups() GroupCollection {
	return GroupCollection{
		input: m.input,
		spans: m.spans,
		names: m.re.names,
		index: m.re.index,
	}
}
