package netregex

import (
	"iter"

	"go.dw1.io/netregex/internal/json"
)

// Group is one capture slot of a match. Success is false when the group did
// not take part in the match; Value is then empty and Index is -1.
type Group struct {
	Name    string
	Value   string
	Index   int
	Length  int
	Success bool
}

// GroupCollection is a read-only view of the groups of a [Match], addressable
// by position and by name. Slot 0 holds the whole match and slots 1..N the
// capturing groups in the order they appear in the pattern. A named group
// resolves to the same slot as its position.
//
// Lookups of unknown names, out of range positions and groups that did not
// participate all report false rather than failing.
type GroupCollection struct {
	input string
	spans []int
	names []string
	index map[string]int
}

// Len returns the number of slots, i.e. the number of groups plus one.
func (g GroupCollection) Len() int {
	return len(g.spans) / 2
}

// Get returns the text of slot i.
func (g GroupCollection) Get(i int) (string, bool) {
	if i < 0 || i >= g.Len() || g.spans[2*i] < 0 {
		return "", false
	}

	return g.input[g.spans[2*i]:g.spans[2*i+1]], true
}

// ByName returns the text of the named group.
func (g GroupCollection) ByName(name string) (string, bool) {
	i, ok := g.index[name]
	if !ok {
		return "", false
	}

	return g.Get(i)
}

// Group returns slot i in full.
func (g GroupCollection) Group(i int) Group {
	if i < 0 || i >= g.Len() {
		return Group{Index: -1}
	}

	grp := Group{Name: g.names[i], Index: -1}
	if start, end := g.spans[2*i], g.spans[2*i+1]; start >= 0 {
		grp.Value = g.input[start:end]
		grp.Index = start
		grp.Length = end - start
		grp.Success = true
	}

	return grp
}

// Names returns the name of every slot; unnamed slots are empty.
func (g GroupCollection) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)

	return out
}

// Values returns the text of every slot. Groups that did not participate
// are empty; use Get or Group to tell them apart from empty captures.
func (g GroupCollection) Values() []string {
	out := make([]string, g.Len())
	for i := range out {
		out[i], _ = g.Get(i)
	}

	return out
}

// Map returns the named groups that participated in the match.
func (g GroupCollection) Map() map[string]string {
	out := make(map[string]string, len(g.index))
	for name, i := range g.index {
		if v, ok := g.Get(i); ok {
			out[name] = v
		}
	}

	return out
}

// All yields every slot in position order.
func (g GroupCollection) All() iter.Seq2[int, Group] {
	return func(yield func(int, Group) bool) {
		for i := range g.Len() {
			if !yield(i, g.Group(i)) {
				return
			}
		}
	}
}

// MarshalJSON encodes the slots as a JSON array, with null for groups that
// did not participate.
func (g GroupCollection) MarshalJSON() ([]byte, error) {
	values := make([]*string, g.Len())
	for i := range values {
		if v, ok := g.Get(i); ok {
			values[i] = &v
		}
	}

	return json.Marshal(values)
}

// Item looks up a slot by position or by name.
func Item[K int | string](g GroupCollection, key K) (string, bool) {
	switch k := any(key).(type) {
	case int:
		return g.Get(k)
	case string:
		return g.ByName(k)
	}

	return "", false
}
