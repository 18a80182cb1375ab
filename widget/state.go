package widget

import "strings"

// State is a transient condition of a widget which may affect the set of
// style rules applying to it.
type State uint16

// Pseudo-states supported by the matcher. The set mirrors the states a
// desktop widget toolkit reports for its standard widgets.
const (
	Hover State = 1 << iota
	Pressed
	Checked
	Disabled
	Selected
	Focus
)

var stateNames = []struct {
	state State
	name  string
}{
	{Hover, "hover"},
	{Pressed, "pressed"},
	{Checked, "checked"},
	{Disabled, "disabled"},
	{Selected, "selected"},
	{Focus, "focus"},
}

func (s State) String() string {
	for _, sn := range stateNames {
		if sn.state == s {
			return sn.name
		}
	}
	return "?"
}

// StateNamed resolves a pseudo-state name as it appears in a selector.
// Negative forms map onto the positive state with negated=true:
// "enabled" is the absence of Disabled, "unchecked" the absence of
// Checked. ok is false for names unknown to the matcher; selectors using
// such a name never match (they are not an error).
func StateNamed(name string) (s State, negated bool, ok bool) {
	switch name {
	case "enabled":
		return Disabled, true, true
	case "unchecked":
		return Checked, true, true
	}
	for _, sn := range stateNames {
		if sn.name == name {
			return sn.state, false, true
		}
	}
	return 0, false, false
}

// StateSet is a set of pseudo-states, implemented as a bit vector.
// The zero value is the empty set. StateSet is a value type and may be
// used as (part of) a map key.
type StateSet uint16

// Has checks for a single state bit.
func (set StateSet) Has(s State) bool {
	return set&StateSet(s) != 0
}

// HasAll checks wether every state of other is contained in set.
func (set StateSet) HasAll(other StateSet) bool {
	return set&other == other
}

// Intersects checks wether set and other share at least one state.
func (set StateSet) Intersects(other StateSet) bool {
	return set&other != 0
}

// With returns set with state s included.
func (set StateSet) With(s State) StateSet {
	return set | StateSet(s)
}

// Without returns set with state s removed.
func (set StateSet) Without(s State) StateSet {
	return set &^ StateSet(s)
}

// Count returns the number of states in the set.
func (set StateSet) Count() int {
	n := 0
	for s := set; s != 0; s &= s - 1 {
		n++
	}
	return n
}

// IsEmpty checks wether no state is active.
func (set StateSet) IsEmpty() bool {
	return set == 0
}

// String returns the selector notation for the set, e.g. ":hover:pressed".
func (set StateSet) String() string {
	if set == 0 {
		return ""
	}
	var b strings.Builder
	for _, sn := range stateNames {
		if set.Has(sn.state) {
			b.WriteByte(':')
			b.WriteString(sn.name)
		}
	}
	return b.String()
}
