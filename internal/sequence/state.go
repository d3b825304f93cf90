package sequence

import "sort"

// PetalSet is the set of petal indices the viewer has plucked.
type PetalSet map[int]struct{}

// Has reports whether petal i has been removed.
func (s PetalSet) Has(i int) bool {
	_, ok := s[i]
	return ok
}

// Len returns the number of removed petals.
func (s PetalSet) Len() int { return len(s) }

// Sorted returns the removed indices in ascending order.
func (s PetalSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

func (s PetalSet) with(i int) PetalSet {
	out := make(PetalSet, len(s)+1)
	for k := range s {
		out[k] = struct{}{}
	}
	out[i] = struct{}{}
	return out
}

// State is everything the presentation layer renders from.
type State struct {
	Variant Variant
	Phase   Phase

	// ThoughtStep and BridgeStep index the last revealed line of their phase.
	ThoughtStep int
	BridgeStep  int

	Removed PetalSet

	AudioUnlocked  bool
	Started        bool
	Transitioning  bool
	Navigating     bool
	MessageVisible bool

	// ExitScheduled is set once the current phase has scheduled its way out,
	// so repeated input cannot stack timers. Cleared on entering a phase.
	ExitScheduled bool

	// Clicks counts advance events, for the viewing history.
	Clicks int
}

// New returns the initial state of variant v.
func New(v Variant) State {
	if _, ok := ParseVariant(string(v)); !ok {
		v = VariantFull
	}
	return State{
		Variant: v,
		Phase:   PhaseOpening,
		Removed: PetalSet{},
	}
}

// Terminal reports whether the sequence has reached its last phase.
func (s State) Terminal() bool {
	_, ok := s.Variant.Next(s.Phase)
	return !ok
}

// Progress is the index of the current phase in the variant's phase list.
func (s State) Progress() int {
	return s.Variant.Index(s.Phase)
}
