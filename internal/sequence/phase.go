// Package sequence is the greeting's phase controller.
//
// Step maps the current State and one input Event to the next State plus a
// list of Effects (timers to schedule, audio commands). It performs no I/O;
// the app package executes the effects.
package sequence

// Phase is the current stage of the scripted sequence.
type Phase string

const (
	PhaseOpening  Phase = "opening"
	PhaseThoughts Phase = "thoughts"
	PhaseGame     Phase = "game"
	PhaseBridge   Phase = "bridge"
	PhaseRose     Phase = "rose"
	PhaseAsk      Phase = "ask"
)

// Variant selects which phase machine drives the greeting.
type Variant string

const (
	// VariantFull is the five-phase greeting with the petal game.
	VariantFull Variant = "full"
	// VariantRose counts 0, 1, 2: a rose, then the message.
	VariantRose Variant = "rose"
	// VariantGarden has a single transition from not-started to started.
	VariantGarden Variant = "garden"
)

// VariantInfo describes a variant for listings.
type VariantInfo struct {
	Variant     Variant
	Description string
}

// Variants lists the available variants in display order.
func Variants() []VariantInfo {
	return []VariantInfo{
		{VariantFull, "Opening line, thoughts, petal game, bridge, then the garden and the question"},
		{VariantRose, "One tap for a rose, another for the question"},
		{VariantGarden, "One tap starts the garden; the question appears as it blooms"},
	}
}

// ParseVariant returns the variant named s.
func ParseVariant(s string) (Variant, bool) {
	for _, v := range Variants() {
		if string(v.Variant) == s {
			return v.Variant, true
		}
	}
	return "", false
}

// Phases returns the ordered, forward-only phase list of v.
func (v Variant) Phases() []Phase {
	switch v {
	case VariantRose:
		return []Phase{PhaseOpening, PhaseRose, PhaseAsk}
	case VariantGarden:
		return []Phase{PhaseOpening, PhaseAsk}
	default:
		return []Phase{PhaseOpening, PhaseThoughts, PhaseGame, PhaseBridge, PhaseAsk}
	}
}

// Index returns the position of p in v's phase list, or -1.
func (v Variant) Index(p Phase) int {
	for i, q := range v.Phases() {
		if q == p {
			return i
		}
	}
	return -1
}

// Next returns the phase that follows p in v, and false if p is terminal.
func (v Variant) Next(p Phase) (Phase, bool) {
	phases := v.Phases()
	i := v.Index(p)
	if i < 0 || i+1 >= len(phases) {
		return p, false
	}
	return phases[i+1], true
}
