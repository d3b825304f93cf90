package scene

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/rivo/uniseg"

	"github.com/zjrosen/valentine/internal/script"
	"github.com/zjrosen/valentine/internal/sequence"
	"github.com/zjrosen/valentine/internal/ui/styles"
)

// NarrativeLines returns the lines on screen in st's phase, oldest first.
// Phases without narrative return nil.
func NarrativeLines(st sequence.State, s *script.Script) []string {
	switch st.Phase {
	case sequence.PhaseOpening:
		return []string{s.Opening}
	case sequence.PhaseThoughts:
		return upTo(s.Thoughts, st.ThoughtStep)
	case sequence.PhaseBridge:
		return upTo(s.Bridge, st.BridgeStep)
	}
	return nil
}

func upTo(lines []string, step int) []string {
	if len(lines) == 0 {
		return nil
	}
	step = max(0, min(step, len(lines)-1))
	return lines[:step+1]
}

// RevealLength is the grapheme count of the newest narrative line, the point
// at which the typewriter reveal is complete.
func RevealLength(st sequence.State, s *script.Script) int {
	lines := NarrativeLines(st, s)
	if len(lines) == 0 {
		return 0
	}
	return uniseg.GraphemeClusterCount(lines[len(lines)-1])
}

// narrative renders the lines centered, older ones dimmed, with the newest
// revealed up to reveal graphemes and the hint once it is complete.
func narrative(lines []string, reveal, width int, hint string) string {
	if len(lines) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(lines)+2)
	for i, line := range lines {
		wrapped := wordwrap.String(line, width)
		if i < len(lines)-1 {
			blocks = append(blocks, styles.HistoryStyle.Render(wrapped))
			continue
		}
		shown := wrapped
		if reveal >= 0 {
			shown = typewriter(wrapped, reveal)
		}
		blocks = append(blocks, styles.NarrativeStyle.Render(holdShape(shown, wrapped)))
		if reveal < 0 || reveal >= uniseg.GraphemeClusterCount(line) {
			blocks = append(blocks, "", styles.HintStyle.Render(hint))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Center, blocks...)
}

// typewriter returns the first n grapheme clusters of s. Line breaks
// inserted by wrapping are passed through without counting.
func typewriter(s string, n int) string {
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for n > 0 && g.Next() {
		cluster := g.Str()
		b.WriteString(cluster)
		if cluster != "\n" {
			n--
		}
	}
	return b.String()
}

// holdShape pads each line of partial to the width of the matching line of
// full, and adds the missing lines, so a reveal in progress is centered
// exactly like the finished text.
func holdShape(partial, full string) string {
	fullLines := strings.Split(full, "\n")
	partLines := strings.Split(partial, "\n")
	out := make([]string, len(fullLines))
	for i, fl := range fullLines {
		var pl string
		if i < len(partLines) {
			pl = partLines[i]
		}
		out[i] = runewidth.FillRight(pl, runewidth.StringWidth(fl))
	}
	return strings.Join(out, "\n")
}
