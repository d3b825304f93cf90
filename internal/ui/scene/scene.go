// Package scene renders the greeting: sky, narrative, daisy, rose and
// garden, composed as layers onto a fixed-size canvas.
package scene

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"
	"github.com/patrickmn/go-cache"

	"github.com/zjrosen/valentine/internal/script"
	"github.com/zjrosen/valentine/internal/sequence"
	"github.com/zjrosen/valentine/internal/ui/styles"
)

const (
	minWidth  = 20
	minHeight = 8

	// StarCount and CloudCount are the sizes of the generated sky.
	StarCount  = 60
	CloudCount = 8
)

// Input is everything one render depends on.
type Input struct {
	State  sequence.State
	Script *script.Script

	Width, Height int

	// Frame counts animation ticks since start; GardenFrame counts them
	// since the garden appeared.
	Frame       int
	GardenFrame int

	// Cursor is the keyboard-selected petal.
	Cursor int
	// Reveal is how many graphemes of the newest narrative line are shown.
	// Negative shows the whole line.
	Reveal int

	Notice string
	Help   string
}

// Renderer holds the per-run sky and the garden frame cache.
type Renderer struct {
	stars  []Star
	clouds []Cloud
	zones  *zone.Manager
	frames *cache.Cache
}

// New creates a renderer whose sky is generated from seed. zones may be nil,
// in which case petals are not marked for mouse hits.
func New(seed uint64, zones *zone.Manager) *Renderer {
	return &Renderer{
		stars:  NewStarField(seed, StarCount),
		clouds: NewClouds(seed, CloudCount),
		zones:  zones,
		frames: cache.New(10*time.Minute, 20*time.Minute),
	}
}

// Stars returns the generated star field.
func (r *Renderer) Stars() []Star { return r.stars }

// Clouds returns the generated transition clouds.
func (r *Renderer) Clouds() []Cloud { return r.clouds }

// Render draws in as a block exactly Width columns by Height rows.
func (r *Renderer) Render(in Input) string {
	w := max(in.Width, minWidth)
	h := max(in.Height, minHeight)
	bodyH := h - 1

	var canvas []string
	if ShowsStars(in.State.Phase) {
		canvas = skyLines(r.stars, w, bodyH, in.Frame)
	} else {
		canvas = blankLines(w, bodyH)
	}

	if content := r.content(in, w); content != "" {
		cw, ch := lipgloss.Size(content)
		canvas = overlay(canvas, content, (w-cw)/2, max((bodyH-ch)/2, 0))
	}

	if in.Notice != "" {
		notice := styles.ErrorStyle.Render(styles.TruncateString(in.Notice, w-2))
		canvas = overlay(canvas, notice, 1, 0)
	}

	if in.State.Transitioning {
		for _, c := range r.clouds {
			x, y := c.Position(w, bodyH, in.Frame)
			canvas = overlay(canvas, c.Render(), x, y)
		}
	}

	footer := ansi.Truncate(in.Help, w, "")
	footer += strings.Repeat(" ", max(w-ansi.StringWidth(footer), 0))
	return strings.Join(append(canvas, footer), "\n")
}

// ShowsStars reports whether the star field is drawn in phase p.
func ShowsStars(p sequence.Phase) bool {
	return p != sequence.PhaseOpening && p != sequence.PhaseThoughts
}

func (r *Renderer) content(in Input, width int) string {
	st, s := in.State, in.Script
	switch st.Phase {
	case sequence.PhaseOpening, sequence.PhaseThoughts, sequence.PhaseBridge:
		if st.Navigating {
			return ""
		}
		return narrative(NarrativeLines(st, s), in.Reveal, wrapWidth(width), s.Hint)

	case sequence.PhaseGame:
		final := st.Removed.Len() >= s.Petals.Count
		status := styles.StatusStyle.Render(s.PetalStatus(st.Removed.Len()))
		if final {
			status = styles.StatusFinalStyle.Render(s.PetalStatus(st.Removed.Len()))
		}
		count := styles.HelpStyle.Render(styles.FormatPetalCount(s.Petals.Count-st.Removed.Len(), s.Petals.Count))
		return lipgloss.JoinVertical(lipgloss.Center, status, "", r.daisy(s.Petals.Count, st.Removed, in.Cursor), count)

	case sequence.PhaseRose:
		caption := styles.CaptionStyle.Render(wordwrap.String(s.RoseCaption, wrapWidth(width)))
		return lipgloss.JoinVertical(lipgloss.Center, rose(), "", caption, "", styles.HintStyle.Render(s.Hint))

	case sequence.PhaseAsk:
		parts := []string{r.garden(in.GardenFrame, st.Started)}
		if st.MessageVisible {
			card := styles.RenderCard(
				styles.AskStyle.Render(s.AskMessage()),
				s.Recipient,
				min(width-2, max(ansi.StringWidth(s.AskMessage())+10, 30)),
				styles.BorderAskColor,
				styles.GlowColor,
			)
			parts = append(parts, "", card)
		}
		return lipgloss.JoinVertical(lipgloss.Center, parts...)
	}
	return ""
}

func wrapWidth(width int) int {
	return max(min(width-4, 56), 10)
}

func blankLines(w, h int) []string {
	line := strings.Repeat(" ", w)
	out := make([]string, h)
	for i := range out {
		out[i] = line
	}
	return out
}

// overlay writes block onto base with its top-left corner at (x, y). Each base
// line must already be padded to the canvas width. Block lines running past
// the right edge are clipped.
func overlay(base []string, block string, x, y int) []string {
	x = max(x, 0)
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(base) {
			continue
		}
		total := ansi.StringWidth(base[row])
		if x >= total {
			continue
		}
		lw := ansi.StringWidth(line)
		if x+lw > total {
			line = ansi.Truncate(line, total-x, "")
			lw = ansi.StringWidth(line)
		}
		base[row] = ansi.Cut(base[row], 0, x) + line + ansi.Cut(base[row], x+lw, total)
	}
	return base
}
