package scene

import (
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/valentine/internal/ui/styles"
)

// Star is one point of the sky. X and Y are fractions of the canvas.
type Star struct {
	X, Y   float64
	Period int // frames per twinkle step
	Offset int
	Bright bool
}

var starGlyphs = []string{"·", "+", "✦", "*"}

// Glyph returns the star's character at frame.
func (s Star) Glyph(frame int) string {
	if !s.Bright {
		return starGlyphs[0]
	}
	step := (frame + s.Offset) / max(s.Period, 1)
	return starGlyphs[step%len(starGlyphs)]
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewStarField scatters n stars deterministically from seed.
func NewStarField(seed uint64, n int) []Star {
	rng := newRand(seed)
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X:      rng.Float64(),
			Y:      rng.Float64(),
			Period: 2 + rng.IntN(5),
			Offset: rng.IntN(16),
			Bright: rng.IntN(3) == 0,
		}
	}
	return stars
}

// skyLines draws the stars onto a w by h canvas.
func skyLines(stars []Star, w, h, frame int) []string {
	grid := make([][]string, h)
	for y := range grid {
		grid[y] = make([]string, w)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	style := lipgloss.NewStyle().Foreground(styles.StarColor)
	dim := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	for _, s := range stars {
		x := int(s.X * float64(w-1))
		y := int(s.Y * float64(h-1))
		if y < 0 || y >= h || x < 0 || x >= w {
			continue
		}
		if s.Bright {
			grid[y][x] = style.Render(s.Glyph(frame))
		} else {
			grid[y][x] = dim.Render(s.Glyph(frame))
		}
	}
	out := make([]string, h)
	for y, row := range grid {
		out[y] = strings.Join(row, "")
	}
	return out
}

// Cloud is one puff of the transition overlay.
type Cloud struct {
	X, Y  float64 // fractions of the canvas, at most 0.8 like the drift range
	Delay int     // frames before the cloud starts drifting
}

var cloudArt = []string{
	"   .-~~-.    ",
	" .(      )-. ",
	"(___________)",
}

// CloudWidth is the display width of one cloud.
var CloudWidth = lipgloss.Width(strings.Join(cloudArt, "\n"))

// NewClouds places n clouds deterministically from seed, each starting a
// little after the previous one.
func NewClouds(seed uint64, n int) []Cloud {
	rng := newRand(seed + 1)
	clouds := make([]Cloud, n)
	for i := range clouds {
		clouds[i] = Cloud{
			X:     rng.Float64() * 0.8,
			Y:     rng.Float64() * 0.8,
			Delay: i,
		}
	}
	return clouds
}

// Position returns the cloud's top-left cell on a w by h canvas at frame.
func (c Cloud) Position(w, h, frame int) (int, int) {
	drift := 0
	if frame > c.Delay {
		drift = (frame - c.Delay) % 4
	}
	x := min(int(c.X*float64(max(w-CloudWidth, 0)))+drift, max(w-CloudWidth, 0))
	y := int(c.Y * float64(max(h-len(cloudArt), 0)))
	return x, y
}

// Render draws the cloud.
func (c Cloud) Render() string {
	return lipgloss.NewStyle().Foreground(styles.CloudColor).Render(strings.Join(cloudArt, "\n"))
}
