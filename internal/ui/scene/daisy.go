package scene

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/valentine/internal/sequence"
	"github.com/zjrosen/valentine/internal/ui/styles"
)

const (
	petalGlyph       = "(@)"
	petalCursorGlyph = "[@]"
	petalGoneGlyph   = " · "
	petalWidth       = 3
	stemHeight       = 3
)

// PetalZoneID is the bubblezone id of petal i.
func PetalZoneID(i int) string {
	return fmt.Sprintf("petal-%d", i)
}

// Point is a cell on the daisy grid.
type Point struct{ X, Y int }

// daisyRadii sizes the ellipse so petals do not touch as the count grows.
// Terminal cells are about twice as tall as wide, hence rx ≈ 2.5·ry.
func daisyRadii(count int) (rx, ry int) {
	rx = max(13, count)
	ry = max(5, (rx*2+2)/5)
	return rx, ry
}

// PetalPositions returns the left cell of each petal token, starting at the
// top and going clockwise.
func PetalPositions(count int) []Point {
	rx, ry := daisyRadii(count)
	cx, cy := rx+1, ry
	pts := make([]Point, count)
	for i := range pts {
		a := 2*math.Pi*float64(i)/float64(count) - math.Pi/2
		x := cx + int(math.Round(float64(rx)*math.Cos(a)))
		y := cy + int(math.Round(float64(ry)*math.Sin(a)))
		pts[i] = Point{X: x - 1, Y: y}
	}
	return pts
}

var daisyCenter = []string{
	" .-. ",
	"( * )",
	" '-' ",
}

// daisy draws the flower with removed petals and the cursor. Each live petal
// is marked as a zone so mouse presses on it can be resolved.
func (r *Renderer) daisy(count int, removed sequence.PetalSet, cursor int) string {
	rx, ry := daisyRadii(count)
	w := 2*rx + 3 + petalWidth
	h := 2*ry + 1 + stemHeight

	grid := make([][]string, h)
	for y := range grid {
		grid[y] = make([]string, w)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	taken := make([][]bool, h)
	for y := range taken {
		taken[y] = make([]bool, w)
	}

	center := lipgloss.NewStyle().Foreground(styles.PetalCenterColor)
	cx, cy := rx+1, ry
	for dy, line := range daisyCenter {
		for dx, ch := range []rune(line) {
			x, y := cx-2+dx, cy-1+dy
			grid[y][x] = center.Render(string(ch))
			taken[y][x] = true
		}
	}

	stem := lipgloss.NewStyle().Foreground(styles.StemColor)
	for y := 2*ry + 1; y < h; y++ {
		grid[y][cx] = stem.Render("|")
	}

	petal := lipgloss.NewStyle().Foreground(styles.PetalFillColor)
	selected := lipgloss.NewStyle().Foreground(styles.PetalCursorColor).Bold(true)
	gone := lipgloss.NewStyle().Foreground(styles.TextMutedColor)

	for i, p := range PetalPositions(count) {
		x := freeSpan(taken[p.Y], p.X, petalWidth)
		if x < 0 {
			continue
		}
		var token string
		switch {
		case removed.Has(i):
			token = gone.Render(petalGoneGlyph)
		case i == cursor:
			token = selected.Render(petalCursorGlyph)
		default:
			token = petal.Render(petalGlyph)
		}
		if !removed.Has(i) && r.zones != nil {
			token = r.zones.Mark(PetalZoneID(i), token)
		}
		grid[p.Y][x] = token
		for k := 0; k < petalWidth; k++ {
			taken[p.Y][x+k] = true
			if k > 0 {
				grid[p.Y][x+k] = ""
			}
		}
	}

	out := make([]string, h)
	for y, row := range grid {
		out[y] = strings.Join(row, "")
	}
	return strings.Join(out, "\n")
}

// freeSpan finds a run of n free cells at or just right of x, returning its
// start or -1.
func freeSpan(row []bool, x, n int) int {
	for start := x; start <= x+2; start++ {
		if start < 0 || start+n > len(row) {
			continue
		}
		free := true
		for k := range n {
			if row[start+k] {
				free = false
				break
			}
		}
		if free {
			return start
		}
	}
	return -1
}
