package scene

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/zjrosen/valentine/internal/ui/styles"
)

const (
	gardenWidth  = 48
	gardenHeight = 16

	// GrowFrames is how many animation frames the garden takes to grow.
	GrowFrames = 16
)

type gardenFlower struct {
	x, height int
}

var gardenFlowers = []gardenFlower{
	{x: 10, height: 7},
	{x: 24, height: 9},
	{x: 38, height: 6},
}

var gardenBloom = []string{
	"\\|/",
	"-@-",
	"/|\\",
}

const grassPattern = `\|/,` + "`" + `\|/ ,\\|//,  \|/.`

// garden returns the garden at animation frame f. Frames are deterministic,
// so each distinct frame is rendered once and cached.
func (r *Renderer) garden(f int, started bool) string {
	stage := min(f, GrowFrames)
	twinkle := 0
	if started && f >= GrowFrames {
		twinkle = (f / 2) % 2
	}
	key := fmt.Sprintf("%d/%d/%t", stage, twinkle, started)
	if v, ok := r.frames.Get(key); ok {
		return v.(string)
	}
	s := gardenFrame(stage, twinkle, started)
	r.frames.Set(key, s, cache.DefaultExpiration)
	return s
}

func gardenFrame(stage, twinkle int, started bool) string {
	grid := make([][]string, gardenHeight)
	for y := range grid {
		grid[y] = make([]string, gardenWidth)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}

	stem := lipgloss.NewStyle().Foreground(styles.StemColor)
	leaf := lipgloss.NewStyle().Foreground(styles.GardenGrassColor)
	flower := lipgloss.NewStyle().Foreground(styles.GardenFlowerColor)
	center := lipgloss.NewStyle().Foreground(styles.PetalCenterColor).Bold(true)
	light := lipgloss.NewStyle().Foreground(styles.GlowColor)

	ground := gardenHeight - 3
	for _, fl := range gardenFlowers {
		grown := fl.height * stage / GrowFrames
		for k := 0; k < grown; k++ {
			y := ground - 1 - k
			grid[y][fl.x] = stem.Render("|")
			if k%3 == 1 {
				grid[y][fl.x-1] = leaf.Render("\\")
			} else if k%3 == 2 {
				grid[y][fl.x+1] = leaf.Render("/")
			}
		}
		if grown < fl.height {
			continue
		}
		top := ground - fl.height - len(gardenBloom)
		for dy, line := range gardenBloom {
			for dx, ch := range line {
				style := flower
				if ch == '@' {
					style = center
				}
				grid[top+dy][fl.x-1+dx] = style.Render(string(ch))
			}
		}
		if started {
			sparkles := []Point{{fl.x - 3, top}, {fl.x + 3, top + 2}}
			if twinkle == 1 {
				sparkles = []Point{{fl.x + 3, top}, {fl.x - 3, top + 2}}
			}
			for _, p := range sparkles {
				grid[p.Y][p.X] = light.Render("*")
			}
		}
	}

	grass := lipgloss.NewStyle().Foreground(styles.GardenGrassColor)
	rows := 1
	if stage >= 2 {
		rows = 2
	}
	for row := 0; row < rows; row++ {
		y := ground + row
		for x := 0; x < gardenWidth; x++ {
			ch := grassPattern[(x+row*3)%len(grassPattern)]
			if grid[y][x] == " " {
				grid[y][x] = grass.Render(string(ch))
			}
		}
	}

	if started {
		grid[gardenHeight-1] = []string{
			lipgloss.NewStyle().Foreground(styles.GlowColor).Render(strings.Repeat("░", gardenWidth)),
		}
	}

	out := make([]string, gardenHeight)
	for y, row := range grid {
		out[y] = strings.Join(row, "")
	}
	return strings.Join(out, "\n")
}
