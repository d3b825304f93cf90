package scene

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/valentine/internal/ui/styles"
)

var roseBloom = []string{
	"    _,--._    ",
	"  ,'  ,-. `.  ",
	" /   (  _)  \\ ",
	" \\  `-'   , / ",
	"  `._____,'   ",
}

var roseStem = []string{
	"      |       ",
	"  \\   |       ",
	"   \\__|  __   ",
	"      | /     ",
	"      |/      ",
	"      |       ",
}

// rose draws the single rose of the rose variant.
func rose() string {
	width := 0
	for _, l := range append(append([]string{}, roseBloom...), roseStem...) {
		width = max(width, runewidth.StringWidth(l))
	}
	bloom := lipgloss.NewStyle().Foreground(styles.RoseBloomColor)
	leaf := lipgloss.NewStyle().Foreground(styles.RoseLeafColor)

	lines := make([]string, 0, len(roseBloom)+len(roseStem))
	for _, l := range roseBloom {
		lines = append(lines, bloom.Render(runewidth.FillRight(l, width)))
	}
	for _, l := range roseStem {
		lines = append(lines, leaf.Render(runewidth.FillRight(l, width)))
	}
	return strings.Join(lines, "\n")
}
