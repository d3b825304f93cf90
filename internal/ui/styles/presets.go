package styles

import "sort"

// Preset is a named built-in palette.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// DefaultPreset defines every token; other presets may override a subset.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Rose petals on a dark sky",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#F5F0F6",
		TokenTextSecondary: "#D8B4C8",
		TokenTextMuted:     "#7A6F80",
		TokenTextHint:      "#9C8AA5",
		TokenPetalFill:     "#FFFFFF",
		TokenPetalCenter:   "#FFD166",
		TokenPetalCursor:   "#FF8FAB",
		TokenStem:          "#4CAF50",
		TokenRoseBloom:     "#E63946",
		TokenRoseLeaf:      "#2D6A4F",
		TokenGardenGrass:   "#52B788",
		TokenGardenFlower:  "#FF8FAB",
		TokenGlow:          "#FFC2D1",
		TokenStar:          "#FFF3B0",
		TokenCloud:         "#E0E1DD",
		TokenBorderDefault: "#5C5470",
		TokenBorderAsk:     "#FF4D6D",
		TokenStatusFinal:   "#FF4D6D",
		TokenStatusError:   "#FF5555",
	},
}

// Presets holds every built-in palette by name.
var Presets = map[string]Preset{
	"default": DefaultPreset,
	"sunset": {
		Name:        "sunset",
		Description: "Warm oranges and pinks",
		Colors: map[ColorToken]string{
			TokenTextPrimary:   "#FFF1E6",
			TokenTextSecondary: "#FFB4A2",
			TokenTextMuted:     "#9D8189",
			TokenPetalFill:     "#FFE5D9",
			TokenPetalCenter:   "#F4A261",
			TokenRoseBloom:     "#E76F51",
			TokenGardenFlower:  "#F4A261",
			TokenGlow:          "#FFCDB2",
			TokenStar:          "#FFD6A5",
			TokenBorderAsk:     "#E76F51",
			TokenStatusFinal:   "#E76F51",
		},
	},
	"midnight": {
		Name:        "midnight",
		Description: "Deep blues with silver text",
		Colors: map[ColorToken]string{
			TokenTextPrimary:   "#E0E6F0",
			TokenTextSecondary: "#A9B8D0",
			TokenTextMuted:     "#5A6A85",
			TokenPetalFill:     "#DDE6F5",
			TokenPetalCenter:   "#C0C8D8",
			TokenPetalCursor:   "#7FB3FF",
			TokenRoseBloom:     "#B5179E",
			TokenGardenGrass:   "#3A5A8C",
			TokenGardenFlower:  "#7FB3FF",
			TokenGlow:          "#9DB4FF",
			TokenStar:          "#FFFFFF",
			TokenCloud:         "#8D99AE",
			TokenBorderDefault: "#2B3A55",
			TokenBorderAsk:     "#7FB3FF",
			TokenStatusFinal:   "#7FB3FF",
		},
	},
	"paper": {
		Name:        "paper",
		Description: "Light background, ink text",
		Colors: map[ColorToken]string{
			TokenTextPrimary:   "#1B1B1B",
			TokenTextSecondary: "#4A4A4A",
			TokenTextMuted:     "#8A8A8A",
			TokenTextHint:      "#6B6B6B",
			TokenPetalFill:     "#C9184A",
			TokenPetalCenter:   "#E09F3E",
			TokenPetalCursor:   "#1B1B1B",
			TokenStar:          "#E09F3E",
			TokenCloud:         "#A0A0A0",
			TokenBorderDefault: "#BDBDBD",
			TokenBorderAsk:     "#C9184A",
			TokenStatusFinal:   "#C9184A",
		},
	},
}

// PresetNames returns the preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for n := range Presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
