package styles

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// ColorToken names one themeable color.
type ColorToken string

// Color tokens.
const (
	TokenTextPrimary   ColorToken = "text.primary"
	TokenTextSecondary ColorToken = "text.secondary"
	TokenTextMuted     ColorToken = "text.muted"
	TokenTextHint      ColorToken = "text.hint"

	TokenPetalFill   ColorToken = "petal.fill"
	TokenPetalCenter ColorToken = "petal.center"
	TokenPetalCursor ColorToken = "petal.cursor"
	TokenStem        ColorToken = "stem"

	TokenRoseBloom ColorToken = "rose.bloom"
	TokenRoseLeaf  ColorToken = "rose.leaf"

	TokenGardenGrass  ColorToken = "garden.grass"
	TokenGardenFlower ColorToken = "garden.flower"
	TokenGlow         ColorToken = "glow"

	TokenStar  ColorToken = "star"
	TokenCloud ColorToken = "cloud"

	TokenBorderDefault ColorToken = "border.default"
	TokenBorderAsk     ColorToken = "border.ask"

	TokenStatusFinal ColorToken = "status.final"
	TokenStatusError ColorToken = "status.error"
)

var allTokens = []ColorToken{
	TokenTextPrimary, TokenTextSecondary, TokenTextMuted, TokenTextHint,
	TokenPetalFill, TokenPetalCenter, TokenPetalCursor, TokenStem,
	TokenRoseBloom, TokenRoseLeaf,
	TokenGardenGrass, TokenGardenFlower, TokenGlow,
	TokenStar, TokenCloud,
	TokenBorderDefault, TokenBorderAsk,
	TokenStatusFinal, TokenStatusError,
}

// Tokens lists every color token.
func Tokens() []ColorToken {
	out := make([]ColorToken, len(allTokens))
	copy(out, allTokens)
	return out
}

func isValidToken(t ColorToken) bool {
	for _, known := range allTokens {
		if known == t {
			return true
		}
	}
	return false
}

var hexColorRe = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func isValidHexColor(s string) bool {
	return hexColorRe.MatchString(s)
}

// ThemeConfig selects a preset and per-token overrides.
type ThemeConfig struct {
	Preset string
	// Mode forces "light" or "dark"; empty uses terminal detection.
	Mode   string
	Colors map[string]string
}

// ApplyTheme resets every color to the preset (default when empty), applies
// the overrides and rebuilds the styles.
func ApplyTheme(cfg ThemeConfig) error {
	preset := DefaultPreset
	if cfg.Preset != "" {
		p, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset %q (available: %v)", cfg.Preset, PresetNames())
		}
		preset = p
	}

	colors := make(map[ColorToken]string, len(allTokens))
	for _, t := range allTokens {
		colors[t] = DefaultPreset.Colors[t]
	}
	for t, c := range preset.Colors {
		colors[t] = c
	}

	keys := make([]string, 0, len(cfg.Colors))
	for k := range cfg.Colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		tok, val := ColorToken(k), cfg.Colors[k]
		if !isValidToken(tok) {
			return fmt.Errorf("unknown color token %q", k)
		}
		if !isValidHexColor(val) {
			return fmt.Errorf("invalid hex color %q for %s", val, k)
		}
		colors[tok] = val
	}

	switch cfg.Mode {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}

	setColors(colors)
	rebuildStyles()
	return nil
}

func adaptive(hex string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
}

func setColors(c map[ColorToken]string) {
	TextPrimaryColor = adaptive(c[TokenTextPrimary])
	TextSecondaryColor = adaptive(c[TokenTextSecondary])
	TextMutedColor = adaptive(c[TokenTextMuted])
	TextHintColor = adaptive(c[TokenTextHint])
	PetalFillColor = adaptive(c[TokenPetalFill])
	PetalCenterColor = adaptive(c[TokenPetalCenter])
	PetalCursorColor = adaptive(c[TokenPetalCursor])
	StemColor = adaptive(c[TokenStem])
	RoseBloomColor = adaptive(c[TokenRoseBloom])
	RoseLeafColor = adaptive(c[TokenRoseLeaf])
	GardenGrassColor = adaptive(c[TokenGardenGrass])
	GardenFlowerColor = adaptive(c[TokenGardenFlower])
	GlowColor = adaptive(c[TokenGlow])
	StarColor = adaptive(c[TokenStar])
	CloudColor = adaptive(c[TokenCloud])
	BorderDefaultColor = adaptive(c[TokenBorderDefault])
	BorderAskColor = adaptive(c[TokenBorderAsk])
	StatusFinalColor = adaptive(c[TokenStatusFinal])
	StatusErrorColor = adaptive(c[TokenStatusError])
}
