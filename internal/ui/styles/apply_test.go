package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withPreset registers p for the duration of the test and restores the
// default theme afterwards.
func withPreset(t *testing.T, p Preset) {
	t.Helper()
	Presets[p.Name] = p
	t.Cleanup(func() {
		delete(Presets, p.Name)
		_ = ApplyTheme(ThemeConfig{})
	})
}

func TestApplyTheme_Default(t *testing.T) {
	require.NoError(t, ApplyTheme(ThemeConfig{}))
	assert.Equal(t, DefaultPreset.Colors[TokenPetalFill], PetalFillColor.Dark)
	assert.Equal(t, DefaultPreset.Colors[TokenGardenFlower], GardenFlowerColor.Dark)
}

func TestApplyTheme_Preset(t *testing.T) {
	withPreset(t, Preset{
		Name: "blush",
		Colors: map[ColorToken]string{
			TokenPetalFill:   "#FFE4EC",
			TokenGardenGrass: "#6A994E",
			TokenStatusFinal: "#C9184A",
		},
	})

	require.NoError(t, ApplyTheme(ThemeConfig{Preset: "blush"}))
	assert.Equal(t, "#FFE4EC", PetalFillColor.Dark)
	assert.Equal(t, "#6A994E", GardenGrassColor.Dark)
	assert.Equal(t, "#C9184A", StatusFinalColor.Dark)
	assert.Equal(t, DefaultPreset.Colors[TokenRoseBloom], RoseBloomColor.Dark, "unset tokens come from the default")
}

func TestApplyTheme_ColorOverride(t *testing.T) {
	t.Cleanup(func() { _ = ApplyTheme(ThemeConfig{}) })

	require.NoError(t, ApplyTheme(ThemeConfig{
		Colors: map[string]string{
			"stem":       "#1B4332",
			"rose.bloom": "#9D0208",
		},
	}))
	assert.Equal(t, "#1B4332", StemColor.Dark)
	assert.Equal(t, "#9D0208", RoseBloomColor.Dark)
}

func TestApplyTheme_PresetWithOverride(t *testing.T) {
	withPreset(t, Preset{
		Name: "dusk",
		Colors: map[ColorToken]string{
			TokenGlow: "#FFAFCC",
			TokenStar: "#FDFFB6",
		},
	})

	require.NoError(t, ApplyTheme(ThemeConfig{
		Preset: "dusk",
		Colors: map[string]string{"glow": "#CDB4DB"},
	}))
	assert.Equal(t, "#CDB4DB", GlowColor.Dark, "override beats the preset")
	assert.Equal(t, "#FDFFB6", StarColor.Dark)
}

func TestApplyTheme_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  ThemeConfig
		want string
	}{
		{"unknown preset", ThemeConfig{Preset: "tulip"}, "unknown theme preset"},
		{"unknown token", ThemeConfig{Colors: map[string]string{"petal.stalk": "#FF0000"}}, "unknown color token"},
		{"bad hex", ThemeConfig{Colors: map[string]string{"garden.flower": "pink"}}, "invalid hex color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ApplyTheme(tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestIsValidToken(t *testing.T) {
	tests := []struct {
		token ColorToken
		valid bool
	}{
		{TokenPetalFill, true},
		{TokenPetalCursor, true},
		{TokenGardenGrass, true},
		{TokenCloud, true},
		{ColorToken("petal"), false},
		{ColorToken(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.token), func(t *testing.T) {
			assert.Equal(t, tt.valid, isValidToken(tt.token))
		})
	}
}

func TestIsValidHexColor(t *testing.T) {
	tests := []struct {
		color string
		valid bool
	}{
		{"#F8A", true},
		{"#FF8FAB", true},
		{"#ff8fab", true},
		{"FF8FAB", false},
		{"#FF8F", false},
		{"#FF8FABC", false},
		{"#FF8FAZ", false},
		{"rose", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			assert.Equal(t, tt.valid, isValidHexColor(tt.color))
		})
	}
}

func TestApplyTheme_AllPresets(t *testing.T) {
	t.Cleanup(func() { _ = ApplyTheme(ThemeConfig{}) })
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, ApplyTheme(ThemeConfig{Preset: name}))
			for tok, hex := range Presets[name].Colors {
				assert.True(t, isValidToken(tok), "preset %s: token %s", name, tok)
				assert.True(t, isValidHexColor(hex), "preset %s: color %s", name, hex)
			}
		})
	}
}

func TestDefaultPreset_DefinesEveryToken(t *testing.T) {
	for _, tok := range Tokens() {
		assert.Contains(t, DefaultPreset.Colors, tok)
	}
}

func TestApplyTheme_PresetFallsBackToDefault(t *testing.T) {
	t.Cleanup(func() { _ = ApplyTheme(ThemeConfig{}) })

	// paper leaves the stem color to the default.
	_, set := Presets["paper"].Colors[TokenStem]
	require.False(t, set)

	require.NoError(t, ApplyTheme(ThemeConfig{Preset: "paper"}))
	assert.Equal(t, DefaultPreset.Colors[TokenStem], StemColor.Dark)
}

func TestApplyTheme_RebuildsStyles(t *testing.T) {
	t.Cleanup(func() { _ = ApplyTheme(ThemeConfig{}) })

	require.NoError(t, ApplyTheme(ThemeConfig{Colors: map[string]string{
		"glow":         "#010203",
		"status.final": "#040506",
	}}))
	assert.Equal(t, GlowColor, MessageStyle.GetForeground())
	assert.Equal(t, StatusFinalColor, StatusFinalStyle.GetForeground())
}
