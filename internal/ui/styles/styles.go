// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

// Colors, set by ApplyTheme.
var (
	TextPrimaryColor   lipgloss.AdaptiveColor
	TextSecondaryColor lipgloss.AdaptiveColor
	TextMutedColor     lipgloss.AdaptiveColor
	TextHintColor      lipgloss.AdaptiveColor
	PetalFillColor     lipgloss.AdaptiveColor
	PetalCenterColor   lipgloss.AdaptiveColor
	PetalCursorColor   lipgloss.AdaptiveColor
	StemColor          lipgloss.AdaptiveColor
	RoseBloomColor     lipgloss.AdaptiveColor
	RoseLeafColor      lipgloss.AdaptiveColor
	GardenGrassColor   lipgloss.AdaptiveColor
	GardenFlowerColor  lipgloss.AdaptiveColor
	GlowColor          lipgloss.AdaptiveColor
	StarColor          lipgloss.AdaptiveColor
	CloudColor         lipgloss.AdaptiveColor
	BorderDefaultColor lipgloss.AdaptiveColor
	BorderAskColor     lipgloss.AdaptiveColor
	StatusFinalColor   lipgloss.AdaptiveColor
	StatusErrorColor   lipgloss.AdaptiveColor
)

// Styles built from the colors above.
var (
	NarrativeStyle   lipgloss.Style
	HistoryStyle     lipgloss.Style
	HintStyle        lipgloss.Style
	StatusStyle      lipgloss.Style
	StatusFinalStyle lipgloss.Style
	CaptionStyle     lipgloss.Style
	AskStyle         lipgloss.Style
	MessageStyle     lipgloss.Style
	ErrorStyle       lipgloss.Style
	HelpStyle        lipgloss.Style
)

func init() {
	setColors(DefaultPreset.Colors)
	rebuildStyles()
}

func rebuildStyles() {
	NarrativeStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor).Bold(true)
	HistoryStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	HintStyle = lipgloss.NewStyle().Foreground(TextHintColor).Italic(true)
	StatusStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor)
	StatusFinalStyle = lipgloss.NewStyle().Foreground(StatusFinalColor).Bold(true)
	CaptionStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor).Italic(true)
	AskStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor).Bold(true).Padding(1, 3)
	MessageStyle = lipgloss.NewStyle().Foreground(GlowColor).Italic(true)
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	HelpStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
}
