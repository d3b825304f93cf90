// Package noscript is the screen shown instead of the greeting when the
// configured script file cannot be loaded.
package noscript

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/valentine/internal/ui/styles"
)

const wilted = `    ,
   (@)
    \
     |
   --|
     |`

// Model shows the load error until the user quits.
type Model struct {
	path   string
	err    error
	width  int
	height int
}

// New creates the view for a script at path that failed with err.
func New(path string, err error) Model {
	return Model{path: path, err: err}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter", " ":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	wrap := max(m.width-8, 20)
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor).MarginTop(1)
	muted := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(styles.StemColor).Render(wilted))
	b.WriteString("\n\n")
	b.WriteString(title.Render("The words didn't make it."))
	b.WriteString("\n\n")
	b.WriteString(muted.Render("Could not load " + m.path))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(styles.ErrorStyle.Render(wordwrap.String(m.err.Error(), wrap)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(muted.Render("  1. Fix the file and run valentine again"))
	b.WriteString("\n")
	b.WriteString(muted.Render("  2. Run 'valentine script' to see the built-in script"))
	b.WriteString("\n")
	b.WriteString(muted.Render("  3. Drop --script (or script.path) to use the built-in script"))
	b.WriteString("\n\n")
	b.WriteString(styles.HintStyle.Render("Press q to quit"))

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

// SetSize updates the view dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}
