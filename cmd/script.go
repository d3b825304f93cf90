package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/valentine/internal/script"
)

var (
	scriptRaw   bool
	scriptWidth int
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Show the words the greeting will use",
	Long: `Print the active script. Without --raw the script is rendered as
markdown; with --raw it is printed as YAML, ready to edit and pass to --script.`,
	RunE: runScript,
}

func init() {
	scriptCmd.Flags().BoolVar(&scriptRaw, "raw", false, "print YAML instead of rendered markdown")
	scriptCmd.Flags().IntVar(&scriptWidth, "width", 80, "wrap width for rendered output")
	rootCmd.AddCommand(scriptCmd)
}

func runScript(cmd *cobra.Command, _ []string) error {
	sc, err := loadScript(expandHome(cfg.Script.Path))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if scriptRaw {
		b, err := yaml.Marshal(sc)
		if err != nil {
			return fmt.Errorf("encoding script: %w", err)
		}
		_, err = out.Write(b)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(scriptWidth),
	)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	rendered, err := r.Render(scriptMarkdown(sc))
	if err != nil {
		return fmt.Errorf("rendering script: %w", err)
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}

// scriptMarkdown lays the script out scene by scene.
func scriptMarkdown(s *script.Script) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# For %s\n\n", s.Recipient)

	b.WriteString("## Opening\n\n")
	fmt.Fprintf(&b, "> %s\n\n", s.Opening)

	b.WriteString("## Thoughts\n\n")
	for i, line := range s.Thoughts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, line)
	}

	fmt.Fprintf(&b, "\n## The daisy (%d petals)\n\n", s.Petals.Count)
	fmt.Fprintf(&b, "- Before the first petal: *%s*\n", s.Petals.Fate)
	fmt.Fprintf(&b, "- Odd petals: *%s*\n", s.Petals.Loves)
	fmt.Fprintf(&b, "- Even petals: *%s*\n", s.Petals.LovesNot)
	fmt.Fprintf(&b, "- Last petal: **%s**\n", s.Petals.Final)

	b.WriteString("\n## Bridge\n\n")
	for i, line := range s.Bridge {
		fmt.Fprintf(&b, "%d. %s\n", i+1, line)
	}

	b.WriteString("\n## Rose\n\n")
	fmt.Fprintf(&b, "> %s\n", s.RoseCaption)

	b.WriteString("\n## The question\n\n")
	fmt.Fprintf(&b, "**%s**\n\n", s.AskMessage())
	fmt.Fprintf(&b, "---\n\n_Hint between lines: %s_\n", s.Hint)
	return b.String()
}
