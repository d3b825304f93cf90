package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zjrosen/valentine/internal/sequence"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the greeting variants",
	RunE: func(cmd *cobra.Command, _ []string) error {
		printVariants(cmd.OutOrStdout(), cfg.Variant)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(variantsCmd)
}

// printVariants lists every variant, marking current.
func printVariants(w io.Writer, current string) {
	infos := sequence.Variants()
	width := 0
	for _, info := range infos {
		width = max(width, len(info.Variant))
	}

	_, _ = fmt.Fprintln(w, "Variants:")
	for _, info := range infos {
		mark := " "
		if string(info.Variant) == current {
			mark = "*"
		}
		_, _ = fmt.Fprintf(w, " %s %-*s  %s\n", mark, width, info.Variant, info.Description)
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Pick one with --variant or 'variant:' in the config file.")
}
