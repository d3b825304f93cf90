package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zjrosen/valentine/internal/config"
	"github.com/zjrosen/valentine/internal/script"
)

var (
	initLocal      bool
	initForce      bool
	initScriptPath string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a commented config file to ~/.config/valentine/config.yaml,
or to ./.valentine.yaml with --local. With --script, also write the built-in
script to the given path so it can be personalised.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := filepath.Join(config.DefaultDir(), "config.yaml")
		if initLocal {
			path = ".valentine.yaml"
		}
		out := cmd.OutOrStdout()

		if err := writeIfAbsent(path, initForce, config.WriteDefaultConfig); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Wrote config to %s\n", path)

		if initScriptPath != "" {
			sp := expandHome(initScriptPath)
			err := writeIfAbsent(sp, initForce, func(p string) error {
				if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
					return err
				}
				return os.WriteFile(p, script.DefaultYAML(), 0o600)
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "Wrote script to %s (use it with --script %s)\n", sp, sp)
		}
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initLocal, "local", false, "write ./.valentine.yaml instead of the user config")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing files")
	initCmd.Flags().StringVar(&initScriptPath, "script", "", "also write the built-in script to this path")
	rootCmd.AddCommand(initCmd)
}

// errExists is returned by writeIfAbsent when path exists and force is off.
var errExists = errors.New("file already exists (use --force to overwrite)")

func writeIfAbsent(path string, force bool, write func(string) error) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s: %w", path, errExists)
	}
	return write(path)
}
