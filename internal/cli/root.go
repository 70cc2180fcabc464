// Package cli implements the launchkit command tree.
package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/andydunkin/launchkit-frontend/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
	jsonOut bool

	// Build information - set via ldflags
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCmd assembles the command tree. A fresh tree is built per
// invocation so flag state never leaks between runs (cobra retains flag
// values and changed-ness across Execute calls on a reused command).
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "launchkit",
		Short: "Parse assistant-generated app-builder messages",
		Long: `launchkit processes raw assistant chat messages from the app builder:
it extracts embedded source files into a manifest, hides or collapses code
blocks per viewer persona, classifies the deployment status, and appends a
status banner.

Quick Start:
  launchkit parse reply.txt              # Parse a saved assistant message
  cat reply.txt | launchkit parse        # Same, from stdin
  launchkit parse reply.txt --user developer
  launchkit detect reply.txt             # Deployment status and app URL only
  launchkit view reply.txt               # Toggle raw/parsed in a TUI`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" || cmd.Name() == "completion" {
				return nil
			}
			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				// Use defaults if config doesn't exist or fails to parse
				cfg = config.Default()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/launchkit/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "force JSON output")

	rootCmd.AddCommand(
		newParseCmd(),
		newDetectCmd(),
		newHintCmd(),
		newHistoryCmd(),
		newViewCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// jsonMode reports whether output should be machine-readable JSON: either
// requested explicitly or implied by a non-TTY stdout.
func jsonMode() bool {
	if jsonOut {
		return true
	}
	return !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
}
