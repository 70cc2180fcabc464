package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/andydunkin/launchkit-frontend/internal/message"
	"github.com/andydunkin/launchkit-frontend/internal/output"
	"github.com/andydunkin/launchkit-frontend/internal/tui"
)

func newViewCmd() *cobra.Command {
	var (
		text     string
		userType string
	)

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Interactively toggle between raw and parsed representations",
		Long: `Open a message in a terminal viewer. Tab switches between the raw text
and the parsed representation; d, t, c, and f flip pipeline options live.
Each flip re-runs the pipeline on the retained raw text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if text == "" && len(args) == 0 {
				return output.PrintError(errors.New("view needs a file argument or --text"), jsonMode())
			}

			raw, _, _, err := readInput(cmd, args, text)
			if err != nil {
				return output.PrintError(err, jsonMode())
			}

			opts := cfg.Options()
			if cmd.Flags().Changed("user") {
				opts.UserType = message.UserType(userType)
			}

			model := tui.New(raw, opts, cfg.UI.GlamourStyle)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			if err != nil {
				return output.PrintError(err, jsonMode())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "view this text instead of a file")
	cmd.Flags().StringVar(&userType, "user", "", "viewer persona: beginner, developer, admin")
	return cmd
}
