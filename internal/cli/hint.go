package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andydunkin/launchkit-frontend/internal/message"
	"github.com/andydunkin/launchkit-frontend/internal/output"
)

func newHintCmd() *cobra.Command {
	var (
		turns   int
		live    bool
		hadCode bool
	)

	cmd := &cobra.Command{
		Use:   "hint",
		Short: "Suggest input-box placeholder text for the chat UI",
		Long: `Pick the context-sensitive placeholder shown in the chat input box, based
on conversation length, whether an app is already live, and whether the
previous assistant turn contained code. No message content is inspected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := output.HintResponse{
				Turns:       turns,
				HasLiveApp:  live,
				LastHadCode: hadCode,
				Placeholder: message.InputPlaceholder(turns, live, hadCode),
			}

			if jsonMode() {
				return output.WriteJSON(cmd.OutOrStdout(), resp, true)
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Placeholder)
			return nil
		},
	}

	cmd.Flags().IntVar(&turns, "turns", 0, "number of prior conversation turns")
	cmd.Flags().BoolVar(&live, "live", false, "an app is already deployed")
	cmd.Flags().BoolVar(&hadCode, "had-code", false, "the previous assistant turn contained code")
	return cmd
}
