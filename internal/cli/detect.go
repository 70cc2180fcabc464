package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andydunkin/launchkit-frontend/internal/message"
	"github.com/andydunkin/launchkit-frontend/internal/output"
)

func newDetectCmd() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "detect [file]",
		Short: "Detect deployment status and app URL without full parsing",
		Long: `Run only the lightweight status queries over a message: the deployment
lifecycle classification, the success predicate, and the live app URL.

Examples:
  launchkit detect reply.txt
  launchkit detect --text "Your app is live at https://app-abc12345.example.com"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, source, path, err := readInput(cmd, args, text)
			if err != nil {
				return output.PrintError(err, jsonMode())
			}

			resp := output.DetectResponse{
				TimestampedResponse: output.NewTimestamped(),
				Source:              source,
				Path:                path,
				Status:              message.DetectStatus(raw),
				Succeeded:           message.IsDeploymentSuccess(raw),
				AppURL:              message.ExtractAppURL(raw),
			}

			if jsonMode() {
				return output.WriteJSON(cmd.OutOrStdout(), resp, true)
			}

			w := cmd.OutOrStdout()
			status := string(resp.Status)
			if status == "" {
				status = "unknown"
			}
			if style, ok := statusStyles[resp.Status]; ok {
				status = style.Render(status)
			}
			fmt.Fprintf(w, "Status:    %s\n", status)
			fmt.Fprintf(w, "Succeeded: %v\n", resp.Succeeded)
			if resp.AppURL != "" {
				fmt.Fprintf(w, "App URL:   %s\n", resp.AppURL)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "detect on this text instead of a file or stdin")
	return cmd
}
