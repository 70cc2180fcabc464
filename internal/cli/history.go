package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andydunkin/launchkit-frontend/internal/history"
	"github.com/andydunkin/launchkit-frontend/internal/output"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse stored messages and their parse results",
		Long: `Browse messages saved with "parse --save". The raw text is stored
untouched, so "history show" can always re-display either representation.`,
	}

	cmd.AddCommand(
		newHistoryListCmd(),
		newHistoryShowCmd(),
	)
	return cmd
}

func openStore() (*history.Store, error) {
	if !cfg.History.Enabled {
		return nil, errors.New("history is disabled in config")
	}
	return history.Open(cfg.History.DBPath)
}

func newHistoryListCmd() *cobra.Command {
	var (
		project string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored messages, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return output.PrintError(err, jsonMode())
			}
			defer store.Close()

			records, err := store.List(project, limit)
			if err != nil {
				return output.PrintError(err, jsonMode())
			}

			resp := output.HistoryListResponse{
				TimestampedResponse: output.NewTimestamped(),
				Project:             project,
				Count:               len(records),
			}
			for _, rec := range records {
				resp.Items = append(resp.Items, output.HistoryItem{
					ID:        rec.ID,
					Project:   rec.Project,
					Status:    rec.Result.DeploymentStatus,
					HasCode:   rec.Result.HasCode,
					FileCount: len(rec.Result.FilesGenerated),
					CreatedAt: rec.CreatedAt,
				})
			}

			if jsonMode() {
				return output.WriteJSON(cmd.OutOrStdout(), resp, true)
			}

			w := cmd.OutOrStdout()
			if len(resp.Items) == 0 {
				fmt.Fprintln(w, "No stored messages.")
				return nil
			}
			for _, item := range resp.Items {
				status := string(item.Status)
				if status == "" {
					status = "-"
				}
				fmt.Fprintf(w, "%4d  %-16s  %-10s  files:%d  %s\n",
					item.ID, item.Project, status, item.FileCount,
					item.CreatedAt.Local().Format("2006-01-02 15:04"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "only show messages for this project")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum number of messages to show")
	return cmd
}

func newHistoryShowCmd() *cobra.Command {
	var showRaw bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one stored message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return output.PrintError(fmt.Errorf("invalid id %q", args[0]), jsonMode())
			}

			store, err := openStore()
			if err != nil {
				return output.PrintError(err, jsonMode())
			}
			defer store.Close()

			rec, err := store.Get(id)
			if err != nil {
				return output.PrintError(err, jsonMode())
			}

			resp := output.HistoryShowResponse{
				TimestampedResponse: output.NewTimestamped(),
				Item: output.HistoryItem{
					ID:        rec.ID,
					Project:   rec.Project,
					Status:    rec.Result.DeploymentStatus,
					HasCode:   rec.Result.HasCode,
					FileCount: len(rec.Result.FilesGenerated),
					CreatedAt: rec.CreatedAt,
				},
				Raw:    rec.Raw,
				Result: rec.Result,
			}

			if jsonMode() {
				return output.WriteJSON(cmd.OutOrStdout(), resp, true)
			}

			w := cmd.OutOrStdout()
			if showRaw {
				fmt.Fprintln(w, sectionStyle.Render("Raw message"))
				fmt.Fprintln(w, rec.Raw)
				return nil
			}
			fmt.Fprintln(w, sectionStyle.Render(fmt.Sprintf("Message %d (%s)", rec.ID, rec.Project)))
			fmt.Fprintln(w, rec.Result.Content)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showRaw, "raw", false, "show the stored raw text instead of the parsed content")
	return cmd
}
