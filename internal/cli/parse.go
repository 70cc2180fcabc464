package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/fsnotify/fsnotify"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/andydunkin/launchkit-frontend/internal/history"
	"github.com/andydunkin/launchkit-frontend/internal/message"
	"github.com/andydunkin/launchkit-frontend/internal/output"
)

func newParseCmd() *cobra.Command {
	var (
		text        string
		showCode    bool
		showMarkers bool
		technical   bool
		userType    string
		showDiff    bool
		watch       bool
		pretty      bool
		saveProject string
	)

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Run the full parsing pipeline over one assistant message",
		Long: `Parse one assistant message (from a file, --text, or stdin) and print
the processed content, the generated-file manifest, and the detected
deployment status.

Pipeline defaults come from the config file; flags override per run.
Because the pipeline is stateless and deterministic, the same input can be
re-parsed under different flags to reproduce either representation.

Examples:
  launchkit parse reply.txt
  launchkit parse reply.txt --user developer --pretty
  launchkit parse --text "Deploying now..." --json
  launchkit parse reply.txt --diff
  launchkit parse reply.txt --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cfg.Options()
			if cmd.Flags().Changed("show-code") {
				opts.HideCodeBlocks = !showCode
			}
			if cmd.Flags().Changed("show-markers") {
				opts.HideFileMarkers = !showMarkers
			}
			if cmd.Flags().Changed("technical") {
				opts.ShowTechnicalDetails = technical
			}
			if cmd.Flags().Changed("user") {
				opts.UserType = message.UserType(userType)
			}

			raw, source, path, err := readInput(cmd, args, text)
			if err != nil {
				return output.PrintError(err, jsonMode())
			}

			run := func(raw string) error {
				return runParse(cmd, raw, source, path, opts, showDiff, pretty, saveProject)
			}

			if watch {
				if path == "" {
					return output.PrintError(errors.New("--watch requires a file argument"), jsonMode())
				}
				return watchAndParse(cmd, path, run)
			}
			return run(raw)
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "parse this text instead of a file or stdin")
	cmd.Flags().BoolVar(&showCode, "show-code", false, "show fenced code blocks verbatim")
	cmd.Flags().BoolVar(&showMarkers, "show-markers", false, "show embedded file markers verbatim")
	cmd.Flags().BoolVar(&technical, "technical", false, "collapse code behind technical details instead of hiding it")
	cmd.Flags().StringVar(&userType, "user", "", "viewer persona: beginner, developer, admin")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "show what the pipeline changed")
	cmd.Flags().BoolVar(&watch, "watch", false, "re-parse the file whenever it changes")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "render content as markdown in the terminal")
	cmd.Flags().StringVar(&saveProject, "save", "", "save the message and result to history under this project")

	return cmd
}

func runParse(cmd *cobra.Command, raw, source, path string, opts message.Options, showDiff, pretty bool, saveProject string) error {
	result := message.ParseMessage(raw, opts)

	resp := output.ParseResponse{
		TimestampedResponse: output.NewTimestamped(),
		Source:              source,
		Path:                path,
		Options:             opts,
		Result:              result,
		AppURL:              message.ExtractAppURL(raw),
	}

	var diffs []diffmatchpatch.Diff
	if showDiff {
		d := diffmatchpatch.New()
		diffs = d.DiffMain(raw, result.Content, false)
		diffs = d.DiffCleanupSemantic(diffs)
		resp.Diff = renderDiff(diffs, false)
	}

	if saveProject != "" {
		if !cfg.History.Enabled {
			return output.PrintError(errors.New("history is disabled in config"), jsonMode())
		}
		store, err := history.Open(cfg.History.DBPath)
		if err != nil {
			return output.PrintError(err, jsonMode())
		}
		defer store.Close()
		if _, err := store.Save(saveProject, raw, result); err != nil {
			return output.PrintError(err, jsonMode())
		}
	}

	if jsonMode() {
		return output.WriteJSON(cmd.OutOrStdout(), resp, true)
	}

	printParsed(cmd, resp, pretty)
	if showDiff {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), sectionStyle.Render("Pipeline changes"))
		fmt.Fprintln(cmd.OutOrStdout(), renderDiff(diffs, true))
	}
	return nil
}

// renderDiff flattens diffs into a line-prefixed form. With color enabled
// insertions and deletions are tinted instead of prefixed.
func renderDiff(diffs []diffmatchpatch.Diff, color bool) string {
	if color {
		return diffmatchpatch.New().DiffPrettyText(diffs)
	}
	var out string
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			out += "{+" + d.Text + "+}"
		case diffmatchpatch.DiffDelete:
			out += "{-" + d.Text + "-}"
		default:
			out += d.Text
		}
	}
	return out
}

// watchAndParse re-runs the pipeline whenever the file is written. Blocks
// until interrupted or the watcher fails.
func watchAndParse(cmd *cobra.Command, path string, run func(string) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return output.PrintError(fmt.Errorf("starting watcher: %w", err), jsonMode())
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return output.PrintError(fmt.Errorf("watching %s: %w", path, err), jsonMode())
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (ctrl-c to stop)\n", path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			data, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				continue
			}
			if err := run(ansi.Strip(string(data))); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return output.PrintError(fmt.Errorf("watcher: %w", err), jsonMode())
		}
	}
}
