package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/andydunkin/launchkit-frontend/internal/message"
	"github.com/andydunkin/launchkit-frontend/internal/output"
)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	statusStyles = map[message.Status]lipgloss.Style{
		message.StatusDeployed:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22C55E")),
		message.StatusDeploying: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EAB308")),
		message.StatusFailed:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
	}
)

func init() {
	// Honor the terminal's actual color capabilities for styled output.
	lipgloss.SetColorProfile(termenv.ColorProfile())
}

// termWidth returns the stdout terminal width, defaulting to 80 when stdout
// is not a terminal.
func termWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// renderContent optionally renders content as terminal markdown via
// glamour. Rendering failures fall back to the plain string.
func renderContent(content string, pretty bool) string {
	if !pretty {
		return content
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(termWidth())}
	if style := cfg.UI.GlamourStyle; style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}

// printParsed writes the human-readable form of a parse result.
func printParsed(cmd *cobra.Command, resp output.ParseResponse, pretty bool) {
	w := cmd.OutOrStdout()

	if resp.Result.DeploymentStatus != message.StatusUnknown {
		style, ok := statusStyles[resp.Result.DeploymentStatus]
		if !ok {
			style = dimStyle
		}
		fmt.Fprintf(w, "%s %s\n", dimStyle.Render("Status:"), style.Render(string(resp.Result.DeploymentStatus)))
	}
	if resp.AppURL != "" {
		fmt.Fprintf(w, "%s %s\n", dimStyle.Render("App:"), resp.AppURL)
	}

	if len(resp.Result.FilesGenerated) > 0 {
		fmt.Fprintln(w, sectionStyle.Render("Files"))
		// Pad the path column so line counts align, using display width
		// rather than byte length.
		maxWidth := 0
		paths := make([]string, len(resp.Result.FilesGenerated))
		counts := make([]string, len(resp.Result.FilesGenerated))
		for i, entry := range resp.Result.FilesGenerated {
			path, count := splitFileEntry(entry)
			paths[i], counts[i] = path, count
			if pw := runewidth.StringWidth(path); pw > maxWidth {
				maxWidth = pw
			}
		}
		for i := range paths {
			fmt.Fprintf(w, "  %s  %s\n", runewidth.FillRight(paths[i], maxWidth), dimStyle.Render(counts[i]))
		}
	}

	fmt.Fprintln(w, sectionStyle.Render("Message"))
	fmt.Fprintln(w, renderContent(resp.Result.Content, pretty))
}

// splitFileEntry splits "<path> (<n> lines)" into its path and count parts.
// Entries without the suffix come back whole.
func splitFileEntry(entry string) (string, string) {
	idx := strings.LastIndex(entry, " (")
	if idx < 0 || !strings.HasSuffix(entry, ")") {
		return entry, ""
	}
	return entry[:idx], entry[idx+1:]
}
