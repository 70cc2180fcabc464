package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
)

// readInput resolves the message text for a command: an explicit --text
// value, a file argument, or stdin. ANSI escape sequences are stripped
// before parsing since piped terminal captures often carry them.
// Returns the text plus a (source, path) pair for response metadata.
func readInput(cmd *cobra.Command, args []string, text string) (string, string, string, error) {
	switch {
	case text != "":
		return ansi.Strip(text), "text", "", nil
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return ansi.Strip(string(data)), "file", args[0], nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return ansi.Strip(string(data)), "stdin", "", nil
	}
}
