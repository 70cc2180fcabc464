package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSON encodes v to w, optionally indented.
func WriteJSON(w io.Writer, v interface{}, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}

// PrintError writes an error to stderr, or as an ErrorResponse on stdout in
// JSON mode, and returns the error for the caller's exit path.
func PrintError(err error, jsonMode bool) error {
	if jsonMode {
		_ = WriteJSON(os.Stdout, NewError(err.Error()), true)
		return err
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return err
}
