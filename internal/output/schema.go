// Package output defines the JSON response schemas the CLI emits in
// machine-readable mode, plus small helpers for writing them.
package output

import (
	"time"

	"github.com/andydunkin/launchkit-frontend/internal/message"
)

// ErrorResponse is the standard JSON error format
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// NewError creates a new error response
func NewError(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// NewErrorWithDetails creates a new error response with details
func NewErrorWithDetails(msg, details string) ErrorResponse {
	return ErrorResponse{Error: msg, Details: details}
}

// TimestampedResponse adds a timestamp to any response
type TimestampedResponse struct {
	GeneratedAt time.Time `json:"generated_at"`
}

// NewTimestamped creates a timestamped response base
func NewTimestamped() TimestampedResponse {
	return TimestampedResponse{GeneratedAt: time.Now().UTC()}
}

// ParseResponse is the output format for the parse command
type ParseResponse struct {
	TimestampedResponse
	Source  string          `json:"source"` // text|file|stdin
	Path    string          `json:"path,omitempty"`
	Options message.Options `json:"options"`
	Result  message.Parsed  `json:"result"`
	AppURL  string          `json:"app_url,omitempty"`
	Diff    string          `json:"diff,omitempty"` // unified raw-vs-parsed diff when requested
}

// DetectResponse is the output format for the detect command
type DetectResponse struct {
	TimestampedResponse
	Source    string         `json:"source"`
	Path      string         `json:"path,omitempty"`
	Status    message.Status `json:"deployment_status"`
	Succeeded bool           `json:"deployment_succeeded"`
	AppURL    string         `json:"app_url,omitempty"`
}

// HintResponse is the output format for the hint command
type HintResponse struct {
	Turns       int    `json:"turns"`
	HasLiveApp  bool   `json:"has_live_app"`
	LastHadCode bool   `json:"last_had_code"`
	Placeholder string `json:"placeholder"`
}

// HistoryItem is a single stored message in history output
type HistoryItem struct {
	ID        int64          `json:"id"`
	Project   string         `json:"project"`
	Status    message.Status `json:"deployment_status,omitempty"`
	HasCode   bool           `json:"has_code"`
	FileCount int            `json:"file_count"`
	CreatedAt time.Time      `json:"created_at"`
}

// HistoryListResponse is the output format for history list
type HistoryListResponse struct {
	TimestampedResponse
	Project string        `json:"project,omitempty"`
	Items   []HistoryItem `json:"items"`
	Count   int           `json:"count"`
}

// HistoryShowResponse is the output format for history show
type HistoryShowResponse struct {
	TimestampedResponse
	Item   HistoryItem    `json:"item"`
	Raw    string         `json:"raw"`
	Result message.Parsed `json:"result"`
}
