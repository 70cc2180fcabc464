// Package message implements the parsing pipeline that turns a raw
// assistant-generated chat message into a clean display string, a manifest
// of embedded files, and a deployment lifecycle classification.
//
// Every function in this package is a pure mapping from its inputs to its
// outputs. Nothing is cached between calls, so the same raw text can be
// re-parsed under different options to deterministically reproduce either
// representation (the chat UI relies on this for its raw/parsed toggle).
package message

import "strings"

// Status is a coarse deployment lifecycle classification inferred from
// natural-language cues in message text.
type Status string

const (
	// StatusDeploying means a deployment is in progress.
	StatusDeploying Status = "deploying"
	// StatusDeployed means the app was deployed successfully.
	StatusDeployed Status = "deployed"
	// StatusFailed means the deployment hit an error.
	StatusFailed Status = "failed"
	// StatusUnknown means no lifecycle cue was found in the text.
	StatusUnknown Status = ""
)

// Keyword families checked by DetectStatus, in precedence order. Failure
// outranks success outranks in-progress: a message that mentions a past
// failure and a current retry must classify as failed, because the failure
// is what the user needs to see first.
var (
	failureCues = []string{
		"deployment failed",
		"build failed",
		"deployment issue",
		"deployment error",
	}
	successCues = []string{
		"your app is live",
		"app is live at",
		"deployed successfully",
		"deployment complete",
	}
	progressCues = []string{
		"deploying",
		"building",
		"creating deployment",
		"deployment in progress",
	}
)

// DetectStatus scans text for deployment lifecycle cues and returns the
// highest-precedence family that matches, or StatusUnknown. Matching is
// case-insensitive substring search, not tokenized.
func DetectStatus(text string) Status {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, failureCues):
		return StatusFailed
	case containsAny(lower, successCues):
		return StatusDeployed
	case containsAny(lower, progressCues):
		return StatusDeploying
	}
	return StatusUnknown
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
