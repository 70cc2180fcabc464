package message

import (
	"strings"
	"testing"
)

func TestEnhance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    Status
		fileCount int
		contains  string
	}{
		{name: "deployed single", status: StatusDeployed, fileCount: 1, contains: "deployed successfully"},
		{name: "deployed plural mentions count", status: StatusDeployed, fileCount: 3, contains: "(3 files)"},
		{name: "deploying", status: StatusDeploying, fileCount: 1, contains: "Deployment in progress"},
		{name: "failed", status: StatusFailed, fileCount: 0, contains: "ran into a problem"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Enhance("body", tt.status, tt.fileCount)
			if !strings.HasPrefix(got, "body\n\n") {
				t.Errorf("trailer not appended after blank line: %q", got)
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("Enhance(%q, %d) = %q, want it to contain %q", tt.status, tt.fileCount, got, tt.contains)
			}
		})
	}
}

func TestEnhance_UnknownStatusNoOp(t *testing.T) {
	t.Parallel()

	if got := Enhance("body", StatusUnknown, 5); got != "body" {
		t.Errorf("Enhance with unknown status = %q, want unchanged text", got)
	}
	if got := Enhance("body", Status("weird"), 1); got != "body" {
		t.Errorf("Enhance with unrecognized status = %q, want unchanged text", got)
	}
}
