package message

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseMessage_Defaults(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	if !opts.HideCodeBlocks || !opts.HideFileMarkers {
		t.Errorf("DefaultOptions() = %+v, want both hide flags true", opts)
	}
	if opts.UserType != UserBeginner {
		t.Errorf("UserType = %q, want %q", opts.UserType, UserBeginner)
	}
	if opts.ShowTechnicalDetails {
		t.Error("ShowTechnicalDetails = true, want false")
	}
}

// TestParseMessage_RoundTripOnAbsence verifies that input with no fences
// and no markers passes through with hasCode=false and content equal to
// the normalized input.
func TestParseMessage_RoundTripOnAbsence(t *testing.T) {
	t.Parallel()

	raw := "Just an answer.   \n\n\n\n\nWith some spacing."
	got := ParseMessage(raw, DefaultOptions())

	if got.HasCode {
		t.Error("HasCode = true, want false")
	}
	if len(got.FilesGenerated) != 0 {
		t.Errorf("FilesGenerated = %v, want none", got.FilesGenerated)
	}
	if got.DeploymentStatus != StatusUnknown {
		t.Errorf("DeploymentStatus = %q, want unknown", got.DeploymentStatus)
	}
	if want := Normalize(raw); got.Content != want {
		t.Errorf("Content = %q, want normalized input %q", got.Content, want)
	}
}

// TestParseMessage_Deterministic verifies byte-identical output across
// repeated calls with the same inputs.
func TestParseMessage_Deterministic(t *testing.T) {
	t.Parallel()

	raw := "Deploying now.\nFILENAME: a.ts\nconst a = 1\nENDFILE: a.ts\n```js\nlet x = 2\n```"
	opts := DefaultOptions()

	first := ParseMessage(raw, opts)
	second := ParseMessage(raw, opts)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated parse differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

// TestParseMessage_CodeScenario covers the beginner code-hiding scenario:
// the fenced block is replaced by a generic placeholder.
func TestParseMessage_CodeScenario(t *testing.T) {
	t.Parallel()

	raw := "Here you go:\n```js\nconsole.log(1)\n```"
	got := ParseMessage(raw, DefaultOptions())

	if !got.HasCode {
		t.Error("HasCode = false, want true")
	}
	if strings.Contains(got.Content, "console.log") {
		t.Errorf("code leaked: %q", got.Content)
	}
	if !strings.Contains(got.Content, placeholderGeneric) {
		t.Errorf("Content = %q, want generic placeholder", got.Content)
	}
}

// TestParseMessage_DeployedScenario covers a full success turn: one file,
// a live URL, the deployed classification, and the single-file trailer.
func TestParseMessage_DeployedScenario(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("const line = 1\n", 12)
	raw := "FILENAME: app/page.tsx\n" + body + "ENDFILE: app/page.tsx\n\nYour app is live at https://app-abc12345.example.com"

	got := ParseMessage(raw, DefaultOptions())

	if got.DeploymentStatus != StatusDeployed {
		t.Errorf("DeploymentStatus = %q, want %q", got.DeploymentStatus, StatusDeployed)
	}
	want := []string{"app/page.tsx (12 lines)"}
	if !reflect.DeepEqual(got.FilesGenerated, want) {
		t.Errorf("FilesGenerated = %v, want %v", got.FilesGenerated, want)
	}
	if !strings.Contains(got.Content, "deployed successfully") {
		t.Errorf("Content = %q, want deployed trailer", got.Content)
	}
	if strings.Contains(got.Content, "(1 files)") {
		t.Errorf("Content = %q, single file must not use plural form", got.Content)
	}
}

// TestParseMessage_DeveloperScenario verifies the developer persona keeps
// the fenced block in a collapsible wrapper.
func TestParseMessage_DeveloperScenario(t *testing.T) {
	t.Parallel()

	raw := "```go\nfunc main() {}\n```"
	opts := DefaultOptions()
	opts.UserType = UserDeveloper

	got := ParseMessage(raw, opts)
	if !strings.Contains(got.Content, "func main() {}") {
		t.Errorf("code deleted for developer: %q", got.Content)
	}
	if !strings.Contains(got.Content, "<details>") {
		t.Errorf("Content = %q, want collapsible wrapper", got.Content)
	}
}

// TestParseMessage_StagesRespectOptions verifies each hide flag gates its
// stage independently.
func TestParseMessage_StagesRespectOptions(t *testing.T) {
	t.Parallel()

	raw := "FILENAME: a.ts\nconst a = 1\nENDFILE: a.ts\n```js\nlet x = 2\n```"

	t.Run("markers shown raw", func(t *testing.T) {
		opts := DefaultOptions()
		opts.HideFileMarkers = false
		got := ParseMessage(raw, opts)
		if !strings.Contains(got.Content, "FILENAME: a.ts") {
			t.Errorf("markers stripped despite HideFileMarkers=false: %q", got.Content)
		}
		if len(got.FilesGenerated) != 0 {
			t.Errorf("FilesGenerated = %v, want none", got.FilesGenerated)
		}
	})

	t.Run("code shown raw", func(t *testing.T) {
		opts := DefaultOptions()
		opts.HideCodeBlocks = false
		got := ParseMessage(raw, opts)
		if !strings.Contains(got.Content, "let x = 2") {
			t.Errorf("code redacted despite HideCodeBlocks=false: %q", got.Content)
		}
	})
}

// TestParseMessage_NoTrailerWithoutCode verifies the enhancer only runs
// when a status was detected and the message carried code or files.
func TestParseMessage_NoTrailerWithoutCode(t *testing.T) {
	t.Parallel()

	got := ParseMessage("Deployed successfully!", DefaultOptions())
	if got.DeploymentStatus != StatusDeployed {
		t.Errorf("DeploymentStatus = %q, want %q", got.DeploymentStatus, StatusDeployed)
	}
	if strings.Contains(got.Content, "🎉") {
		t.Errorf("trailer appended without code: %q", got.Content)
	}
}

// TestParseMessage_MalformedMarkerFailOpen verifies an unterminated begin
// marker survives the whole pipeline untouched.
func TestParseMessage_MalformedMarkerFailOpen(t *testing.T) {
	t.Parallel()

	raw := "Intro\nFILENAME: broken.go\npackage broken"
	got := ParseMessage(raw, DefaultOptions())

	if !strings.Contains(got.Content, "FILENAME: broken.go") {
		t.Errorf("partial marker truncated: %q", got.Content)
	}
	if len(got.FilesGenerated) != 0 {
		t.Errorf("FilesGenerated = %v, want none", got.FilesGenerated)
	}
}
