package message

// UserType selects which canned phrasing family the redactor uses when
// hiding code. Developers prefer visible-but-collapsed code over a
// placeholder.
type UserType string

const (
	// UserBeginner gets plain-language placeholders. Default.
	UserBeginner UserType = "beginner"
	// UserDeveloper keeps code visible inside a collapsible wrapper.
	UserDeveloper UserType = "developer"
	// UserAdmin gets the same phrasing family as beginners.
	UserAdmin UserType = "admin"
)

// Options controls which pipeline stages run and how the redactor phrases
// its placeholders. Each field toggles independently.
type Options struct {
	// HideCodeBlocks replaces fenced code regions with a placeholder.
	HideCodeBlocks bool `json:"hide_code_blocks"`
	// HideFileMarkers extracts embedded file spans into the manifest
	// instead of showing them raw.
	HideFileMarkers bool `json:"hide_file_markers"`
	// ShowTechnicalDetails biases placeholders toward a collapsible,
	// technical phrasing.
	ShowTechnicalDetails bool `json:"show_technical_details"`
	// UserType selects the placeholder phrasing family.
	UserType UserType `json:"user_type"`
}

// DefaultOptions returns the options used when the caller supplies none:
// both hide flags on, beginner persona.
func DefaultOptions() Options {
	return Options{
		HideCodeBlocks:  true,
		HideFileMarkers: true,
		UserType:        UserBeginner,
	}
}

// Parsed is the structured result of running the pipeline over one raw
// assistant message. The caller keeps the original raw text alongside it so
// a display toggle can re-run ParseMessage with different options.
type Parsed struct {
	// Content is the final display string.
	Content string `json:"content"`
	// HasCode is true when the raw text contained embedded file markers
	// or fenced code blocks.
	HasCode bool `json:"has_code"`
	// FilesGenerated lists recognized embedded files in first-occurrence
	// order, each as "<path> (<n> lines)". Not deduplicated.
	FilesGenerated []string `json:"files_generated,omitempty"`
	// DeploymentStatus is the detected lifecycle state, empty when none
	// was found.
	DeploymentStatus Status `json:"deployment_status,omitempty"`
}

// ParseMessage runs the full pipeline over one raw assistant message:
//
//  1. detect deployment status from the untouched raw text
//  2. extract embedded file spans into the manifest (if HideFileMarkers)
//  3. redact fenced code blocks (if HideCodeBlocks)
//  4. normalize whitespace
//  5. append a status trailer when a status was detected and the message
//     carried code or files
//
// ParseMessage is pure and total: any string, including empty or malformed
// input, produces a result. Absence of matches at any stage degrades to
// pass-through, never to an error.
func ParseMessage(raw string, opts Options) Parsed {
	status := DetectStatus(raw)

	content := raw
	var files []string
	hasCode := false

	if opts.HideFileMarkers {
		content, files = ExtractFiles(content)
		if len(files) > 0 {
			hasCode = true
		}
	}

	if opts.HideCodeBlocks {
		var hadCode bool
		content, hadCode = RedactCode(content, opts.UserType, opts.ShowTechnicalDetails, status)
		hasCode = hasCode || hadCode
	}

	content = Normalize(content)

	if status != StatusUnknown && hasCode {
		content = Enhance(content, status, len(files))
	}

	return Parsed{
		Content:          content,
		HasCode:          hasCode,
		FilesGenerated:   files,
		DeploymentStatus: status,
	}
}
