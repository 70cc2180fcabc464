package message

import "regexp"

// codeFenceRe matches one fenced code block, non-greedily, so consecutive
// blocks are separate matches rather than one span from the first fence to
// the last.
var codeFenceRe = regexp.MustCompile("(?s)```.*?```")

// Canned placeholders substituted for fenced code when the caller asked for
// code to be hidden. Status and persona are message-level, so every block
// in a message gets the same placeholder.
const (
	placeholderDeployed  = "✅ Code generated and deployed. Open the preview to see the result."
	placeholderDeploying = "⏳ Code generated. Deployment is in progress."
	placeholderGeneric   = "📝 Code generated for your app."
)

// RedactCode replaces every fenced code block in text with a placeholder
// selected by persona and deployment status. hadCode reports whether at
// least one block was present, independent of what replaced it.
//
// Selection, first matching rule wins: a developer persona keeps the code,
// wrapped in a collapsible details block; the technical flag does the same
// with a technical summary line; otherwise the placeholder is framed by the
// detected status, falling back to a generic notice.
func RedactCode(text string, userType UserType, technical bool, status Status) (string, bool) {
	if !codeFenceRe.MatchString(text) {
		return text, false
	}

	if userType == UserDeveloper || technical {
		summary := "Show code"
		if userType != UserDeveloper {
			summary = "Technical details"
		}
		content := codeFenceRe.ReplaceAllStringFunc(text, func(block string) string {
			return "<details>\n<summary>" + summary + "</summary>\n\n" + block + "\n\n</details>"
		})
		return content, true
	}

	var placeholder string
	switch status {
	case StatusDeployed:
		placeholder = placeholderDeployed
	case StatusDeploying:
		placeholder = placeholderDeploying
	default:
		placeholder = placeholderGeneric
	}
	return codeFenceRe.ReplaceAllString(text, placeholder), true
}
