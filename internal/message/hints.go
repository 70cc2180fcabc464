package message

import (
	"regexp"
	"strings"
)

// appURLRe matches the fixed project-subdomain URL shape used for deployed
// apps, e.g. https://app-abc12345.example.com/dashboard.
var appURLRe = regexp.MustCompile(`https://app-[a-zA-Z0-9-]+(?:\.[a-zA-Z0-9-]+)+(?:/[^\s"'<>)]*)?`)

// IsDeploymentSuccess reports whether text signals a successful deployment.
// The UI uses it to flip its "has a live app" flag without running the full
// pipeline.
func IsDeploymentSuccess(text string) bool {
	return containsAny(strings.ToLower(text), successCues)
}

// ExtractAppURL returns the first live application URL found in text, or ""
// when none is present.
func ExtractAppURL(text string) string {
	return appURLRe.FindString(text)
}

// InputPlaceholder returns hint text for the chat input box, keyed on how
// long the conversation is, whether an app is already live, and whether the
// previous assistant turn contained code. It never inspects message
// content.
func InputPlaceholder(turns int, hasLiveApp, lastHadCode bool) string {
	switch {
	case turns == 0:
		return "Describe the app you want to build..."
	case hasLiveApp:
		return "Ask for changes to your live app..."
	case lastHadCode:
		return "Request tweaks to the generated code, or ask how it works..."
	default:
		return "Continue the conversation..."
	}
}
