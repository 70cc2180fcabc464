package message

import "fmt"

// Enhance appends a short status trailer to text. The orchestrator calls it
// only when a status was detected and the message carried code or files.
// Any status outside the three known lifecycle states is a no-op.
func Enhance(text string, status Status, fileCount int) string {
	switch status {
	case StatusDeployed:
		if fileCount > 1 {
			return text + fmt.Sprintf("\n\n🎉 Your application (%d files) was deployed successfully!", fileCount)
		}
		return text + "\n\n🎉 Your application was deployed successfully!"
	case StatusDeploying:
		return text + "\n\n🚀 Deployment in progress. Your app will be live shortly."
	case StatusFailed:
		return text + "\n\n⚠️ Deployment ran into a problem. Ask me to retry or check the logs."
	}
	return text
}
