package message

import (
	"fmt"
	"regexp"
	"strings"
)

// Embedded file markers. The assistant emits virtual source files inline as
//
//	FILENAME: app/page.tsx
//	...file body...
//	ENDFILE: app/page.tsx
//
// The end marker back-references the begin marker by filename, so two files
// emitted back-to-back with nothing between them still pair up correctly.
// Go's RE2 engine has no back-references, so pairing is done with an
// explicit two-pass scan: find all begin markers, then for each one find
// the nearest end marker past it whose captured name matches.
var (
	beginMarkerRe = regexp.MustCompile(`(?m)^FILENAME:[ \t]*(.+)$`)
	endMarkerRe   = regexp.MustCompile(`(?m)^ENDFILE:[ \t]*(.+)$`)
)

// ManifestHeader is the first line of the file manifest appended by
// ExtractFiles when at least one embedded file was found.
const ManifestHeader = "Generated files:"

// ExtractFiles strips every embedded file span (markers and body) from text
// and returns the remaining content plus one summary entry per file, in
// first-occurrence order, formatted as "<path> (<n> lines)". Repeated
// filenames are not deduplicated. When at least one file was found, a
// manifest block is appended to the content after a blank line.
//
// A begin marker with no matching end marker is left verbatim in the output
// and contributes no entry. That is deliberate fail-open behavior: the UI
// always gets a renderable string, never an error.
func ExtractFiles(text string) (string, []string) {
	begins := beginMarkerRe.FindAllStringSubmatchIndex(text, -1)
	if len(begins) == 0 {
		return text, nil
	}
	ends := endMarkerRe.FindAllStringSubmatchIndex(text, -1)

	type span struct{ start, end int }
	var spans []span
	var files []string
	consumed := 0 // offset below which markers belong to an earlier span

	for _, b := range begins {
		if b[0] < consumed {
			continue // begin marker inside an already-matched body
		}
		name := strings.TrimSpace(text[b[2]:b[3]])
		for _, e := range ends {
			if e[0] < b[1] {
				continue
			}
			if strings.TrimSpace(text[e[2]:e[3]]) != name {
				continue
			}
			body := text[b[1]:e[0]]
			files = append(files, fmt.Sprintf("%s (%d lines)", name, countNonBlankLines(body)))
			spans = append(spans, span{start: b[0], end: e[1]})
			consumed = e[1]
			break
		}
	}

	if len(spans) == 0 {
		return text, nil
	}

	var sb strings.Builder
	prev := 0
	for _, sp := range spans {
		sb.WriteString(text[prev:sp.start])
		prev = sp.end
	}
	sb.WriteString(text[prev:])

	content := strings.TrimRight(sb.String(), " \t\n")
	var manifest strings.Builder
	if content != "" {
		manifest.WriteString(content)
		manifest.WriteString("\n\n")
	}
	manifest.WriteString(ManifestHeader)
	for _, f := range files {
		manifest.WriteString("\n- ")
		manifest.WriteString(f)
	}
	return manifest.String(), files
}

// countNonBlankLines counts lines in body that contain at least one
// non-whitespace character. Leading and trailing blank lines do not count.
func countNonBlankLines(body string) int {
	n := 0
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
