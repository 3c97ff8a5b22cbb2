package sections

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize splits raw text into trimmed lines. Blank lines are kept as empty
// strings because they separate paragraphs and records inside a section.
func Normalize(text string) []string {
	if text == "" {
		return []string{}
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	// A trailing newline terminates the last line, it does not open a new one.
	text = strings.TrimSuffix(text, "\n")

	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, strings.TrimSpace(norm.NFC.String(line)))
	}

	return lines
}

// NonBlank returns lines without the empty ones, preserving order.
func NonBlank(lines []string) []string {
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			result = append(result, line)
		}
	}
	return result
}
