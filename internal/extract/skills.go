package extract

import (
	"fmt"
	"strings"
)

// Skills classifies skill lines. "Label: value" lines are re-joined with a
// single space after the colon and dropped when the value is empty; other
// lines are kept as is.
func Skills(lines []string) []string {
	skills := make([]string, 0)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		label, value, ok := strings.Cut(line, ":")
		if !ok {
			skills = append(skills, line)
			continue
		}

		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		skills = append(skills, fmt.Sprintf("%s: %s", strings.TrimSpace(label), value))
	}

	return skills
}
