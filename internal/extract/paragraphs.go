package extract

import "strings"

// Paragraphs joins consecutive non-blank lines with a space. A blank line
// closes the current paragraph.
func Paragraphs(lines []string) []string {
	paragraphs := make([]string, 0)
	buf := make([]string, 0)

	flush := func() {
		if len(buf) == 0 {
			return
		}
		if p := strings.TrimSpace(strings.Join(buf, " ")); p != "" {
			paragraphs = append(paragraphs, p)
		}
		buf = buf[:0]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		buf = append(buf, line)
	}
	flush()

	return paragraphs
}
