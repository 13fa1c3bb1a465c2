package llm

import "strings"

// StripCodeFences removes markdown fence lines (```html, ```) and keeps
// the fenced content. Models sometimes wrap markup despite instructions.
func StripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
