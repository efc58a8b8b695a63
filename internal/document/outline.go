package document

import (
	"fmt"
	"strings"
)

// Outline lists the pages one per line, e.g. "2. beach.jpg (1024x768)".
func (d Document) Outline() string {
	lines := make([]string, 0, len(d.Pages))
	for i, p := range d.Pages {
		if p.Kind == KindNotes {
			lines = append(lines, fmt.Sprintf("%d. notes", i+1))
			continue
		}
		lines = append(lines, fmt.Sprintf("%d. %s (%dx%d)", i+1, p.Name, p.Width, p.Height))
	}
	return strings.Join(lines, "\n")
}
