// Package notes parses the free text clinical notes attached to patients in need.
// Each line is either "label: value" or plain text.
package notes

import "strings"

type Line struct {
	Label string
	Value string
}

func (l Line) HasLabel() bool {
	return l.Label != ""
}

func (l Line) String() string {
	if l.Label == "" {
		return l.Value
	}
	return l.Label + ": " + l.Value
}

// ParseLines splits text into lines and each line on its first colon.
// Blank lines are dropped.
func ParseLines(text string) []Line {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := make([]Line, 0)
	for _, raw := range strings.Split(text, "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		label, value, found := strings.Cut(raw, ":")
		if !found {
			lines = append(lines, Line{Value: raw})
			continue
		}
		lines = append(lines, Line{
			Label: strings.TrimSpace(label),
			Value: strings.TrimSpace(value),
		})
	}
	return lines
}

// Format joins lines back into the stored text form.
func Format(lines []Line) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		if s := strings.TrimSpace(l.String()); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}
