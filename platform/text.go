package platform

import "strings"

// WrapText breaks s into lines no wider than width, measured with advance.
// Existing line breaks are kept and words are never split; a word wider than
// width gets a line of its own. A width <= 0 only splits on line breaks.
func WrapText(s string, width float64, advance func(string) float64) []string {
	paragraphs := strings.Split(s, "\n")
	if width <= 0 || advance == nil {
		return paragraphs
	}

	var lines []string
	for _, p := range paragraphs {
		words := strings.Fields(p)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if advance(candidate) <= width {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = word
		}
		lines = append(lines, line)
	}
	return lines
}
