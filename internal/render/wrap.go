package render

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Wrap breaks text into lines no wider than width cells. Words longer than
// a line are split. Empty text yields no lines.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var (
		lines []string
		line  strings.Builder
		lineW int
	)
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineW = 0
	}

	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		if lineW > 0 && lineW+1+w <= width {
			line.WriteByte(' ')
			line.WriteString(word)
			lineW += 1 + w
			continue
		}
		if lineW > 0 {
			flush()
		}
		for w > width {
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				// A single rune wider than the line.
				_, size := utf8.DecodeRuneInString(word)
				head = word[:size]
			}
			lines = append(lines, head)
			word = word[len(head):]
			w = runewidth.StringWidth(word)
		}
		if word != "" {
			line.WriteString(word)
			lineW = w
		}
	}
	if lineW > 0 {
		flush()
	}
	return lines
}
