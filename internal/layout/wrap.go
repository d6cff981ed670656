package layout

import (
	"strings"
	"unicode/utf8"
)

// Wrap splits text into lines of at most maxWidth characters using a greedy
// word-wrap policy. A word longer than maxWidth is kept whole on its own line.
// Text without words yields a single empty line so blank paragraphs still
// occupy vertical space.
func Wrap(text string, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	lines := make([]string, 0, 1)
	var current strings.Builder
	currentLen := 0

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		if currentLen > 0 && currentLen+1+wordLen <= maxWidth {
			current.WriteByte(' ')
			current.WriteString(word)
			currentLen += 1 + wordLen
			continue
		}
		if currentLen > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
		current.WriteString(word)
		currentLen = wordLen
	}

	return append(lines, current.String())
}
