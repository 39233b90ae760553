package normalize

import (
	"strings"
	"unicode/utf8"
)

// Stats summarizes a text the way the output footer shows it.
type Stats struct {
	Characters int `json:"characters"`
	Lines      int `json:"lines"`
}

// Count returns the character (rune) and line count of text. An empty text
// has zero lines.
func Count(text string) Stats {
	if text == "" {
		return Stats{}
	}
	return Stats{
		Characters: utf8.RuneCountInString(text),
		Lines:      strings.Count(text, "\n") + 1,
	}
}
