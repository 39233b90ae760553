package normalize

import (
	"regexp"
	"strings"
)

// Code regions are swapped for opaque tokens before any emphasis, link or
// header stage runs, and swapped back at the very end.
//
// A token is NUL + the span index written in hex with one Private Use Area
// rune per digit + NUL. None of those runes is an ASCII letter or digit, a
// markdown metacharacter or a word character, so no stage (including the bold
// glyph mapper) can rewrite a token. Input that already contains such a
// sequence is not detected; the span it names would be substituted into it.
const (
	tokenDelim     = "\x00"
	tokenDigitBase = 0xE000
)

var (
	// Non-greedy so sequential fences pair first-open/first-close.
	fencedCodeRegex = regexp.MustCompile("(?s)```(.*?)```")
	inlineCodeRegex = regexp.MustCompile("`([^`\n]+)`")
)

// spanTable records protected spans in extraction order.
type spanTable struct {
	spans []string
}

// token returns the placeholder for span i.
func token(i int) string {
	digits := []rune{rune(tokenDigitBase + i%16)}
	for n := i / 16; n > 0; n /= 16 {
		digits = append([]rune{rune(tokenDigitBase + n%16)}, digits...)
	}
	return tokenDelim + string(digits) + tokenDelim
}

func (t *spanTable) add(content string) string {
	tok := token(len(t.spans))
	t.spans = append(t.spans, content)
	return tok
}

// extractFenced replaces every closed ``` fence with a token. The stored
// content has the fence markers removed and surrounding whitespace trimmed.
func (t *spanTable) extractFenced(text string) string {
	return fencedCodeRegex.ReplaceAllStringFunc(text, func(m string) string {
		return t.add(strings.TrimSpace(m[3 : len(m)-3]))
	})
}

// extractInline replaces single-backtick code spans with a token holding the
// inner content. Spans never cross a newline.
func (t *spanTable) extractInline(text string) string {
	return inlineCodeRegex.ReplaceAllStringFunc(text, func(m string) string {
		return t.add(m[1 : len(m)-1])
	})
}

// restore puts every span back, first extracted first restored.
func (t *spanTable) restore(text string) string {
	for i, content := range t.spans {
		text = strings.Replace(text, token(i), content, 1)
	}
	return text
}
