// Package convert implements the Converter interface.
// It turns cleaned HTML into Markdown so that rich-text pastes and web pages
// go through the same plain-text normalizer as markdown input.
package convert

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// MarkdownConverter converts HTML to Markdown using html-to-markdown.
type MarkdownConverter struct{}

// New creates a MarkdownConverter.
func New() *MarkdownConverter {
	return &MarkdownConverter{}
}

// Convert converts a cleaned HTML fragment into Markdown.
func (c *MarkdownConverter) Convert(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}
