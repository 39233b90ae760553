// Package render provides output renderers for the mdstrip pipeline.
// This file implements the plain text renderer, which is a simple passthrough.
package render

import (
	"github.com/gaurav-prasanna/mdstrip/core"
)

// TextRenderer writes the plain text as-is, UTF-8 encoded.
type TextRenderer struct{}

// NewTextRenderer creates a TextRenderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render returns the plain text as bytes (passthrough).
func (r *TextRenderer) Render(res core.Result) ([]byte, error) {
	return []byte(res.Text), nil
}

// Extension returns the file extension for plain text output.
func (r *TextRenderer) Extension() string {
	return ".txt"
}
