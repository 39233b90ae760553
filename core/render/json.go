// Package render — JSON renderer.
// Wraps the plain text with its source markdown, counts and run metadata.
package render

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gaurav-prasanna/mdstrip/core"
	"github.com/gaurav-prasanna/mdstrip/core/normalize"
)

// resultSource describes where the input came from.
type resultSource struct {
	Name   string      `json:"name"`
	Origin string      `json:"origin"`
	Format core.Format `json:"format"`
}

// resultJSON is the complete JSON output for one run.
type resultJSON struct {
	Source       resultSource    `json:"source"`
	Text         string          `json:"text"`
	Markdown     string          `json:"markdown"`
	Stats        normalize.Stats `json:"stats"`
	PreserveBold bool            `json:"preserve_bold"`
	ProcessedAt  string          `json:"processed_at"` // RFC3339
}

// JSONRenderer produces structured JSON output.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render converts the result into indented JSON.
func (r *JSONRenderer) Render(res core.Result) ([]byte, error) {
	processedAt := res.ProcessedAt
	if processedAt.IsZero() {
		processedAt = time.Now()
	}

	out := resultJSON{
		Source: resultSource{
			Name:   res.Document.Name,
			Origin: res.Document.Origin,
			Format: res.Document.Format,
		},
		Text:         res.Text,
		Markdown:     res.Markdown,
		Stats:        res.Stats,
		PreserveBold: res.PreserveBold,
		ProcessedAt:  processedAt.UTC().Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
