// Package core defines the pipeline interfaces for mdstrip.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"
	"time"

	"github.com/gaurav-prasanna/mdstrip/core/normalize"
)

// Format identifies the markup of an input document.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Document is raw input read from a Source, already decoded to UTF-8.
type Document struct {
	Name   string // base name used for exports
	Origin string // file path, "stdin" or URL
	Format Format
	Body   string
}

// Result is the outcome of one run through the pipeline.
type Result struct {
	Document     Document
	Markdown     string // markdown fed to the normalizer
	Text         string // plain text output
	Stats        normalize.Stats
	PreserveBold bool
	ProcessedAt  time.Time
}

// Source supplies the text to process.
type Source interface {
	Read(ctx context.Context) (*Document, error)
}

// Extractor pulls the main content from raw HTML, stripping noise.
type Extractor interface {
	Extract(html string) (string, error)
}

// Converter turns an HTML fragment into Markdown.
type Converter interface {
	Convert(html string) (string, error)
}

// Normalizer turns Markdown into plain text. It never fails.
type Normalizer interface {
	Normalize(text string, preserveBold bool) string
}

// Renderer converts a Result into a final output format.
type Renderer interface {
	Render(res Result) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".txt", ".pdf").
	Extension() string
}

// Clipboard receives the plain text output verbatim.
type Clipboard interface {
	Write(text string) error
}
