// Package source implements the Source interface for files, stdin and URLs.
// Every source decodes its bytes to UTF-8 before handing them on.
package source

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/gaurav-prasanna/mdstrip/core"
)

// decode converts raw bytes to a UTF-8 string. A byte order mark overrides
// the detected encoding and is dropped. contentType may be empty.
func decode(content []byte, contentType string) (string, error) {
	enc, name, _ := charset.DetermineEncoding(content, contentType)
	r := transform.NewReader(bytes.NewReader(content), unicode.BOMOverride(enc.NewDecoder()))
	out, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("decoding from %s: %w", name, err)
	}
	return string(out), nil
}

// formatFromPath guesses the input format from a file extension.
func formatFromPath(path string) core.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return core.FormatHTML
	default:
		return core.FormatMarkdown
	}
}

// formatFromContentType guesses the input format from a Content-Type header.
// Anything that is not explicitly markdown or plain text is treated as HTML.
func formatFromContentType(contentType string) core.Format {
	mime := strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	switch strings.ToLower(mime) {
	case "text/markdown", "text/x-markdown", "text/plain":
		return core.FormatMarkdown
	default:
		return core.FormatHTML
	}
}
