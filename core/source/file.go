package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/mdstrip/core"
	"github.com/gaurav-prasanna/mdstrip/core/output"
)

// StdinName is the export name used when input comes from stdin.
const StdinName = "stripped-text"

// FileSource reads a whole file, or stdin when Path is "" or "-".
type FileSource struct {
	Path  string
	Stdin io.Reader // defaults to os.Stdin
}

// NewFile creates a FileSource for path.
func NewFile(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) isStdin() bool {
	return s.Path == "" || s.Path == "-"
}

// Read loads the input and decodes it to UTF-8.
func (s *FileSource) Read(ctx context.Context) (*core.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.isStdin() {
		in := s.Stdin
		if in == nil {
			in = os.Stdin
		}
		raw, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		body, err := decode(raw, "")
		if err != nil {
			return nil, err
		}
		return &core.Document{
			Name:   StdinName,
			Origin: "stdin",
			Format: core.FormatMarkdown,
			Body:   body,
		}, nil
	}

	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Path, err)
	}
	body, err := decode(raw, "")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}

	base := filepath.Base(s.Path)
	return &core.Document{
		Name:   output.Sanitize(strings.TrimSuffix(base, filepath.Ext(base))),
		Origin: s.Path,
		Format: formatFromPath(s.Path),
		Body:   body,
	}, nil
}
