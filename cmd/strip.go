// Package cmd — strip command.
// This is the main command that orchestrates the pipeline:
// read → (extract → convert, for HTML) → normalize → render → deliver.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/mdstrip/config"
	"github.com/gaurav-prasanna/mdstrip/core"
	"github.com/gaurav-prasanna/mdstrip/core/convert"
	"github.com/gaurav-prasanna/mdstrip/core/extract"
	"github.com/gaurav-prasanna/mdstrip/core/normalize"
	"github.com/gaurav-prasanna/mdstrip/core/output"
	"github.com/gaurav-prasanna/mdstrip/core/render"
	"github.com/gaurav-prasanna/mdstrip/core/source"
)

// Input format overrides for --from.
const (
	fromAuto     = "auto"
	fromMarkdown = "markdown"
	fromHTML     = "html"
)

// inputFlags select and interpret the input; shared by strip and stats.
type inputFlags struct {
	url  string
	from string
}

func addInputFlags(cmd *cobra.Command, in *inputFlags) {
	cmd.Flags().StringVar(&in.url, "url", "", "fetch input from a URL instead of a file")
	cmd.Flags().StringVar(&in.from, "from", fromAuto, "input format: auto, markdown or html")

	// Normalizer settings, bound to config keys.
	cmd.Flags().Bool("bold", false, "keep bold text as Unicode bold glyphs instead of stripping it")
	cmd.Flags().String("bullet", normalize.DefaultBullet, "glyph that replaces every list marker")
	cmd.Flags().String("dash", normalize.DefaultDash, "replacement for an em dash")
}

func newStripCmd(d deps) *cobra.Command {
	var (
		in        inputFlags
		write     bool
		showStats bool
	)

	cmd := &cobra.Command{
		Use:   "strip [file|-]",
		Short: "Convert markdown to plain text",
		Long: `Strip reads markdown (or HTML) from a file, stdin or a URL and prints the
plain text. The result can also be exported to a file or copied to the clipboard.

Examples:
  pbpaste | mdstrip strip
  mdstrip strip answer.md --bold
  mdstrip strip answer.md --write --output_dir ./out
  mdstrip strip --url https://example.com/post --format json --write
  mdstrip strip notes.md --copy --stats`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			res, err := process(cmd.Context(), a, sourceFor(cmd, in, args), in.from)
			if err != nil {
				return err
			}

			renderer, err := selectRenderer(a.cfg.Format)
			if err != nil {
				return err
			}
			data, err := renderer.Render(*res)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}

			// PDF is never written to the terminal.
			if write || a.cfg.Format == config.FormatPDF {
				writer, err := output.New(a.cfg.OutputDir)
				if err != nil {
					return fmt.Errorf("initializing output writer: %w", err)
				}
				path, err := writer.Write(a.cfg.ExportName(res.Document.Name), data, renderer.Extension())
				if err != nil {
					return err
				}
				a.log.Debug("exported", slog.String("path", path), slog.Int("bytes", len(data)))
				notify(cmd, "Written: "+path)
			} else {
				if _, err := cmd.OutOrStdout().Write(data); err != nil {
					return err
				}
			}

			if a.cfg.Copy {
				if err := d.clipboard.Write(res.Text); err != nil {
					return fmt.Errorf("copy: %w", err)
				}
				notify(cmd, "Copied to clipboard")
			}

			if showStats {
				notify(cmd, formatStats(res.Stats))
			}
			return nil
		},
	}

	addInputFlags(cmd, &in)
	cmd.Flags().String("format", config.FormatText, "output format: text, json or pdf")
	cmd.Flags().String("output_dir", "", "export directory (default: current directory)")
	cmd.Flags().String("output_name", "", "export file name without extension")
	cmd.Flags().BoolVar(&write, "write", false, "export to a file instead of printing")
	cmd.Flags().Bool("copy", false, "copy the plain text to the clipboard")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print character and line counts")

	return cmd
}

var errURLAndFile = errors.New("--url and a file argument are mutually exclusive")

// sourceFor picks the input source from the flags and arguments.
func sourceFor(cmd *cobra.Command, in inputFlags, args []string) func() (core.Source, error) {
	return func() (core.Source, error) {
		if in.url != "" {
			if len(args) > 0 {
				return nil, errURLAndFile
			}
			return source.NewURL(in.url)
		}
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		return &source.FileSource{Path: path, Stdin: cmd.InOrStdin()}, nil
	}
}

// process runs one input through the pipeline.
func process(ctx context.Context, a *app, newSource func() (core.Source, error), from string) (*core.Result, error) {
	src, err := newSource()
	if err != nil {
		return nil, err
	}

	// 1. Read
	doc, err := src.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	format, err := resolveFormat(doc.Format, from)
	if err != nil {
		return nil, err
	}
	doc.Format = format
	a.log.Debug("read input",
		slog.String("origin", doc.Origin),
		slog.String("format", string(doc.Format)),
		slog.Int("bytes", len(doc.Body)))

	markdown := doc.Body
	if doc.Format == core.FormatHTML {
		markdown, err = htmlToMarkdown(extract.New(), convert.New(), doc.Body)
		if err != nil {
			return nil, err
		}
		a.log.Debug("converted HTML", slog.Int("markdown_bytes", len(markdown)))
	}

	// 2. Normalize
	n := normalize.New(a.cfg.NormalizeOptions())
	text := n.Normalize(markdown, a.cfg.PreserveBold)
	stats := normalize.Count(text)
	a.log.Debug("normalized",
		slog.Bool("preserve_bold", a.cfg.PreserveBold),
		slog.Int("characters", stats.Characters),
		slog.Int("lines", stats.Lines))

	return &core.Result{
		Document:     *doc,
		Markdown:     markdown,
		Text:         text,
		Stats:        stats,
		PreserveBold: a.cfg.PreserveBold,
		ProcessedAt:  time.Now(),
	}, nil
}

func htmlToMarkdown(extractor core.Extractor, converter core.Converter, html string) (string, error) {
	content, err := extractor.Extract(html)
	if err != nil {
		return "", fmt.Errorf("extract: %w", err)
	}
	markdown, err := converter.Convert(content)
	if err != nil {
		return "", fmt.Errorf("convert: %w", err)
	}
	return markdown, nil
}

// resolveFormat applies the --from override to the detected format.
func resolveFormat(detected core.Format, from string) (core.Format, error) {
	switch from {
	case "", fromAuto:
		return detected, nil
	case fromMarkdown:
		return core.FormatMarkdown, nil
	case fromHTML:
		return core.FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown --from %q (want auto, markdown or html)", from)
	}
}

// selectRenderer creates the Renderer for the configured format.
func selectRenderer(format string) (core.Renderer, error) {
	switch format {
	case config.FormatText:
		return render.NewTextRenderer(), nil
	case config.FormatJSON:
		return render.NewJSONRenderer(), nil
	case config.FormatPDF:
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("no renderer for format %q", format)
	}
}

func formatStats(s normalize.Stats) string {
	return fmt.Sprintf("Characters: %d | Lines: %d", s.Characters, s.Lines)
}
