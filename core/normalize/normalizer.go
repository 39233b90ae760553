// Package normalize turns markdown-formatted text into clean plain text.
// It keeps indentation, line breaks and list structure (every list marker
// becomes one bullet glyph) and leaves the content of code spans and fenced
// code blocks untouched.
//
// The transform is a fixed sequence of global pattern substitutions. It is
// total: any string in, a string out, no errors.
package normalize

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultBullet replaces every list marker.
	DefaultBullet = "•"
	// DefaultDash replaces an em dash and the spaces around it.
	DefaultDash = ", "
)

// Options configures a Normalizer. Zero fields take the defaults.
type Options struct {
	Bullet string
	Dash   string
}

// DefaultOptions returns the options used by the package-level Normalize.
func DefaultOptions() Options {
	return Options{Bullet: DefaultBullet, Dash: DefaultDash}
}

// Validate reports whether the options can build a pipeline.
func (o Options) Validate() error {
	if o.Bullet == "" {
		return nil
	}
	r, size := utf8.DecodeRuneInString(o.Bullet)
	if size != len(o.Bullet) {
		return fmt.Errorf("bullet must be a single character, got %q", o.Bullet)
	}
	if r == utf8.RuneError || unicode.IsSpace(r) || unicode.IsControl(r) {
		return fmt.Errorf("bullet must be a visible character, got %q", o.Bullet)
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.Bullet == "" {
		o.Bullet = DefaultBullet
	}
	if o.Dash == "" {
		o.Dash = DefaultDash
	}
	return o
}

// Normalizer runs the markdown-to-plain-text pipeline. It holds no per-call
// state and is safe for concurrent use.
type Normalizer struct {
	opts   Options
	stages []stage
}

// New creates a Normalizer. It panics if opts fails Validate; callers taking
// options from users should validate first.
func New(opts Options) *Normalizer {
	if err := opts.Validate(); err != nil {
		panic("normalize: " + err.Error())
	}
	opts = opts.withDefaults()
	return &Normalizer{opts: opts, stages: buildStages(opts)}
}

// Options returns the effective options.
func (n *Normalizer) Options() Options {
	return n.opts
}

// Normalize strips markdown syntax from text. With preserveBold, bold spans
// are rendered as Unicode Mathematical Bold glyphs instead of being dropped.
func (n *Normalizer) Normalize(text string, preserveBold bool) string {
	if text == "" {
		return ""
	}
	p := &pass{text: text, preserveBold: preserveBold}
	for _, s := range n.stages {
		s.apply(p)
	}
	return p.text
}

var defaultNormalizer = New(DefaultOptions())

// Normalize runs text through the default pipeline.
func Normalize(text string, preserveBold bool) string {
	return defaultNormalizer.Normalize(text, preserveBold)
}
