package normalize

import (
	"regexp"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// lookaroundTimeout bounds a single backtracking substitution. On timeout the
// stage leaves the text as it was.
const lookaroundTimeout = 2 * time.Second

var (
	lineEndingRegex = regexp.MustCompile(`\r\n?`)

	// A $ amount, then "million", then "tokens" on one line.
	pricingRegex = regexp.MustCompile(`(?m)^.*\$ ?\d[\d,.]*.*\bmillion\b.*\btokens\b.*$`)

	numberedBoldRegex       = regexp.MustCompile(`(?m)^([ \t]*\d+\.[ \t]+)\*\*([^*\n]+)\*\*`)
	numberedUnderscoreRegex = regexp.MustCompile(`(?m)^([ \t]*\d+\.[ \t]+)__([^_\n]+)__`)

	emDashRegex = regexp.MustCompile(`[ \t]*\x{2014}[ \t]*`)

	numberedMarkerRegex = regexp.MustCompile(`(?m)^([ \t]*)\d+\.([ \t]+)`)

	boldAsteriskRegex   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	boldUnderscoreRegex = regexp.MustCompile(`__([^_]+)__`)

	strikeRegex = regexp.MustCompile(`~~([^~]+)~~`)
	imageRegex  = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
	linkRegex   = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	headerRegex = regexp.MustCompile(`(?m)^#{1,6}[ \t]+(.+)$`)
	ruleRegex   = regexp.MustCompile(`(?m)^(?:-{3,}|\*{3,}|_{3,})$`)
	quoteRegex  = regexp.MustCompile(`(?m)^>[ \t]?`)
	blankRegex  = regexp.MustCompile(`\n{3,}`)

	// RE2 has no lookaround; these two need it.
	italicAsteriskRegex   = mustLookaround(`(?<!\*)\*([^*\n]+)\*(?!\*)`)
	italicUnderscoreRegex = mustLookaround(`(?<!\w)_([^_\n]+)_(?!\w)`)
)

func mustLookaround(pattern string) *regexp2.Regexp {
	re := regexp2.MustCompile(pattern, regexp2.None)
	re.MatchTimeout = lookaroundTimeout
	return re
}

// pass is the working state of one Normalize call.
type pass struct {
	text         string
	preserveBold bool
	spans        spanTable
}

// stage is one global rewrite of the working text.
type stage struct {
	name  string
	apply func(p *pass)
}

func replaceStage(name string, re *regexp.Regexp, repl string) stage {
	return stage{name: name, apply: func(p *pass) {
		p.text = re.ReplaceAllString(p.text, repl)
	}}
}

func lookaroundStage(name string, re *regexp2.Regexp, repl string) stage {
	return stage{name: name, apply: func(p *pass) {
		out, err := re.Replace(p.text, repl, -1, -1)
		if err != nil {
			return
		}
		p.text = out
	}}
}

// buildStages returns the pipeline in execution order. Order matters: list
// markers are folded before code extraction, code is extracted before any
// emphasis stage, and spacing cleanup runs after code is restored.
func buildStages(opts Options) []stage {
	bullet := regexp.QuoteMeta(opts.Bullet)
	bulletRepl := strings.ReplaceAll(opts.Bullet, "$", "$$")

	bulletMarkerRegex := regexp.MustCompile(`(?m)^([ \t]*)(?:[-*+]|` + bullet + `)([ \t]+)`)
	bulletSpacingRegex := regexp.MustCompile(`(?m)^([ \t]*)` + bullet + `[ \t]+`)

	return []stage{
		replaceStage("line-endings", lineEndingRegex, "\n"),
		replaceStage("pricing", pricingRegex, ""),
		replaceStage("numbered-bold", numberedBoldRegex, "${1}${2}"),
		replaceStage("numbered-underscore", numberedUnderscoreRegex, "${1}${2}"),
		{name: "em-dash", apply: func(p *pass) {
			p.text = emDashRegex.ReplaceAllLiteralString(p.text, opts.Dash)
		}},
		replaceStage("bullets", bulletMarkerRegex, "${1}"+bulletRepl+"${2}"),
		replaceStage("numbered", numberedMarkerRegex, "${1}"+bulletRepl+"${2}"),
		{name: "extract-code", apply: func(p *pass) {
			p.text = p.spans.extractFenced(p.text)
			p.text = p.spans.extractInline(p.text)
		}},
		{name: "bold", apply: func(p *pass) {
			if p.preserveBold {
				p.text = boldAsteriskRegex.ReplaceAllStringFunc(p.text, boldSpan)
				p.text = boldUnderscoreRegex.ReplaceAllStringFunc(p.text, boldSpan)
				return
			}
			p.text = boldAsteriskRegex.ReplaceAllString(p.text, "${1}")
			p.text = boldUnderscoreRegex.ReplaceAllString(p.text, "${1}")
		}},
		lookaroundStage("italic-asterisk", italicAsteriskRegex, "$1"),
		lookaroundStage("italic-underscore", italicUnderscoreRegex, "$1"),
		replaceStage("strikethrough", strikeRegex, "${1}"),
		// Images before links, or the link pattern eats the image's brackets.
		replaceStage("images", imageRegex, "${1}"),
		replaceStage("links", linkRegex, "${1}"),
		replaceStage("headers", headerRegex, "${1}"),
		replaceStage("rules", ruleRegex, ""),
		replaceStage("blockquotes", quoteRegex, ""),
		{name: "restore-code", apply: func(p *pass) {
			p.text = p.spans.restore(p.text)
		}},
		replaceStage("bullet-spacing", bulletSpacingRegex, "${1}"+bulletRepl+" "),
		replaceStage("blank-lines", blankRegex, "\n\n"),
	}
}
