package normalize

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmpty(t *testing.T) {
	assert.Equal(t, "", Normalize("", false))
	assert.Equal(t, "", Normalize("", true))
}

func TestNormalizeStripping(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bold asterisks", "**hi** there", "hi there"},
		{"bold underscores", "__hi__ there", "hi there"},
		{"italic asterisk", "an *easy* one", "an easy one"},
		{"italic underscore", "an _easy_ one", "an easy one"},
		{"snake case untouched", "call snake_case_name now", "call snake_case_name now"},
		{"italic does not cross lines", "a *b\nc* d", "a *b\nc* d"},
		{"lone bold marker untouched", "price ** high", "price ** high"},
		{"strikethrough", "~~old~~ new", "old new"},
		{"link", "[site](http://x.com)", "site"},
		{"image", "![logo](http://x.com/a.png)", "logo"},
		{"image with empty alt", "see ![](http://x.com/a.png) here", "see  here"},
		{"header", "### Section\nbody", "Section\nbody"},
		{"seven hashes is not a header", "####### nope", "####### nope"},
		{"header needs a space", "#hashtag", "#hashtag"},
		{"header rule quote", "# Title\n---\n> quoted", "Title\n\nquoted"},
		{"asterisk rule", "a\n***\nb", "a\n\nb"},
		{"underscore rule", "a\n___\nb", "a\n\nb"},
		{"quote keeps deeper indentation", ">   indented", "  indented"},
		{"blank run collapse", "a\n\n\n\n\nb", "a\n\nb"},
		{"crlf", "# T\r\n**b**\r\n", "T\nb\n"},
		{"inline code keeps content", "run `*foo*` now", "run *foo* now"},
		{"inline code keeps underscores", "use `__init__` here", "use __init__ here"},
		{"em dash", "fast — cheap", "fast, cheap"},
		{"em dash without spaces", "fast—cheap", "fast, cheap"},
		{"pricing line dropped", "Model\nInput: $3 per million tokens\nEnd", "Model\n\nEnd"},
		{"pricing needs both words", "costs $3 per million", "costs $3 per million"},
		{"numbered bold header", "1. **Setup**: install", "• Setup: install"},
		{"numbered underscore header", "  2. __Run__ it", "  • Run it"},
		{"nested emphasis in link", "[**bold** link](http://x)", "bold link"},
		{"unterminated fence", "```\n**x**", "```\nx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in, false))
		})
	}
}

func TestNormalizeBullets(t *testing.T) {
	got := Normalize("- a\n* b\n+ c\n1. d", false)
	assert.Equal(t, "• a\n• b\n• c\n• d", got)

	got = Normalize("- top\n  - nested\n    10.   deep\n•\tglyph", false)
	assert.Equal(t, "• top\n  • nested\n    • deep\n• glyph", got)
}

func TestNormalizeBulletNeedsWhitespace(t *testing.T) {
	assert.Equal(t, "-5 degrees", Normalize("-5 degrees", false))
	assert.Equal(t, "3.14 is pi", Normalize("3.14 is pi", false))
}

func TestNormalizeCodeProtection(t *testing.T) {
	got := Normalize("```**x**```", false)
	assert.Equal(t, "**x**", got)

	in := "before **b**\n```go\nx := a_b_c * *y*\n# not a header\n[k](v)\n```\nafter *i*"
	got = Normalize(in, false)
	assert.Equal(t, "before b\ngo\nx := a_b_c * *y*\n# not a header\n[k](v)\nafter i", got)
}

func TestNormalizeSequentialFences(t *testing.T) {
	got := Normalize("```one *a*```\n*mid*\n```two *b*```", false)
	assert.Equal(t, "one *a*\nmid\ntwo *b*", got)
}

func TestNormalizePreserveBold(t *testing.T) {
	got := Normalize("**hi**", true)
	assert.Equal(t, "\U0001D421\U0001D422", got)
	assert.NotContains(t, got, "*")
	assert.Equal(t, 2, len([]rune(got)))

	assert.Equal(t, "**!!**", Normalize("**!!**", true))
	assert.Equal(t, "\U0001D400 \U0001D7CF!", Normalize("__A 1!__", true))
}

func TestNormalizePreserveBoldKeepsCode(t *testing.T) {
	got := Normalize("**see `ab`**", true)
	assert.Equal(t, ToBold("see ")+"ab", got)
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"# Title\n\nSome **bold** and *italic* text.\n\n- one\n- two\n  1. nested\n\n> quote\n\n---\n\n[link](http://x)",
		"```\ncode here\n```\n\n* item with `code`\n\n\n\nend",
		"plain text",
		"**!!** stays",
	}
	for _, in := range inputs {
		for _, bold := range []bool{false, true} {
			once := Normalize(in, bold)
			assert.Equal(t, once, Normalize(once, bold), "input %q bold=%v", in, bold)
		}
	}
}

func TestNormalizeNoMarkdownLeft(t *testing.T) {
	in := "## Plan\n\n1. **First** step\n2. Second _step_\n\n***\n\n> note ~~this~~\n\n![img](u) and [a](b)"
	got := Normalize(in, false)
	for _, s := range []string{"#", "**", "~~", "](", "> ", "***"} {
		assert.NotContains(t, got, s)
	}
}

func TestNormalizerCustomOptions(t *testing.T) {
	n := New(Options{Bullet: "-", Dash: "; "})
	assert.Equal(t, "- a\n- b\nx; y", n.Normalize("* a\n1. b\nx — y", false))
	assert.Equal(t, "- a", n.Normalize("-    a", false))
}

func TestOptionsValidate(t *testing.T) {
	require.NoError(t, Options{}.Validate())
	require.NoError(t, DefaultOptions().Validate())
	assert.Error(t, Options{Bullet: "ab"}.Validate())
	assert.Error(t, Options{Bullet: " "}.Validate())
	assert.Panics(t, func() { New(Options{Bullet: "\t"}) })
}

func TestNormalizeConcurrent(t *testing.T) {
	in := "- **a** `b`\n- *c*"
	want := Normalize(in, false)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, Normalize(in, false))
		}()
	}
	wg.Wait()
}

func TestTokensAreDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		tok := token(i)
		require.False(t, seen[tok], "duplicate token for %d", i)
		seen[tok] = true
		assert.Equal(t, tok, ToBold(tok))
	}
}

func TestManySpansRestoreInOrder(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		b.WriteString("`*x*` ")
	}
	got := Normalize(b.String(), false)
	assert.Equal(t, strings.Repeat("*x* ", 40), got)
}

func TestCount(t *testing.T) {
	assert.Equal(t, Stats{}, Count(""))
	assert.Equal(t, Stats{Characters: 3, Lines: 1}, Count("a•b"))
	assert.Equal(t, Stats{Characters: 3, Lines: 2}, Count("a\nb"))
}

func TestFromBold(t *testing.T) {
	for _, r := range "AZaz09" {
		plain, ok := FromBold(boldRune(r))
		assert.True(t, ok)
		assert.Equal(t, r, plain)
	}
	_, ok := FromBold('x')
	assert.False(t, ok)
}
