package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/gaurav-prasanna/mdstrip/core"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestFileSourceMarkdown(t *testing.T) {
	path := writeFile(t, "Release Notes.md", []byte("# Hi\n- a"))

	doc, err := NewFile(path).Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "# Hi\n- a", doc.Body)
	assert.Equal(t, "Release_Notes", doc.Name)
	assert.Equal(t, core.FormatMarkdown, doc.Format)
	assert.Equal(t, path, doc.Origin)
}

func TestFileSourceHTMLExtension(t *testing.T) {
	path := writeFile(t, "page.HTML", []byte("<p>x</p>"))

	doc, err := NewFile(path).Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, core.FormatHTML, doc.Format)
}

func TestFileSourceStripsUTF8BOM(t *testing.T) {
	path := writeFile(t, "bom.md", append([]byte{0xEF, 0xBB, 0xBF}, "**x**"...))

	doc, err := NewFile(path).Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "**x**", doc.Body)
}

func TestFileSourceUTF16(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	data, _, err := transform.Bytes(enc, []byte("- café — ok"))
	require.NoError(t, err)
	path := writeFile(t, "wide.md", data)

	doc, err := NewFile(path).Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "- café — ok", doc.Body)
}

func TestFileSourceStdin(t *testing.T) {
	src := &FileSource{Path: "-", Stdin: strings.NewReader("*hi*")}

	doc, err := src.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "*hi*", doc.Body)
	assert.Equal(t, StdinName, doc.Name)
	assert.Equal(t, "stdin", doc.Origin)
}

func TestFileSourceMissing(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "nope.md")).Read(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileSourceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFile("whatever.md").Read(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewURLRejectsRelative(t *testing.T) {
	_, err := NewURL("example.com/page")
	assert.Error(t, err)
}

func TestNewURLRejectsBinary(t *testing.T) {
	_, err := NewURL("https://example.com/logo.PNG")
	assert.ErrorContains(t, err, ".png")

	_, err = NewURL("https://example.com/post.md")
	assert.NoError(t, err)
}

func TestURLSourceHTMLLatin1(t *testing.T) {
	body, _, err := transform.Bytes(charmap.ISO8859_1.NewEncoder(), []byte("<p>café</p>"))
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "mdstrip")
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	src, err := NewURL(srv.URL + "/docs/intro")
	require.NoError(t, err)
	doc, err := src.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "<p>café</p>", doc.Body)
	assert.Equal(t, core.FormatHTML, doc.Format)
	assert.True(t, strings.HasSuffix(doc.Name, "_docs_intro"))
}

func TestURLSourceMarkdown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		_, _ = w.Write([]byte("# T"))
	}))
	defer srv.Close()

	src, err := NewURL(srv.URL)
	require.NoError(t, err)
	doc, err := src.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, core.FormatMarkdown, doc.Format)
	assert.Equal(t, "# T", doc.Body)
}

func TestURLSourceBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	src, err := NewURL(srv.URL)
	require.NoError(t, err)
	_, err = src.Read(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}
