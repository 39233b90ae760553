package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.Write("my notes", []byte("• a\n"), ".txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "my_notes.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "• a\n", string(data))
}

func TestWriterEmptyName(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	path, err := w.Write("", []byte("x"), ".json")
	require.NoError(t, err)
	assert.Equal(t, DefaultName+".json", filepath.Base(path))
}

func TestNameFromURL(t *testing.T) {
	assert.Equal(t, "example_com", NameFromURL("https://example.com/"))
	assert.Equal(t, "example_com_docs_intro", NameFromURL("https://example.com/docs/intro"))
	assert.Equal(t, "localhost_8080_a_b", NameFromURL("http://localhost:8080/a.b"))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "release-notes_v2", Sanitize("release-notes_v2"))
	assert.Equal(t, "caf_", Sanitize("café"))
}
