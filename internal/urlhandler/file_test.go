package urlhandler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInputFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "urls.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadURLsFromFile_DeduplicatesAndSkipsBlanks(t *testing.T) {
	path := writeInputFile(t, "https://a.com/x.sql\n\nhttps://b.com/y.json\nhttps://a.com/x.sql\n   \n")

	urls, err := ReadURLsFromFile(path, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.com/x.sql", "https://b.com/y.json"}, urls)
}

func TestReadURLsFromFile_NotFound(t *testing.T) {
	_, err := ReadURLsFromFile(filepath.Join(t.TempDir(), "missing.txt"), zerolog.Nop())
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestReadURLsFromFile_Empty(t *testing.T) {
	path := writeInputFile(t, "\n\n  \n")

	_, err := ReadURLsFromFile(path, zerolog.Nop())
	assert.ErrorIs(t, err, ErrFileEmpty)
}

func TestReadURLsFromFile_Directory(t *testing.T) {
	_, err := ReadURLsFromFile(t.TempDir(), zerolog.Nop())
	assert.ErrorIs(t, err, ErrReadingFile)
}
