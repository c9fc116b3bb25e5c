package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryFilterKeepsDictionaryOrder(t *testing.T) {
	d := NewDictionary([]string{"AT", "DOG", "CAT"})
	got := d.Filter([]string{"CAT", "AT", "CA"})
	assert.Equal(t, []string{"AT", "CAT"}, got)
}

func TestDictionaryFilterNoMatches(t *testing.T) {
	d := NewDictionary([]string{"DOG"})
	assert.Empty(t, d.Filter([]string{"CAT"}))
	assert.Empty(t, d.Filter(nil))
}

func TestNewDictionaryNormalises(t *testing.T) {
	d := NewDictionary([]string{" cat", "Dog ", "", "CAT", "dog"})
	assert.Equal(t, []string{"CAT", "DOG"}, d.Words())
	assert.Equal(t, 2, d.Len())
	assert.True(t, d.Contains("CAT"))
	assert.False(t, d.Contains("cat"), "lookups take normalised words")
}

func TestDictionaryHasPrefix(t *testing.T) {
	d := NewDictionary([]string{"TOAD", "TO"})
	for _, p := range []string{"T", "TO", "TOA", "TOAD"} {
		assert.True(t, d.HasPrefix(p), p)
	}
	for _, p := range []string{"", "O", "TOADS", "TA"} {
		assert.False(t, d.HasPrefix(p), p)
	}
}

func TestReadDictionary(t *testing.T) {
	src := "# word list\nzebra\n\n  apple  \nZebra\n"
	d, err := ReadDictionary(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"ZEBRA", "APPLE"}, d.Words())
}

func TestLoadDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\ndog\n"), 0o644))

	d, err := LoadDictionary(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"CAT", "DOG"}, d.Words())

	_, err = LoadDictionary(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
