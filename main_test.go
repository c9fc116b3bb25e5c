package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(context.Background(), &out, &errOut, args)
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPathsCommand(t *testing.T) {
	out, _, err := runCLI(t, "paths", "--tiles", "ABCD")
	require.NoError(t, err)
	assert.Equal(t, "64 paths\n", out)
}

func TestPathsCommandList(t *testing.T) {
	out, _, err := runCLI(t, "paths", "--tiles", "abcd", "--list", "--limit", "3")
	require.NoError(t, err)
	assert.Equal(t, "[0] A\n[0 1] AB\n[0 1 2] ABC\n64 paths\n", out)
}

func TestNeighborsCommand(t *testing.T) {
	out, _, err := runCLI(t, "neighbors", "--tiles", "ABCDEFGHI")
	require.NoError(t, err)
	assert.Contains(t, out, "Valid moves from 0 => [1 3 4]\n")
	assert.Contains(t, out, "Valid moves from 4 => [0 1 2 3 5 6 7 8]\n")
	assert.Contains(t, out, "Valid moves from 8 => [4 5 7]\n")
}

func TestSolveCommand(t *testing.T) {
	dict := writeFile(t, "words.txt", strings.Join(solveDict, "\n"))

	out, _, err := runCLI(t, "solve", "--tiles", "CATSDOGEX", "--dict", dict)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "C   A   T   \n\nS   D   O   \n\nG   E   X   \n\n"), out)
	assert.Contains(t, out, "TOAD\nCAT\nODE\nAT\nSAT\nTAC\nTOADS\n")
	assert.True(t, strings.HasSuffix(out, "Found 7 words (dictionary of 14)\n"), out)
}

func TestSolveCommandRequiresDictionary(t *testing.T) {
	_, _, err := runCLI(t, "solve", "--tiles", "ABCD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no dictionary")
}

func TestCommandUsesConfigFile(t *testing.T) {
	cfg := writeFile(t, "boggle.hcl", "dim = 2\nseed = 7\n\nlog {\n  level = \"debug\"\n}\n")

	out, logs, err := runCLI(t, "paths", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "64 paths\n", out)
	assert.Contains(t, logs, "seed=7")
	assert.Contains(t, logs, "level=DEBUG")

	// Flags win over the file.
	out, _, err = runCLI(t, "paths", "--config", cfg, "--dim", "1")
	require.NoError(t, err)
	assert.Equal(t, "1 paths\n", out)
}

func TestCommandErrors(t *testing.T) {
	_, _, err := runCLI(t, "paths", "--tiles", "ABCD", "--dim", "3")
	assert.ErrorIs(t, err, ErrInvalidTile)

	_, _, err = runCLI(t, "paths", "--log-level", "loud")
	assert.Error(t, err)

	_, _, err = runCLI(t, "paths", "--dim", "0")
	assert.Error(t, err)

	_, _, err = runCLI(t, "paths", "--config", filepath.Join(t.TempDir(), "missing.hcl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
