package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runBlocks(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "marksync",
		Writer: &buf,
	}
	NewBlocksCmd(&Flags{}).Register(app)

	err := app.Run(context.Background(), append([]string{"marksync", "blocks"}, args...))
	return buf.String(), err
}

func TestBlocks_Table(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "doc.md", "# Title\n\nSome text.\n")

	out, err := runBlocks(t, path)
	require.NoError(t, err)

	assert.Contains(t, out, "FILE")
	assert.Contains(t, out, "block-0-heading1")
	assert.Contains(t, out, "block-1-paragraph")
	assert.Contains(t, out, "heading")
	assert.Contains(t, out, "1-1")
	assert.Contains(t, out, "3-3")
}

func TestBlocks_JSON(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "doc.md", "# Title\n\nSome text.\n")

	out, err := runBlocks(t, "--json", path)
	require.NoError(t, err)

	var results []fileBlocks
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, path, results[0].File)
	require.Len(t, results[0].Blocks, 2)
	assert.Equal(t, "block-0-heading1", results[0].Blocks[0].ID)
	assert.NotEmpty(t, results[0].Blocks[0].Hash)
}

func TestBlocks_Glob(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "a.md", "# A\n")
	writeDoc(t, dir, "b.md", "# B\n")

	out, err := runBlocks(t, "--json", filepath.Join(dir, "*.md"))
	require.NoError(t, err)

	var results []fileBlocks
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Len(t, results, 2)
}

func TestBlocks_MissingFile(t *testing.T) {
	_, err := runBlocks(t, filepath.Join(t.TempDir(), "nope.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.md")
}

func TestBlocks_NoArgs(t *testing.T) {
	_, err := runBlocks(t)
	require.Error(t, err)
}
