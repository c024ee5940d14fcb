package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/marksync/internal/core/config"
)

const testDoc = "# Title\n\nSome paragraph text here.\n\n- item1\n- item2\n"

func newTestModel(t *testing.T, content string) Model {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg := config.DefaultConfig()
	m := New(path, content, &cfg)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew_ParsesInitialContent(t *testing.T) {
	m := newTestModel(t, testDoc)

	blocks := m.coord.Blocks()
	require.Len(t, blocks, 3)
	assert.Equal(t, "heading", blocks[0].Type)
	assert.Equal(t, "paragraph", blocks[1].Type)
	assert.Equal(t, "list", blocks[2].Type)
}

func TestResize_RendersPreview(t *testing.T) {
	m := newTestModel(t, testDoc)

	require.NotNil(t, m.holder.pane)
	assert.Len(t, m.holder.pane.Elements(), 3)
	assert.Contains(t, m.View(), "Title")
}

func TestEdit_ReparsesAndMarksDirty(t *testing.T) {
	m := newTestModel(t, "# Title\n")
	assert.False(t, m.dirty)

	next, _ := m.Update(keyRunes("x"))
	m = next.(Model)

	assert.True(t, m.dirty)
	assert.Contains(t, m.editor.Value(), "x")
	require.NotEmpty(t, m.coord.Blocks())
	assert.Contains(t, m.coord.Blocks()[0].Content, "x")
}

func TestToggleFocus(t *testing.T) {
	m := newTestModel(t, testDoc)
	assert.Equal(t, focusEditor, m.focus)
	assert.True(t, m.editor.Focused())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, focusPreview, m.focus)
	assert.False(t, m.editor.Focused())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, focusEditor, m.focus)
	assert.True(t, m.editor.Focused())
}

func TestSave_WritesFileAndClearsDirty(t *testing.T) {
	m := newTestModel(t, "# Title\n")

	next, _ := m.Update(keyRunes("z"))
	m = next.(Model)
	require.True(t, m.dirty)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(Model)

	assert.False(t, m.dirty)
	data, err := os.ReadFile(m.path)
	require.NoError(t, err)
	assert.Equal(t, m.editor.Value(), string(data))
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, testDoc)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestMoveCursorToLine(t *testing.T) {
	m := newTestModel(t, testDoc)
	require.Equal(t, 0, m.editor.Line())

	m.moveCursorToLine(5)
	assert.Equal(t, 4, m.editor.Line())

	m.moveCursorToLine(1)
	assert.Equal(t, 0, m.editor.Line())
}

func TestMoveCursorToLine_ClampsToDocument(t *testing.T) {
	m := newTestModel(t, "# Title\n")

	m.moveCursorToLine(99)
	assert.Equal(t, m.editor.LineCount()-1, m.editor.Line())

	m.moveCursorToLine(-3)
	assert.Equal(t, 0, m.editor.Line())
}

func TestStatusLine(t *testing.T) {
	m := newTestModel(t, testDoc)

	status := m.statusLine()
	assert.Contains(t, status, "doc.md")
	assert.Contains(t, status, "1:1")
	assert.Contains(t, status, "semantic")
	assert.True(t, strings.Contains(status, "block-0-heading1"), status)
}

func TestCursorMove_ScrollsPreview(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("# Title\n\n")
	for i := 0; i < 40; i++ {
		sb.WriteString("Paragraph number ")
		sb.WriteString(strings.Repeat("word ", 5))
		sb.WriteString("\n\n")
	}
	sb.WriteString("## End\n")

	m := newTestModel(t, sb.String())

	// Jump the cursor to the closing heading and sync. The very last line
	// is the blank trailing one, which belongs to no block.
	m.moveCursorToLine(m.editor.LineCount() - 1)
	m.lastLine = -1 // force the sync path to treat this as movement
	m.syncEditorToPreview()

	assert.Greater(t, m.preview.YOffset, 0)
}
