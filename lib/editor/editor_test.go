package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stylepad/stylepad-go/lib/db"
	"github.com/stylepad/stylepad-go/lib/exception"
	"github.com/stylepad/stylepad-go/lib/fonts"
	"github.com/stylepad/stylepad-go/lib/runbuffer"
)

func newTestManager() *Manager {
	var resolver = fonts.NewStaticResolver("Geneva", "Courier", "Times")
	return NewManager(db.NewMemoryDataStore(), resolver, zap.NewNop().Sugar())
}

func TestCreateAndReloadDocument(t *testing.T) {
	var m = newTestManager()

	created, err := m.CreateDocument("hello world")
	require.NoError(t, err)

	created.SetSelection(runbuffer.NewRange(0, 5))
	created.ToggleBold()
	require.NoError(t, m.SaveDocument(created.Id))
	require.NoError(t, m.CloseDocument(created.Id))

	reloaded, err := m.GetDocument(created.Id)
	require.NoError(t, err)
	assert.Equal(t, "hello world", reloaded.Text())

	var runs = reloaded.Runs()
	require.Len(t, runs, 2)
	assert.True(t, runs[0].Attributes.Bold)
	assert.False(t, runs[1].Attributes.Bold)
}

func TestGetDocumentNotFound(t *testing.T) {
	var m = newTestManager()

	_, err := m.GetDocument("missing")
	var notFound *exception.DocumentNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestCapabilitiesActOnCurrentSelection(t *testing.T) {
	var m = newTestManager()
	document, err := m.CreateDocument("aaaa bbbb")
	require.NoError(t, err)

	document.SetSelection(runbuffer.NewRange(0, 4))
	document.ApplyFontFamily("Courier")
	document.ApplyFontSize(18)

	var runs = document.Runs()
	require.Len(t, runs, 2)
	assert.Equal(t, "Courier", runs[0].Attributes.FontFamily)
	assert.Equal(t, float64(18), runs[0].Attributes.PointSize)
	assert.Equal(t, "Geneva", runs[1].Attributes.FontFamily)
}

func TestInsertTextReplacesSelection(t *testing.T) {
	var m = newTestManager()
	document, err := m.CreateDocument("hello cruel world")
	require.NoError(t, err)

	document.SetSelection(runbuffer.NewRange(6, 6))
	document.InsertText("kind ")

	assert.Equal(t, "hello kind world", document.Text())
	assert.Equal(t, runbuffer.NewRange(11, 0), document.Selection())
}

func TestTypingInheritsPrecedingAttributes(t *testing.T) {
	var m = newTestManager()
	document, err := m.CreateDocument("bold")
	require.NoError(t, err)

	document.SetSelection(runbuffer.NewRange(0, 4))
	document.ToggleBold()

	document.SetSelection(runbuffer.NewRange(4, 0))
	document.InsertText("er")

	var runs = document.Runs()
	require.Len(t, runs, 1, "typed text inherits bold and merges into the run")
	assert.Equal(t, "bolder", runs[0].Text)
	assert.True(t, runs[0].Attributes.Bold)
}

func TestCaretStyleChangesOnlyAffectFutureTyping(t *testing.T) {
	var m = newTestManager()
	document, err := m.CreateDocument("ab")
	require.NoError(t, err)

	document.SetSelection(runbuffer.NewRange(1, 0))
	document.ApplyFontFamily("Courier")
	assert.Equal(t, "ab", document.Text())
	require.Len(t, document.Runs(), 1, "caret-only family change must not touch runs")

	document.InsertText("x")
	var runs = document.Runs()
	require.Len(t, runs, 3)
	assert.Equal(t, "Courier", runs[1].Attributes.FontFamily)
}

func TestUndoRevertsOneGroupedMutation(t *testing.T) {
	var m = newTestManager()
	document, err := m.CreateDocument("hello world")
	require.NoError(t, err)

	document.SetSelection(runbuffer.NewRange(0, 11))
	document.ToggleUnderline()
	require.Len(t, document.Runs(), 1)
	require.True(t, document.Runs()[0].Attributes.Underline)

	require.True(t, document.Undo())
	assert.False(t, document.Runs()[0].Attributes.Underline,
		"one undo must revert the whole underline mutation")

	assert.False(t, document.Undo(), "nothing left to undo after the initial seed")
}

func TestDeleteSelection(t *testing.T) {
	var m = newTestManager()
	document, err := m.CreateDocument("hello world")
	require.NoError(t, err)

	document.SetSelection(runbuffer.NewRange(5, 6))
	document.DeleteSelection()

	assert.Equal(t, "hello", document.Text())
	assert.Equal(t, runbuffer.NewRange(5, 0), document.Selection())
}

func TestDeleteDocument(t *testing.T) {
	var m = newTestManager()
	document, err := m.CreateDocument("bye")
	require.NoError(t, err)

	require.NoError(t, m.DeleteDocument(document.Id))
	_, err = m.GetDocument(document.Id)
	require.Error(t, err)
}
