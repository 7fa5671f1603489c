package editor

import (
	"github.com/stylepad/stylepad-go/lib/runbuffer"
)

const historyLimit = 100

type historyEntry struct {
	name      string
	runs      []runbuffer.Run
	selection runbuffer.Range
}

// History coalesces grouped mutations into single undoable steps. It
// implements style.TransactionSink: the snapshot taken when the outermost
// group opens becomes one undo entry when it closes, no matter how many runs
// the mutation touched.
type History struct {
	document *Document
	entries  []historyEntry
	depth    int
	pending  *historyEntry
}

func newHistory(document *Document) *History {
	return &History{document: document}
}

func (h *History) BeginGroup(name string) {
	h.depth++
	if h.depth > 1 {
		return
	}
	h.pending = &historyEntry{
		name:      name,
		runs:      h.document.doc.Buffer.Runs(),
		selection: h.document.selection,
	}
}

func (h *History) EndGroup(name string) {
	if h.depth == 0 {
		return
	}
	h.depth--
	if h.depth > 0 || h.pending == nil {
		return
	}

	h.entries = append(h.entries, *h.pending)
	h.pending = nil
	if len(h.entries) > historyLimit {
		h.entries = h.entries[len(h.entries)-historyLimit:]
	}
}

func (h *History) CanUndo() bool {
	return len(h.entries) > 0
}

// undo restores the buffer and selection captured before the most recent
// group. Returns the name of the undone step.
func (h *History) undo() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}

	var entry = h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]

	h.document.doc.Buffer = runbuffer.FromRuns(entry.runs)
	h.document.selection = entry.selection
	return entry.name, true
}
