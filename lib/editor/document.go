package editor

import (
	"sync"

	"go.uber.org/zap"

	"github.com/stylepad/stylepad-go/lib/attr"
	"github.com/stylepad/stylepad-go/lib/codec"
	"github.com/stylepad/stylepad-go/lib/fonts"
	"github.com/stylepad/stylepad-go/lib/runbuffer"
	"github.com/stylepad/stylepad-go/lib/style"
)

// Document is one open document: its run buffer, the current selection, the
// style mutator that owns the typing attributes, and the undo history. It is
// the explicit mutation capability handed to command handlers; nothing looks
// it up through ambient UI state.
//
// All methods serialize through the document mutex, so HTTP callers may hit
// the same document concurrently while the buffer itself stays single-owner.
type Document struct {
	Id string

	mu        sync.Mutex
	doc       *codec.Document
	selection runbuffer.Range
	styler    *style.Mutator
	history   *History
	logger    *zap.SugaredLogger
}

func newDocument(id string, doc *codec.Document, resolver fonts.Resolver, logger *zap.SugaredLogger) *Document {
	var d = &Document{
		Id:     id,
		doc:    doc,
		logger: logger,
	}
	d.history = newHistory(d)
	d.styler = style.NewMutator(resolver, d.history, logger)
	return d
}

func (d *Document) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.doc.Buffer.Text()
}

func (d *Document) Runs() []runbuffer.Run {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.doc.Buffer.Runs()
}

func (d *Document) Selection() runbuffer.Range {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selection
}

// SetSelection moves the selection, clamped to the document. A collapsed
// selection re-derives the typing attributes from the run preceding the
// caret.
func (d *Document) SetSelection(r runbuffer.Range) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.selection = r.Clamp(d.doc.Buffer.TotalLength())
	if d.selection.IsEmpty() {
		d.styler.RefreshTypingAttributes(d.doc.Buffer, d.selection.Start)
	}
}

// ApplyFontFamily sets the family over the current selection. Side effect
// only; an unresolvable family silently falls back to the default.
func (d *Document) ApplyFontFamily(family string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selection = d.styler.SetFontFamily(d.doc.Buffer, d.selection, family)
}

// ApplyFontSize sets the point size over the current selection.
func (d *Document) ApplyFontSize(size float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selection = d.styler.SetPointSize(d.doc.Buffer, d.selection, size)
}

// ToggleBold inverts bold per run across the current selection.
func (d *Document) ToggleBold() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selection = d.styler.ToggleBold(d.doc.Buffer, d.selection)
}

// ToggleItalic inverts italic per run across the current selection.
func (d *Document) ToggleItalic() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selection = d.styler.ToggleItalic(d.doc.Buffer, d.selection)
}

// ToggleUnderline applies the whole-range underline decision to the current
// selection.
func (d *Document) ToggleUnderline() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selection = d.styler.ToggleUnderline(d.doc.Buffer, d.selection)
}

// InsertText types text at the current selection: a non-empty selection is
// replaced, and the inserted text carries the typing attributes. The caret
// ends up after the inserted text.
func (d *Document) InsertText(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if text == "" {
		return
	}

	d.history.BeginGroup("Typing")
	defer d.history.EndGroup("Typing")

	if !d.selection.IsEmpty() {
		d.doc.Buffer.DeleteRange(d.selection)
	}
	var attrs = d.styler.TypingAttributes()
	d.doc.Buffer.InsertText(d.selection.Start, text, attrs)

	var caret = d.selection.Start + len([]rune(text))
	d.selection = runbuffer.NewRange(caret, 0)
}

// DeleteSelection removes the selected text, collapsing the selection to its
// start.
func (d *Document) DeleteSelection() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.selection.IsEmpty() {
		return
	}

	d.history.BeginGroup("Delete")
	defer d.history.EndGroup("Delete")

	d.doc.Buffer.DeleteRange(d.selection)
	d.selection = runbuffer.NewRange(d.selection.Start, 0)
	d.styler.RefreshTypingAttributes(d.doc.Buffer, d.selection.Start)
}

// Undo reverts the most recent grouped mutation.
func (d *Document) Undo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	var name, ok = d.history.undo()
	if ok {
		d.logger.Debugw("undo", "document", d.Id, "step", name)
	}
	return ok
}

// TypingAttributes exposes the attributes the next typed character will get.
func (d *Document) TypingAttributes() attr.AttributeSet {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.styler.TypingAttributes()
}

// encode snapshots the document into envelope bytes.
func (d *Document) encode() ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return codec.Encode(d.doc)
}
