package style

import (
	"go.uber.org/zap"

	"github.com/stylepad/stylepad-go/lib/attr"
	"github.com/stylepad/stylepad-go/lib/fonts"
	"github.com/stylepad/stylepad-go/lib/runbuffer"
)

// Mutator applies the five style operations to a RunBuffer. It also owns the
// typing attributes, the AttributeSet applied to the next character typed at
// an empty-range insertion point.
//
// Every operation with a non-empty range runs the same sequence: normalize
// the buffer at the range boundaries, collect the runs fully inside, apply a
// policy per run, re-merge, and return the clamped range as the surviving
// selection. The whole sequence is wrapped in one undo-grouped transaction.
type Mutator struct {
	resolver fonts.Resolver
	sink     TransactionSink
	logger   *zap.SugaredLogger
	typing   attr.AttributeSet
}

func NewMutator(resolver fonts.Resolver, sink TransactionSink, logger *zap.SugaredLogger) *Mutator {
	return &Mutator{
		resolver: resolver,
		sink:     sink,
		logger:   logger,
		typing:   attr.Default().WithFontFamily(resolver.DefaultFamily()),
	}
}

// TypingAttributes returns the attributes for the next typed character.
func (m *Mutator) TypingAttributes() attr.AttributeSet {
	return m.typing
}

// RefreshTypingAttributes re-derives the typing attributes from the run
// immediately preceding the insertion point. At the start of the document
// there is no preceding run, so the defaults apply. Surrounding code calls
// this whenever the caret moves.
func (m *Mutator) RefreshTypingAttributes(buffer *runbuffer.RunBuffer, offset int) {
	if offset <= 0 || buffer.TotalLength() == 0 {
		m.typing = attr.Default().WithFontFamily(m.resolver.DefaultFamily())
		return
	}
	m.typing = buffer.AttributesAt(offset - 1)
}

// SetFontFamily replaces the family of every run in the range, keeping each
// run's size and traits. An unresolvable family falls back to the resolver's
// default and never fails the operation. With an empty range only the typing
// attributes change.
func (m *Mutator) SetFontFamily(buffer *runbuffer.RunBuffer, r runbuffer.Range, family string) runbuffer.Range {
	var resolved = m.resolveFamily(family)

	r = r.Clamp(buffer.TotalLength())
	if r.IsEmpty() {
		m.typing = m.typing.WithFontFamily(resolved)
		return r
	}
	return m.applyPerRun(buffer, r, "Set Font Family", func(a attr.AttributeSet) attr.AttributeSet {
		return a.WithFontFamily(resolved)
	})
}

// SetPointSize replaces the point size of every run in the range, keeping
// each run's family and traits. With an empty range only the typing
// attributes change.
func (m *Mutator) SetPointSize(buffer *runbuffer.RunBuffer, r runbuffer.Range, size float64) runbuffer.Range {
	if size <= 0 {
		m.logger.Debugw("ignoring non-positive point size", "size", size)
		size = attr.DefaultPointSize
	}

	r = r.Clamp(buffer.TotalLength())
	if r.IsEmpty() {
		m.typing = m.typing.WithPointSize(size)
		return r
	}
	return m.applyPerRun(buffer, r, "Set Point Size", func(a attr.AttributeSet) attr.AttributeSet {
		return a.WithPointSize(size)
	})
}

// ToggleBold inverts the bold trait of every run in the range independently.
// A selection spanning mixed bold and non-bold runs ends up with each run's
// state individually flipped, not a uniform outcome.
func (m *Mutator) ToggleBold(buffer *runbuffer.RunBuffer, r runbuffer.Range) runbuffer.Range {
	r = r.Clamp(buffer.TotalLength())
	if r.IsEmpty() {
		// No run to consult, so a caret-only toggle is a no-op.
		return r
	}
	return m.applyPerRun(buffer, r, "Toggle Bold", func(a attr.AttributeSet) attr.AttributeSet {
		return a.WithBold(!a.Bold)
	})
}

// ToggleItalic inverts the italic trait of every run in the range
// independently, the same per-run rule as ToggleBold.
func (m *Mutator) ToggleItalic(buffer *runbuffer.RunBuffer, r runbuffer.Range) runbuffer.Range {
	r = r.Clamp(buffer.TotalLength())
	if r.IsEmpty() {
		return r
	}
	return m.applyPerRun(buffer, r, "Toggle Italic", func(a attr.AttributeSet) attr.AttributeSet {
		return a.WithItalic(!a.Italic)
	})
}

// ToggleUnderline decides once for the whole range: if any run in the range
// is underlined, underline is cleared everywhere in the range, otherwise it
// is set everywhere. This deliberately differs from the per-run bold/italic
// rule.
func (m *Mutator) ToggleUnderline(buffer *runbuffer.RunBuffer, r runbuffer.Range) runbuffer.Range {
	r = r.Clamp(buffer.TotalLength())
	if r.IsEmpty() {
		return r
	}

	var txn = newTransaction("Toggle Underline", m.sink)
	defer txn.Commit()

	r = buffer.Normalize(r)

	var anyUnderlined = false
	for _, ir := range buffer.RunsIn(r) {
		if ir.Run.Attributes.Underline {
			anyUnderlined = true
			break
		}
	}
	var underline = !anyUnderlined

	for _, ir := range buffer.RunsIn(r) {
		buffer.ReplaceAttributes(ir.Index, ir.Run.Attributes.WithUnderline(underline))
	}
	buffer.MergeAdjacentEqual()
	return r
}

func (m *Mutator) applyPerRun(buffer *runbuffer.RunBuffer, r runbuffer.Range, name string, policy func(attr.AttributeSet) attr.AttributeSet) runbuffer.Range {
	var txn = newTransaction(name, m.sink)
	defer txn.Commit()

	r = buffer.Normalize(r)
	for _, ir := range buffer.RunsIn(r) {
		buffer.ReplaceAttributes(ir.Index, policy(ir.Run.Attributes))
	}
	buffer.MergeAdjacentEqual()
	return r
}

func (m *Mutator) resolveFamily(family string) string {
	var ref, err = m.resolver.Resolve(family)
	if err != nil {
		m.logger.Debugw("font family not resolvable, substituting default",
			"family", family, "default", m.resolver.DefaultFamily())
		return m.resolver.DefaultFamily()
	}
	return ref.Family
}
