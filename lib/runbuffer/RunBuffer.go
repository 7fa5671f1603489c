package runbuffer

import (
	"strings"
	"unicode/utf8"

	"github.com/stylepad/stylepad-go/lib/attr"
)

// Run is a maximal contiguous text segment sharing one AttributeSet. Runs are
// owned by the buffer that contains them and are copied by value, never
// aliased.
type Run struct {
	Text       string
	Attributes attr.AttributeSet
}

// IndexedRun pairs a run with its position in the buffer.
type IndexedRun struct {
	Index int
	Run   Run
}

// RunBuffer is an ordered sequence of runs whose texts partition the document
// text with no gaps or overlaps. After every mutation no two adjacent runs
// have equal attributes.
type RunBuffer struct {
	runs []Run
}

func New() *RunBuffer {
	return &RunBuffer{}
}

// FromRuns builds a buffer from decoded content. Empty-text runs are dropped
// and adjacent equal-attribute runs are merged so both buffer invariants hold
// on the result.
func FromRuns(runs []Run) *RunBuffer {
	var b = New()
	for _, run := range runs {
		if run.Text == "" {
			continue
		}
		b.runs = append(b.runs, run)
	}
	b.MergeAdjacentEqual()
	return b
}

// Runs returns a copy of the run sequence.
func (b *RunBuffer) Runs() []Run {
	var copied = make([]Run, len(b.runs))
	copy(copied, b.runs)
	return copied
}

func (b *RunBuffer) RunCount() int {
	return len(b.runs)
}

// Text returns the full document text, the in-order concatenation of all run
// texts.
func (b *RunBuffer) Text() string {
	var sb strings.Builder
	for _, run := range b.runs {
		sb.WriteString(run.Text)
	}
	return sb.String()
}

// TotalLength returns the document length in characters.
func (b *RunBuffer) TotalLength() int {
	var total = 0
	for _, run := range b.runs {
		total += utf8.RuneCountInString(run.Text)
	}
	return total
}

// runAt locates the run containing the given offset and the offset of the
// run's first character. An offset sitting on a boundary belongs to the run
// that starts there.
func (b *RunBuffer) runAt(offset int) (int, int) {
	var runStart = 0
	for i, run := range b.runs {
		var runLen = utf8.RuneCountInString(run.Text)
		if offset < runStart+runLen {
			return i, runStart
		}
		runStart += runLen
	}
	return -1, runStart
}

// SplitAt divides the run containing offset into two runs with identical
// attributes. A no-op when offset is 0, TotalLength or an existing run
// boundary. Document text and total length never change.
func (b *RunBuffer) SplitAt(offset int) {
	if offset <= 0 || offset >= b.TotalLength() {
		return
	}

	var index, runStart = b.runAt(offset)
	if index < 0 || offset == runStart {
		return
	}

	var run = b.runs[index]
	var local = offset - runStart
	var text = []rune(run.Text)

	var left = Run{Text: string(text[:local]), Attributes: run.Attributes}
	var right = Run{Text: string(text[local:]), Attributes: run.Attributes}

	b.runs = append(b.runs[:index], append([]Run{left, right}, b.runs[index+1:]...)...)
}

// Normalize clamps the range and splits at both of its ends so that every run
// is either fully inside or fully outside the range. Returns the clamped
// range.
func (b *RunBuffer) Normalize(r Range) Range {
	r = r.Clamp(b.TotalLength())
	b.SplitAt(r.Start)
	b.SplitAt(r.End())
	return r
}

// RunsIn normalizes the range and returns the runs fully contained in it, in
// order.
func (b *RunBuffer) RunsIn(r Range) []IndexedRun {
	r = b.Normalize(r)
	if r.IsEmpty() {
		return nil
	}

	var contained []IndexedRun
	var runStart = 0
	for i, run := range b.runs {
		var runEnd = runStart + utf8.RuneCountInString(run.Text)
		if runStart >= r.Start && runEnd <= r.End() {
			contained = append(contained, IndexedRun{Index: i, Run: run})
		}
		runStart = runEnd
	}
	return contained
}

// ReplaceAttributes swaps one run's attributes; its text is unchanged.
func (b *RunBuffer) ReplaceAttributes(index int, attributes attr.AttributeSet) {
	if index < 0 || index >= len(b.runs) {
		return
	}
	b.runs[index].Attributes = attributes
}

// AttributesAt returns the attributes of the run containing offset, clamped
// to the document. The zero return for an empty buffer is the default set.
func (b *RunBuffer) AttributesAt(offset int) attr.AttributeSet {
	if len(b.runs) == 0 {
		return attr.Default()
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= b.TotalLength() {
		return b.runs[len(b.runs)-1].Attributes
	}
	var index, _ = b.runAt(offset)
	return b.runs[index].Attributes
}

// MergeAdjacentEqual combines every adjacent pair of runs with equal
// attributes into one run. Runs after every mutation that can create such a
// pair.
func (b *RunBuffer) MergeAdjacentEqual() {
	if len(b.runs) < 2 {
		return
	}

	var merged = b.runs[:1]
	for _, run := range b.runs[1:] {
		var last = &merged[len(merged)-1]
		if last.Attributes.Equal(run.Attributes) {
			last.Text += run.Text
		} else {
			merged = append(merged, run)
		}
	}
	b.runs = merged
}

// InsertText inserts text at offset as a run carrying the given attributes,
// then re-merges. Inserting an empty string is a no-op.
func (b *RunBuffer) InsertText(offset int, text string, attributes attr.AttributeSet) {
	if text == "" {
		return
	}
	if offset < 0 {
		offset = 0
	}
	if offset > b.TotalLength() {
		offset = b.TotalLength()
	}

	b.SplitAt(offset)

	var index, _ = b.runAt(offset)
	if index < 0 {
		index = len(b.runs)
	}

	var inserted = Run{Text: text, Attributes: attributes}
	b.runs = append(b.runs[:index], append([]Run{inserted}, b.runs[index:]...)...)
	b.MergeAdjacentEqual()
}

// DeleteRange removes the text inside the range, then re-merges. An empty
// range is a no-op.
func (b *RunBuffer) DeleteRange(r Range) {
	r = b.Normalize(r)
	if r.IsEmpty() {
		return
	}

	var kept = make([]Run, 0, len(b.runs))
	var runStart = 0
	for _, run := range b.runs {
		var runEnd = runStart + utf8.RuneCountInString(run.Text)
		if runStart < r.Start || runEnd > r.End() {
			kept = append(kept, run)
		}
		runStart = runEnd
	}
	b.runs = kept
	b.MergeAdjacentEqual()
}
