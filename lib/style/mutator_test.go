package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stylepad/stylepad-go/lib/attr"
	"github.com/stylepad/stylepad-go/lib/fonts"
	"github.com/stylepad/stylepad-go/lib/runbuffer"
)

type recordingSink struct {
	begun []string
	ended []string
}

func (s *recordingSink) BeginGroup(name string) { s.begun = append(s.begun, name) }
func (s *recordingSink) EndGroup(name string)   { s.ended = append(s.ended, name) }

func newTestMutator() (*Mutator, *recordingSink) {
	var sink = &recordingSink{}
	var resolver = fonts.NewStaticResolver("Geneva", "Courier", "Times")
	return NewMutator(resolver, sink, zap.NewNop().Sugar()), sink
}

func mixedBoldBuffer() *runbuffer.RunBuffer {
	return runbuffer.FromRuns([]runbuffer.Run{
		{Text: "abcde", Attributes: attr.Default().WithBold(true)},
		{Text: "fghij", Attributes: attr.Default()},
	})
}

func TestToggleBoldInvertsPerRun(t *testing.T) {
	var m, _ = newTestMutator()
	var b = mixedBoldBuffer()

	var r = m.ToggleBold(b, runbuffer.NewRange(0, 10))

	assert.Equal(t, runbuffer.NewRange(0, 10), r)
	var runs = b.Runs()
	require.Len(t, runs, 2)
	assert.False(t, runs[0].Attributes.Bold, "characters 0-4 started bold, must end non-bold")
	assert.True(t, runs[1].Attributes.Bold, "characters 5-9 started non-bold, must end bold")
}

func TestToggleItalicInvertsPerRun(t *testing.T) {
	var m, _ = newTestMutator()
	var b = runbuffer.FromRuns([]runbuffer.Run{
		{Text: "abcde", Attributes: attr.Default().WithItalic(true)},
		{Text: "fghij", Attributes: attr.Default()},
	})

	m.ToggleItalic(b, runbuffer.NewRange(0, 10))

	var runs = b.Runs()
	require.Len(t, runs, 2)
	assert.False(t, runs[0].Attributes.Italic)
	assert.True(t, runs[1].Attributes.Italic)
}

func TestToggleUnderlineDecidesForWholeRange(t *testing.T) {
	var m, _ = newTestMutator()
	var b = runbuffer.FromRuns([]runbuffer.Run{
		{Text: "abcde", Attributes: attr.Default().WithUnderline(true)},
		{Text: "fghij", Attributes: attr.Default()},
	})

	m.ToggleUnderline(b, runbuffer.NewRange(0, 10))

	// Underline was present somewhere in range, so the whole range loses it
	// and the two runs merge back into one.
	var runs = b.Runs()
	require.Len(t, runs, 1)
	assert.False(t, runs[0].Attributes.Underline)
}

func TestToggleUnderlineSetsWhenNonePresent(t *testing.T) {
	var m, _ = newTestMutator()
	var b = runbuffer.FromRuns([]runbuffer.Run{
		{Text: "abcdefghij", Attributes: attr.Default()},
	})

	m.ToggleUnderline(b, runbuffer.NewRange(0, 10))

	var runs = b.Runs()
	require.Len(t, runs, 1)
	assert.True(t, runs[0].Attributes.Underline)
}

func TestSetFontFamilyPreservesSize(t *testing.T) {
	var m, _ = newTestMutator()
	var b = runbuffer.FromRuns([]runbuffer.Run{
		{Text: "hello", Attributes: attr.AttributeSet{FontFamily: "Geneva", PointSize: 18}},
	})

	m.SetFontFamily(b, runbuffer.NewRange(0, 5), "Courier")

	var runs = b.Runs()
	require.Len(t, runs, 1)
	assert.Equal(t, "Courier", runs[0].Attributes.FontFamily)
	assert.Equal(t, float64(18), runs[0].Attributes.PointSize)
}

func TestSetFontFamilyFallsBackToDefault(t *testing.T) {
	var m, _ = newTestMutator()
	var b = runbuffer.FromRuns([]runbuffer.Run{
		{Text: "hello", Attributes: attr.Default()},
	})

	m.SetFontFamily(b, runbuffer.NewRange(0, 5), "Wingdings")

	assert.Equal(t, "Geneva", b.Runs()[0].Attributes.FontFamily)
}

func TestSetPointSizeKeepsFamilyAndTraits(t *testing.T) {
	var m, _ = newTestMutator()
	var b = runbuffer.FromRuns([]runbuffer.Run{
		{Text: "hello", Attributes: attr.AttributeSet{FontFamily: "Courier", PointSize: 12, Bold: true}},
	})

	m.SetPointSize(b, runbuffer.NewRange(0, 5), 24)

	var got = b.Runs()[0].Attributes
	assert.Equal(t, "Courier", got.FontFamily)
	assert.Equal(t, float64(24), got.PointSize)
	assert.True(t, got.Bold)
}

func TestPartialRangeOnlyTouchesContainedRuns(t *testing.T) {
	var m, _ = newTestMutator()
	var b = runbuffer.FromRuns([]runbuffer.Run{
		{Text: "aaaabbbb", Attributes: attr.Default()},
	})

	m.ToggleBold(b, runbuffer.NewRange(2, 4))

	var runs = b.Runs()
	require.Len(t, runs, 3)
	assert.Equal(t, "aa", runs[0].Text)
	assert.False(t, runs[0].Attributes.Bold)
	assert.Equal(t, "aabb", runs[1].Text)
	assert.True(t, runs[1].Attributes.Bold)
	assert.Equal(t, "bb", runs[2].Text)
	assert.False(t, runs[2].Attributes.Bold)
	assert.Equal(t, "aaaabbbb", b.Text())
}

func TestEmptyRangeLeavesBufferUntouched(t *testing.T) {
	var m, _ = newTestMutator()
	var b = mixedBoldBuffer()
	var before = b.Runs()

	var caret = runbuffer.NewRange(3, 0)
	m.SetFontFamily(b, caret, "Courier")
	m.SetPointSize(b, caret, 48)
	m.ToggleBold(b, caret)
	m.ToggleItalic(b, caret)
	m.ToggleUnderline(b, caret)

	assert.Equal(t, before, b.Runs())
}

func TestEmptyRangeUpdatesTypingAttributes(t *testing.T) {
	var m, _ = newTestMutator()
	var b = runbuffer.New()
	var caret = runbuffer.NewRange(0, 0)

	m.SetFontFamily(b, caret, "Courier")
	m.SetPointSize(b, caret, 24)

	var typing = m.TypingAttributes()
	assert.Equal(t, "Courier", typing.FontFamily)
	assert.Equal(t, float64(24), typing.PointSize)
}

func TestRefreshTypingAttributesFromPrecedingRun(t *testing.T) {
	var m, _ = newTestMutator()
	var b = mixedBoldBuffer()

	m.RefreshTypingAttributes(b, 5)
	assert.True(t, m.TypingAttributes().Bold, "offset 5 derives from the bold run ending there")

	// No preceding run exists at offset 0, so the bold first run must not
	// leak into the typing attributes.
	m.RefreshTypingAttributes(b, 0)
	assert.Equal(t, attr.Default(), m.TypingAttributes(), "start of document falls back to defaults")

	m.RefreshTypingAttributes(runbuffer.New(), 0)
	assert.Equal(t, attr.Default(), m.TypingAttributes())
}

func TestEveryMutationIsOneTransaction(t *testing.T) {
	var m, sink = newTestMutator()
	var b = mixedBoldBuffer()

	m.ToggleBold(b, runbuffer.NewRange(0, 10))
	m.ToggleUnderline(b, runbuffer.NewRange(0, 10))
	m.SetFontFamily(b, runbuffer.NewRange(0, 10), "Courier")

	require.Equal(t, []string{"Toggle Bold", "Toggle Underline", "Set Font Family"}, sink.begun)
	assert.Equal(t, sink.begun, sink.ended, "every group must be closed exactly once")
}

func TestRangeIsClampedNotRejected(t *testing.T) {
	var m, _ = newTestMutator()
	var b = runbuffer.FromRuns([]runbuffer.Run{
		{Text: "hello", Attributes: attr.Default()},
	})

	m.ToggleBold(b, runbuffer.NewRange(3, 99))

	var runs = b.Runs()
	require.Len(t, runs, 2)
	assert.False(t, runs[0].Attributes.Bold)
	assert.True(t, runs[1].Attributes.Bold)
}
