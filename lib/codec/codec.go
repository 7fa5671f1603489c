package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"unicode/utf8"

	"github.com/stylepad/stylepad-go/lib/attr"
	"github.com/stylepad/stylepad-go/lib/exception"
	"github.com/stylepad/stylepad-go/lib/runbuffer"
)

// Document is the persisted entity: the run buffer plus two denormalized
// legacy fields. The legacy fields are recomputed from the first run on every
// encode and are never authoritative.
type Document struct {
	Buffer           *runbuffer.RunBuffer
	LegacyFontFamily string
	LegacyPointSize  float64
}

func NewDocument(buffer *runbuffer.RunBuffer) *Document {
	return &Document{
		Buffer:           buffer,
		LegacyFontFamily: attr.DefaultFontFamily,
		LegacyPointSize:  attr.DefaultPointSize,
	}
}

// envelope is the outer persisted record. Field-named, not positional, so
// future fields can be added without breaking old readers.
type envelope struct {
	RichPayload []byte   `json:"richPayload,omitempty"`
	FontFamily  *string  `json:"fontFamily,omitempty"`
	PointSize   *float64 `json:"pointSize,omitempty"`
	Text        *string  `json:"text,omitempty"`
}

// runRecord is one run of the self-describing rich-text payload, a JSON
// array of these. This is also the bare legacy on-disk form (decode tier 2).
type runRecord struct {
	Text       string  `json:"text"`
	FontFamily string  `json:"fontFamily"`
	PointSize  float64 `json:"pointSize"`
	Bold       bool    `json:"bold,omitempty"`
	Italic     bool    `json:"italic,omitempty"`
	Underline  bool    `json:"underline,omitempty"`
}

// Encode serializes the document into the envelope form. The legacy
// fontFamily/pointSize fields are recomputed from the first run's attributes
// (defaults when the buffer is empty) and written back to doc. Text that is
// not valid UTF-8 is a fatal ContentEncodingError; a rich-payload marshalling
// failure degrades to a plain-text payload instead of failing the save.
func Encode(doc *Document) ([]byte, error) {
	var text = doc.Buffer.Text()
	if !utf8.ValidString(text) {
		return nil, exception.NewContentEncodingError("document text is not valid UTF-8")
	}

	// The first run stands in for the whole document here even when styling
	// is heterogeneous. Known limitation, kept for format compatibility.
	var first = doc.Buffer.AttributesAt(0).Sanitized()
	doc.LegacyFontFamily = first.FontFamily
	doc.LegacyPointSize = first.PointSize

	var payload, err = json.Marshal(recordsFromBuffer(doc.Buffer))
	if err != nil {
		payload = []byte(text)
	}

	var env = envelope{
		RichPayload: payload,
		FontFamily:  &doc.LegacyFontFamily,
		PointSize:   &doc.LegacyPointSize,
		Text:        &text,
	}

	var encoded []byte
	encoded, err = json.Marshal(env)
	if err != nil {
		return nil, exception.NewContentEncodingError("envelope is not encodable: " + err.Error())
	}
	return encoded, nil
}

// Decode restores a document from persisted bytes. Three tiers are tried
// strictly in order, first success wins:
//
//  1. the JSON envelope, decoding its rich payload field;
//  2. a bare rich-text payload with no envelope wrapper (legacy form);
//  3. raw UTF-8 text, yielding a single run with default attributes.
//
// Bytes that fail all three tiers are a ContentCorruptError.
func Decode(data []byte) (*Document, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && isEnvelope(env) {
		var family = attr.DefaultFontFamily
		var size = float64(attr.DefaultPointSize)
		if env.FontFamily != nil && *env.FontFamily != "" {
			family = *env.FontFamily
		}
		if env.PointSize != nil && *env.PointSize > 0 {
			size = *env.PointSize
		}

		if runs, err := decodeRuns(env.RichPayload); err == nil {
			var doc = NewDocument(runbuffer.FromRuns(runs))
			doc.LegacyFontFamily = family
			doc.LegacyPointSize = size
			return doc, nil
		}

		// Envelope parsed but its payload did not; fall back to the plain
		// text mirror when the envelope carries one.
		if env.Text != nil {
			return plainDocument(*env.Text, family, size), nil
		}
	}

	if runs, err := decodeRuns(data); err == nil {
		return NewDocument(runbuffer.FromRuns(runs)), nil
	}

	if utf8.Valid(data) {
		return plainDocument(string(data), attr.DefaultFontFamily, attr.DefaultPointSize), nil
	}

	return nil, exception.NewContentCorruptError(errors.New("bytes match no known document form"))
}

func isEnvelope(env envelope) bool {
	return env.RichPayload != nil || env.Text != nil || env.FontFamily != nil || env.PointSize != nil
}

func decodeRuns(payload []byte) ([]runbuffer.Run, error) {
	var trimmed = bytes.TrimLeft(payload, " \t\r\n")
	if !bytes.HasPrefix(trimmed, []byte("[")) {
		return nil, errors.New("payload is not a run array")
	}

	var records []runRecord
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, err
	}

	var runs = make([]runbuffer.Run, 0, len(records))
	for _, record := range records {
		runs = append(runs, runbuffer.Run{
			Text: record.Text,
			Attributes: attr.AttributeSet{
				FontFamily: record.FontFamily,
				PointSize:  record.PointSize,
				Bold:       record.Bold,
				Italic:     record.Italic,
				Underline:  record.Underline,
			}.Sanitized(),
		})
	}
	return runs, nil
}

func recordsFromBuffer(buffer *runbuffer.RunBuffer) []runRecord {
	var records = make([]runRecord, 0, buffer.RunCount())
	for _, run := range buffer.Runs() {
		records = append(records, runRecord{
			Text:       run.Text,
			FontFamily: run.Attributes.FontFamily,
			PointSize:  run.Attributes.PointSize,
			Bold:       run.Attributes.Bold,
			Italic:     run.Attributes.Italic,
			Underline:  run.Attributes.Underline,
		})
	}
	return records
}

func plainDocument(text string, family string, size float64) *Document {
	var buffer = runbuffer.New()
	if text != "" {
		buffer = runbuffer.FromRuns([]runbuffer.Run{{
			Text: text,
			Attributes: attr.AttributeSet{
				FontFamily: family,
				PointSize:  size,
			},
		}})
	}
	var doc = NewDocument(buffer)
	doc.LegacyFontFamily = family
	doc.LegacyPointSize = size
	return doc
}
