package attr

// Fallback style used whenever a document carries no usable style of its own.
const (
	DefaultFontFamily = "Geneva"
	DefaultPointSize  = 12
)

// AttributeSet describes the stylistic properties of one run of text.
// It is a value type; two sets are equal iff all fields are equal, and
// equality is what drives run merging.
type AttributeSet struct {
	FontFamily string  `json:"fontFamily"`
	PointSize  float64 `json:"pointSize"`
	Bold       bool    `json:"bold"`
	Italic     bool    `json:"italic"`
	Underline  bool    `json:"underline"`
}

func Default() AttributeSet {
	return AttributeSet{
		FontFamily: DefaultFontFamily,
		PointSize:  DefaultPointSize,
	}
}

func AttributeSetsEqual(a AttributeSet, b AttributeSet) bool {
	return a == b
}

func (a AttributeSet) Equal(b AttributeSet) bool {
	return a == b
}

// WithFontFamily returns a copy with the family replaced. Traits and size
// are kept untouched.
func (a AttributeSet) WithFontFamily(family string) AttributeSet {
	a.FontFamily = family
	return a
}

// WithPointSize returns a copy with the point size replaced.
func (a AttributeSet) WithPointSize(size float64) AttributeSet {
	a.PointSize = size
	return a
}

func (a AttributeSet) WithBold(bold bool) AttributeSet {
	a.Bold = bold
	return a
}

func (a AttributeSet) WithItalic(italic bool) AttributeSet {
	a.Italic = italic
	return a
}

func (a AttributeSet) WithUnderline(underline bool) AttributeSet {
	a.Underline = underline
	return a
}

// Sanitized returns a copy with unusable fields replaced by defaults. Decoded
// legacy payloads may carry an empty family or a non-positive size.
func (a AttributeSet) Sanitized() AttributeSet {
	if a.FontFamily == "" {
		a.FontFamily = DefaultFontFamily
	}
	if a.PointSize <= 0 {
		a.PointSize = DefaultPointSize
	}
	return a
}
