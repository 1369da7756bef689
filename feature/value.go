package feature

import (
	"regexp"
	"strconv"
)

// numericRE matches optional-sign decimal numbers: "900", "-1.5", ".5".
// Exponent forms and a bare trailing dot do not match and stay text.
var numericRE = regexp.MustCompile(`^[+-]?((\d+(\.\d+)?)|(\.\d+))$`)

// Value holds a record field that is numeric when its text looks like a
// number and free text otherwise.  BED scores and GTF attribute values
// share this rule; the missing-value sentinel "." stays text.
type Value struct {
	Raw     string
	Num     float64
	Numeric bool
}

// NewValue classifies raw and caches its numeric form when it has one.
func NewValue(raw string) Value {
	if numericRE.MatchString(raw) {
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return Value{Raw: raw, Num: n, Numeric: true}
		}
	}
	return Value{Raw: raw}
}

// String returns the original field text.
func (v Value) String() string { return v.Raw }

// Strand is the orientation of a feature: '+', '-', or '.' when unknown
// or not applicable.
type Strand byte

// Strand values.
const (
	Plus     Strand = '+'
	Minus    Strand = '-'
	NoStrand Strand = '.'
)

// ParseStrand interprets a strand field.  Anything other than a
// single-character field is treated as NoStrand; validity of the
// character itself is the caller's responsibility, matching the rest of
// the model's unchecked-precondition policy.
func ParseStrand(s string) Strand {
	if len(s) == 1 {
		return Strand(s[0])
	}
	return NoStrand
}

// String returns the single-character field text.
func (s Strand) String() string { return string(byte(s)) }

// Frame is the coding frame of a GTF feature: 0, 1, 2, or FrameNone for
// the "." placeholder.
type Frame int8

// FrameNone is the missing-frame sentinel.
const FrameNone Frame = -1

// ParseFrame interprets a frame field; non-numeric text maps to
// FrameNone.
func ParseFrame(s string) Frame {
	if n, err := strconv.Atoi(s); err == nil {
		return Frame(n)
	}
	return FrameNone
}

// String returns the frame's field text.
func (f Frame) String() string {
	if f == FrameNone {
		return "."
	}
	return strconv.Itoa(int(f))
}
