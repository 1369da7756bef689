package feature

import (
	"fmt"
)

// Bedpe is a BEDPE record: two paired zero-based half-open spans, as
// produced by paired-end experiments or long-range interaction assays
// such as promoter-capture HiC.  It is not itself a contiguous span and
// does not satisfy Contiguous.
//
// Construct with NewBedpe; the zero value has no usable ordering.
type Bedpe struct {
	name       string
	score      Value
	attributes string
	attrs      AttrMap
	a, b       Bed6 // pair halves in input order
	first      Bed6 // min(a, b) by interval order
	second     Bed6 // max(a, b) by interval order
}

// NewBedpe builds a Bedpe from its eleven BEDPE fields.  The two pair
// halves share the record's name and score but carry their own strands.
// The ordered halves First and Second are fixed here, once, so sorting
// and equality never re-derive them.  Fails with an error wrapping
// ErrParse when the attribute text is malformed.
func NewBedpe(chrom1 string, start1, end1 int, chrom2 string, start2, end2 int,
	name string, score Value, strand1, strand2 Strand, attributes string) (Bedpe, error) {
	attrs, err := ParseAttrs(attributes)
	if err != nil {
		return Bedpe{}, err
	}
	v := Bedpe{
		name:       name,
		score:      score,
		attributes: attributes,
		attrs:      attrs,
		a: Bed6{
			Interval: Interval{Chrom: chrom1, Start: start1, End: end1, Name: name},
			Score:    score,
			Strand:   strand1,
		},
		b: Bed6{
			Interval: Interval{Chrom: chrom2, Start: start2, End: end2, Name: name},
			Score:    score,
			Strand:   strand2,
		},
	}
	v.first, v.second = v.a, v.b
	if Compare(v.b, v.a) < 0 {
		v.first, v.second = v.b, v.a
	}
	return v, nil
}

func (v Bedpe) record() {}

// A returns the first pair half in input order.
func (v Bedpe) A() Bed6 { return v.a }

// B returns the second pair half in input order.
func (v Bedpe) B() Bed6 { return v.b }

// First returns the pair half that sorts earlier by interval order.
func (v Bedpe) First() Bed6 { return v.first }

// Second returns the pair half that sorts later by interval order.
func (v Bedpe) Second() Bed6 { return v.second }

// Name returns the feature name shared by both halves.
func (v Bedpe) Name() string { return v.name }

// Score returns the score shared by both halves.
func (v Bedpe) Score() Value { return v.score }

// AttrText returns the raw attribute text.
func (v Bedpe) AttrText() string { return v.attributes }

// Attrs returns the parsed attribute map.
func (v Bedpe) Attrs() AttrMap { return v.attrs }

// Equal is orientation-insensitive pair equality: two records are equal
// when their halves match coordinate-wise in either pairing.
func (v Bedpe) Equal(other Bedpe) bool {
	return (Equal(v.a, other.a) && Equal(v.b, other.b)) ||
		(Equal(v.a, other.b) && Equal(v.b, other.a))
}

// Compare orders by the earlier pair half, then the later one.  It is
// defined only between Bedpe values.
func (v Bedpe) Compare(other Bedpe) int {
	if c := Compare(v.first, other.first); c != 0 {
		return c
	}
	return Compare(v.second, other.second)
}

func (v Bedpe) String() string {
	return fmt.Sprintf("Bedpe(%s %s %s)", v.a, v.b, v.attributes)
}
