package feature

import (
	"fmt"
)

// Gtf is a GTF (GFF2) record.  Coordinates are one-based and inclusive,
// unlike the BED family; InclusiveStart and InclusiveEnd convert to the
// shared zero-based closed form, so mixed BED/GTF collections order and
// intersect correctly.
type Gtf struct {
	Chrom      string
	Source     string // generating program, e.g. HAVANA
	Feature    string // feature type, e.g. exon, transcript, CDS
	Start      int    // one-based, inclusive
	End        int    // one-based, inclusive
	Score      Value
	Strand     Strand
	Frame      Frame
	Attributes string  // raw attribute text, as read
	Attrs      AttrMap // parsed form of Attributes
}

// NewGtf builds a Gtf and parses the attribute string into Attrs.  It
// fails with an error wrapping ErrParse when the attribute text is
// malformed; no record is returned in that case.
func NewGtf(chrom, source, featureType string, start, end int, score Value,
	strand Strand, frame Frame, attributes string) (Gtf, error) {
	attrs, err := ParseAttrs(attributes)
	if err != nil {
		return Gtf{}, err
	}
	return Gtf{
		Chrom:      chrom,
		Source:     source,
		Feature:    featureType,
		Start:      start,
		End:        end,
		Score:      score,
		Strand:     strand,
		Frame:      frame,
		Attributes: attributes,
		Attrs:      attrs,
	}, nil
}

func (v Gtf) record() {}

// ChromName returns the chromosome label.
func (v Gtf) ChromName() string { return v.Chrom }

// InclusiveStart returns the zero-based closed lower bound, Start - 1.
func (v Gtf) InclusiveStart() int { return v.Start - 1 }

// InclusiveEnd returns the zero-based closed upper bound, End - 1.
func (v Gtf) InclusiveEnd() int { return v.End - 1 }

// Orientation returns the record's strand.
func (v Gtf) Orientation() Strand { return v.Strand }

// Compare orders by chromosome natural-sort key, then Start, then End.
func (v Gtf) Compare(other Gtf) int { return Compare(v, other) }

// Equal reports coordinate equality; all other fields are ignored.
func (v Gtf) Equal(other Gtf) bool { return Equal(v, other) }

func (v Gtf) String() string {
	return fmt.Sprintf("Gtf(%s %s %s %d %d %s %s %s %s)",
		v.Chrom, v.Source, v.Feature, v.Start, v.End,
		v.Score, v.Strand, v.Frame, v.Attributes)
}
