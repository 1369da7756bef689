package feature

import (
	"fmt"
)

// Interval is the base BED-style record: a zero-based half-open span
// [Start, End) on one chromosome.  End is expected to be greater than
// Start; this is not validated, and ordering and intersection math
// assume well-formed coordinates.
type Interval struct {
	Chrom string
	Start int // zero-based, inclusive
	End   int // zero-based, exclusive
	Name  string
}

func (v Interval) record() {}

// ChromName returns the chromosome label.
func (v Interval) ChromName() string { return v.Chrom }

// InclusiveStart returns the zero-based closed lower bound, which for
// the BED convention is Start itself.
func (v Interval) InclusiveStart() int { return v.Start }

// InclusiveEnd returns the zero-based closed upper bound, End - 1.
func (v Interval) InclusiveEnd() int { return v.End - 1 }

// Compare orders by chromosome natural-sort key, then Start, then End.
func (v Interval) Compare(other Interval) int { return Compare(v, other) }

// Equal reports coordinate equality; Name is ignored.
func (v Interval) Equal(other Interval) bool { return Equal(v, other) }

func (v Interval) String() string {
	return fmt.Sprintf("Interval(%s %d %d %s)", v.Chrom, v.Start, v.End, v.Name)
}
