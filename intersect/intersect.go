// Package intersect implements pairwise overlap predicates over genomic
// records, in the spirit of bedtools intersect.
package intersect

import (
	"github.com/pkg/errors"
	"github.com/zwlab/gobjects/feature"
)

// Overlaps reports whether two contiguous records share at least one
// base.  Both operands are reduced to zero-based closed bounds, so BED
// half-open and GTF one-based inclusive records compare uniformly.
// Chromosome labels are matched verbatim, the same way the interval
// index buckets records, so "chr1" and "CHR1" never overlap even
// though they sort together.
func Overlaps(a, b feature.Contiguous) bool {
	if a.ChromName() != b.ChromName() {
		return false
	}
	return !(a.InclusiveEnd() < b.InclusiveStart() ||
		a.InclusiveStart() > b.InclusiveEnd())
}

// Intersects is the polymorphic overlap predicate.  Both operands must
// be contiguous record kinds; Bedpe has no defined overlap semantics
// and fails with feature.ErrTypeMismatch.  With strandAware set, both
// operands must carry strand information (feature.ErrMissingStrand
// otherwise), and records on differing strands never intersect, with
// no coordinate comparison performed.
func Intersects(a, b feature.Record, strandAware bool) (bool, error) {
	ca, ok := a.(feature.Contiguous)
	if !ok {
		return false, errors.WithMessagef(feature.ErrTypeMismatch,
			"intersect: non-contiguous operand %T", a)
	}
	cb, ok := b.(feature.Contiguous)
	if !ok {
		return false, errors.WithMessagef(feature.ErrTypeMismatch,
			"intersect: non-contiguous operand %T", b)
	}
	if strandAware {
		sa, ok := a.(feature.Stranded)
		if !ok {
			return false, errors.WithMessagef(feature.ErrMissingStrand,
				"intersect: strand-aware comparison on %T", a)
		}
		sb, ok := b.(feature.Stranded)
		if !ok {
			return false, errors.WithMessagef(feature.ErrMissingStrand,
				"intersect: strand-aware comparison on %T", b)
		}
		if sa.Orientation() != sb.Orientation() {
			return false, nil
		}
	}
	return Overlaps(ca, cb), nil
}
