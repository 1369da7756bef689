package feature

// Record is implemented by every record kind in this package and by
// nothing else; the unexported method keeps the set closed, so
// operations over records dispatch on a known universe of kinds.
type Record interface {
	record()
}

// Contiguous is a single-span record (Interval, Bed6, Bed12, Gtf).
// InclusiveStart and InclusiveEnd are zero-based closed bounds, which
// puts half-open BED coordinates and one-based inclusive GTF
// coordinates on the same footing for ordering and overlap math.
// Bedpe does not satisfy Contiguous.
type Contiguous interface {
	Record
	ChromName() string
	InclusiveStart() int
	InclusiveEnd() int
}

// Stranded is implemented by record kinds that carry strand
// information (Bed6, Bed12, Gtf).
type Stranded interface {
	Orientation() Strand
}

// Compare orders two contiguous records by chromosome natural-sort key,
// then inclusive start, then inclusive end, returning -1, 0 or 1.  It
// is a strict weak ordering consistent with Equal, and is well defined
// across record kinds of different coordinate conventions.
func Compare(a, b Contiguous) int {
	if c := CompareChroms(a.ChromName(), b.ChromName()); c != 0 {
		return c
	}
	if c := compareInt(a.InclusiveStart(), b.InclusiveStart()); c != 0 {
		return c
	}
	return compareInt(a.InclusiveEnd(), b.InclusiveEnd())
}

// Equal reports whether two contiguous records cover the same span on
// the same chromosome.  Names, scores and strands are ignored, and
// chromosome labels are matched by natural-sort key so that equality
// stays consistent with Compare.
func Equal(a, b Contiguous) bool {
	return Compare(a, b) == 0
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
