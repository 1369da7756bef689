package feature

import (
	"fmt"
)

// Bed6 is a BED6 record: an Interval plus a score and a strand, per the
// UCSC BED standard.  Score and strand do not participate in ordering
// or equality.
type Bed6 struct {
	Interval
	Score  Value
	Strand Strand
}

// Orientation returns the record's strand.
func (v Bed6) Orientation() Strand { return v.Strand }

func (v Bed6) String() string {
	return fmt.Sprintf("Bed6(%s %d %d %s %s %s)",
		v.Chrom, v.Start, v.End, v.Name, v.Score, v.Strand)
}

// Bed12 is a BED12 record: a Bed6 plus the thick-render and block
// fields.  BlockSizes and BlockStarts stay raw comma-separated text;
// nothing in the ordering or intersection algebra reads them.
type Bed12 struct {
	Bed6
	ThickStart  int
	ThickEnd    int
	ItemRGB     string // "R,G,B"
	BlockCount  int
	BlockSizes  string // comma-separated lengths
	BlockStarts string // comma-separated offsets, relative to Start
}

func (v Bed12) String() string {
	return fmt.Sprintf("Bed12(%s %d %d %s %s %s %d %d %s %d %s %s)",
		v.Chrom, v.Start, v.End, v.Name, v.Score, v.Strand,
		v.ThickStart, v.ThickEnd, v.ItemRGB,
		v.BlockCount, v.BlockSizes, v.BlockStarts)
}
