// Package intervalmap provides a binned per-chromosome index over
// contiguous genomic records for repeated overlap queries.
//
// Each chromosome's sorted records are sliced into a fixed number of
// consecutive bins, each carrying precomputed closed bounds over its
// contents.  A query first discards bins whose bounds cannot overlap it
// (a coarse prune with no false negatives, since bounds are maxima),
// then scans the surviving bins in order, stopping early once a
// record's start has advanced past the query.  This is deliberately a
// predictable binned scan, not a general interval tree.
package intervalmap

import (
	"sort"

	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
	"github.com/zwlab/gobjects/feature"
	"github.com/zwlab/gobjects/intersect"
)

// DefaultBinCount is the number of bins a chromosome's records are
// divided into when BuildOpts.BinCount is zero.
const DefaultBinCount = 20

// Node is one bin: a consecutive run of a chromosome's sorted records
// together with the closed bounds [BoundStart, BoundEnd] they cover.
type Node struct {
	chrom      string
	recs       []feature.Contiguous
	boundStart int
	boundEnd   int
}

// Chrom returns the chromosome all of the bin's records lie on.
func (n *Node) Chrom() string { return n.chrom }

// Records returns the bin's records in sorted order.  The slice is
// owned by the index and must not be modified.
func (n *Node) Records() []feature.Contiguous { return n.recs }

// BoundStart returns the smallest inclusive start in the bin.
func (n *Node) BoundStart() int { return n.boundStart }

// BoundEnd returns the largest inclusive end in the bin.
func (n *Node) BoundEnd() int { return n.boundEnd }

// setBounds recomputes the cached bounds; it must be called whenever
// the bin's contents change.  Records are sorted by start, so the first
// record carries the smallest start, but the largest end can sit
// anywhere in the bin.
func (n *Node) setBounds() {
	n.boundStart = n.recs[0].InclusiveStart()
	n.boundEnd = n.recs[0].InclusiveEnd()
	for _, r := range n.recs[1:] {
		if e := r.InclusiveEnd(); e > n.boundEnd {
			n.boundEnd = e
		}
	}
}

// overlaps reports whether the bin's bounds overlap the query, treating
// [boundStart, boundEnd] as a closed interval.
func (n *Node) overlaps(q feature.Contiguous) bool {
	return !(n.boundEnd < q.InclusiveStart() || n.boundStart > q.InclusiveEnd())
}

// BuildOpts configures Build.
type BuildOpts struct {
	// AlreadySorted skips the initial sort when the caller guarantees
	// the records are ordered by feature.Compare.
	AlreadySorted bool
	// BinCount is the target number of bins per chromosome;
	// DefaultBinCount when zero.  A chromosome with fewer records than
	// bins gets one record per bin instead of empty bins.
	BinCount int
}

// Map is the built index: bin lists keyed by chromosome label, with
// label order preserved from the sorted input.  A Map is immutable
// after Build and safe for concurrent readers; to change its contents,
// rebuild from scratch.
type Map struct {
	chroms []string
	bins   map[string][]*Node
}

// Build constructs a Map from a collection of contiguous records.  The
// caller's slice is never reordered: records are copied before sorting
// (stable, by feature.Compare) unless opts.AlreadySorted.  An empty
// collection yields an empty map.
func Build(records []feature.Contiguous, opts BuildOpts) *Map {
	binCount := opts.BinCount
	if binCount <= 0 {
		binCount = DefaultBinCount
	}
	log.Printf("intervalmap: building index for %d record(s)", len(records))
	sorted := records
	if !opts.AlreadySorted {
		sorted = make([]feature.Contiguous, len(records))
		copy(sorted, records)
		sort.SliceStable(sorted, func(i, j int) bool {
			return feature.Compare(sorted[i], sorted[j]) < 0
		})
	}
	m := &Map{bins: make(map[string][]*Node)}
	byChrom := make(map[string][]feature.Contiguous)
	for _, r := range sorted {
		chrom := r.ChromName()
		if _, ok := byChrom[chrom]; !ok {
			m.chroms = append(m.chroms, chrom)
		}
		byChrom[chrom] = append(byChrom[chrom], r)
	}
	for _, chrom := range m.chroms {
		m.bins[chrom] = binChrom(chrom, byChrom[chrom], binCount)
	}
	return m
}

// binChrom slices one chromosome's sorted, non-empty record list into
// binCount consecutive size-floor(n/binCount) bins; the remainder is
// appended to the last bin, whose bounds are then recomputed.
func binChrom(chrom string, recs []feature.Contiguous, binCount int) []*Node {
	perBin := len(recs) / binCount
	if perBin < 1 {
		binCount = len(recs)
		perBin = 1
	}
	nodes := make([]*Node, 0, binCount)
	for i := 0; i < binCount; i++ {
		n := &Node{chrom: chrom, recs: recs[i*perBin : (i+1)*perBin]}
		n.setBounds()
		nodes = append(nodes, n)
	}
	if len(recs) > binCount*perBin {
		last := nodes[binCount-1]
		last.recs = recs[(binCount-1)*perBin:]
		last.setBounds()
	}
	return nodes
}

// Chroms returns the map's chromosome labels in order.
func (m *Map) Chroms() []string { return m.chroms }

// Bins returns the bins for one chromosome, or nil when the chromosome
// is absent.
func (m *Map) Bins(chrom string) []*Node { return m.bins[chrom] }

// Query returns every record in the map on the query's chromosome that
// overlaps the query, in index order (bin order, then within-bin
// order).  A chromosome absent from the map yields an empty result, not
// an error.  A non-contiguous query fails with feature.ErrTypeMismatch.
func (m *Map) Query(q feature.Record) ([]feature.Contiguous, error) {
	cq, ok := q.(feature.Contiguous)
	if !ok {
		return nil, errors.WithMessagef(feature.ErrTypeMismatch,
			"intervalmap: non-contiguous query %T", q)
	}
	var hits []feature.Contiguous
	for _, node := range m.bins[cq.ChromName()] {
		if !node.overlaps(cq) {
			continue
		}
		for _, r := range node.recs {
			if intersect.Overlaps(cq, r) {
				hits = append(hits, r)
				continue
			}
			// Records are sorted by start, so once a non-overlapping
			// record orders past the query its start lies beyond the
			// query's end, and no later record in the bin can overlap.
			if feature.Compare(r, cq) > 0 {
				break
			}
		}
	}
	return hits, nil
}
