package feature_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zwlab/gobjects/feature"
)

func mustBedpe(t *testing.T, chrom1 string, start1, end1 int, chrom2 string, start2, end2 int) feature.Bedpe {
	t.Helper()
	v, err := feature.NewBedpe(chrom1, start1, end1, chrom2, start2, end2,
		"pair1", feature.NewValue("100"), feature.Plus, feature.Minus, "")
	require.NoError(t, err)
	return v
}

func TestBedpeHalves(t *testing.T) {
	v := mustBedpe(t, "chr2", 500, 600, "chr1", 100, 200)
	assert.Equal(t, "chr2", v.A().Chrom)
	assert.Equal(t, "chr1", v.B().Chrom)
	// Halves share name and score but keep their own strand.
	assert.Equal(t, "pair1", v.A().Name)
	assert.Equal(t, "pair1", v.B().Name)
	assert.Equal(t, feature.Plus, v.A().Strand)
	assert.Equal(t, feature.Minus, v.B().Strand)
	// First/Second are fixed at construction by interval order.
	assert.Equal(t, "chr1", v.First().Chrom)
	assert.Equal(t, "chr2", v.Second().Chrom)
}

func TestBedpeEqualOrientationInsensitive(t *testing.T) {
	ab := mustBedpe(t, "chr1", 100, 200, "chr2", 500, 600)
	ba := mustBedpe(t, "chr2", 500, 600, "chr1", 100, 200)
	assert.True(t, ab.Equal(ba))
	assert.True(t, ba.Equal(ab))
	assert.True(t, ab.Equal(ab))

	other := mustBedpe(t, "chr1", 100, 200, "chr2", 500, 601)
	assert.False(t, ab.Equal(other))
}

func TestBedpeCompare(t *testing.T) {
	a := mustBedpe(t, "chr1", 100, 200, "chr2", 500, 600)
	b := mustBedpe(t, "chr2", 500, 600, "chr1", 100, 200)
	c := mustBedpe(t, "chr1", 100, 200, "chr2", 500, 700)
	d := mustBedpe(t, "chr1", 150, 200, "chr2", 500, 600)

	// a and b are the same pair written in opposite orientations.
	assert.Equal(t, 0, a.Compare(b))
	// Ties on the first half break on the second half.
	assert.Equal(t, -1, a.Compare(c))
	assert.Equal(t, 1, c.Compare(a))
	assert.Equal(t, -1, a.Compare(d))
}

func TestBedpeAttrs(t *testing.T) {
	v, err := feature.NewBedpe("chr1", 100, 200, "chr2", 500, 600,
		"pair1", feature.NewValue("."), feature.Plus, feature.Plus,
		`interaction_id "I1"; cell_type "GM12878";`)
	require.NoError(t, err)
	require.Len(t, v.Attrs(), 2)
	assert.Equal(t, "I1", v.Attrs()["interaction_id"][0].Raw)
	assert.Equal(t, `interaction_id "I1"; cell_type "GM12878";`, v.AttrText())

	_, err = feature.NewBedpe("chr1", 100, 200, "chr2", 500, 600,
		"pair1", feature.NewValue("."), feature.Plus, feature.Plus, `broken`)
	require.Error(t, err)
	assert.Equal(t, feature.ErrParse, errors.Cause(err))
}
