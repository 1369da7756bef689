package bedio

import (
	"strings"
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zwlab/gobjects/feature"
)

func TestSplitTabs(t *testing.T) {
	tests := []struct {
		line string
		max  int
		want []string
	}{
		{"a\tb\tc", 3, []string{"a", "b", "c"}},
		{"a\tb\tc", 4, []string{"a", "b", "c"}},
		{"a\tb\tc\td", 3, []string{"a", "b", "c"}},
		{"a\t\tc", 3, []string{"a", "", "c"}},
		{"single", 2, []string{"single"}},
		{"", 2, nil},
		{"with space\tfield", 2, []string{"with space", "field"}},
	}
	for _, tt := range tests {
		tokens := make([][]byte, tt.max)
		n := splitTabs(tokens, []byte(tt.line))
		expect.EQ(t, n, len(tt.want), "line %q", tt.line)
		for i := 0; i < n; i++ {
			expect.EQ(t, string(tokens[i]), tt.want[i], "line %q token %d", tt.line, i)
		}
	}
}

func TestReadIntervals(t *testing.T) {
	in := "# a comment\n" +
		"track name=test\n" +
		"chr1\t0\t1000\tf1\n" +
		"\n" +
		"chr2\t500\t600\tf2\n"
	recs, err := ReadIntervals(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, feature.Interval{Chrom: "chr1", Start: 0, End: 1000, Name: "f1"}, recs[0])
	assert.Equal(t, feature.Interval{Chrom: "chr2", Start: 500, End: 600, Name: "f2"}, recs[1])
}

func TestReadIntervalsBadInput(t *testing.T) {
	_, err := ReadIntervals(strings.NewReader("chr1\t0\t1000\n"))
	require.Error(t, err)
	_, err = ReadIntervals(strings.NewReader("chr1\tzero\t1000\tf1\n"))
	require.Error(t, err)
}

func TestReadBed6(t *testing.T) {
	in := "chr1\t100\t200\tf1\t960\t+\n" +
		"chr1\t300\t400\tf2\t.\t-\n"
	recs, err := ReadBed6(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "f1", recs[0].Name)
	assert.True(t, recs[0].Score.Numeric)
	assert.Equal(t, 960.0, recs[0].Score.Num)
	assert.Equal(t, feature.Plus, recs[0].Strand)
	assert.False(t, recs[1].Score.Numeric)
	assert.Equal(t, feature.Minus, recs[1].Strand)
}

func TestReadBed12(t *testing.T) {
	in := "chr7\t1000\t5000\ttx1\t0\t-\t1200\t4800\t255,0,0\t2\t100,200\t0,3800\n"
	recs, err := ReadBed12(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	r := recs[0]
	assert.Equal(t, 1200, r.ThickStart)
	assert.Equal(t, 4800, r.ThickEnd)
	assert.Equal(t, "255,0,0", r.ItemRGB)
	assert.Equal(t, 2, r.BlockCount)
	assert.Equal(t, "100,200", r.BlockSizes)
	assert.Equal(t, "0,3800", r.BlockStarts)
}

func TestReadGtf(t *testing.T) {
	in := "chr1\tHAVANA\texon\t1\t10\t.\t+\t0\tgene_id \"X\"; tag \"a\"; tag \"b\";\n"
	recs, err := ReadGtf(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	r := recs[0]
	assert.Equal(t, "HAVANA", r.Source)
	assert.Equal(t, "exon", r.Feature)
	assert.Equal(t, 1, r.Start)
	assert.Equal(t, 10, r.End)
	assert.Equal(t, feature.Frame(0), r.Frame)
	require.Len(t, r.Attrs["tag"], 2)
	assert.Equal(t, "a", r.Attrs["tag"][0].Raw)
	assert.Equal(t, "b", r.Attrs["tag"][1].Raw)
}

func TestReadGtfMalformedAttrs(t *testing.T) {
	in := "chr1\tHAVANA\texon\t1\t10\t.\t+\t0\tgene_id\n"
	_, err := ReadGtf(strings.NewReader(in))
	require.Error(t, err)
	assert.Equal(t, feature.ErrParse, errors.Cause(err))
}

func TestReadBedpe(t *testing.T) {
	in := "chr1\t100\t200\tchr2\t500\t600\tpair1\t100\t+\t-\tinteraction_id \"I1\";\n" +
		"chr3\t0\t10\tchr3\t50\t60\tpair2\t.\t.\t.\n" // attributes column omitted
	recs, err := ReadBedpe(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "chr1", recs[0].A().Chrom)
	assert.Equal(t, "chr2", recs[0].B().Chrom)
	assert.Equal(t, "I1", recs[0].Attrs()["interaction_id"][0].Raw)
	assert.Empty(t, recs[1].Attrs())
	assert.Equal(t, "pair2", recs[1].Name())
}

func TestReadIntervalsFromPath(t *testing.T) {
	want := []feature.Interval{
		{Chrom: "chr1", Start: 2488104, End: 2488172, Name: "ex1"},
		{Chrom: "chr1", Start: 2489165, End: 2489273, Name: "ex2"},
		{Chrom: "chr2", Start: 100, End: 200, Name: "ex3"},
	}
	recs, err := ReadIntervalsFromPath("testdata/test1.bed")
	require.NoError(t, err)
	assert.Equal(t, want, recs)

	// Gzip input is sniffed from the path and decompressed.
	recs, err = ReadIntervalsFromPath("testdata/test1.bed.gz")
	require.NoError(t, err)
	assert.Equal(t, want, recs)
}

func TestReadGtfFromPath(t *testing.T) {
	recs, err := ReadGtfFromPath("testdata/test1.gtf")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "ENSG1", recs[0].Attrs["gene_id"][0].Raw)
	require.Len(t, recs[1].Attrs["tag"], 2)
}
