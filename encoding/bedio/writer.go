package bedio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"

	"github.com/zwlab/gobjects/feature"
)

// WriteIntervals writes four-column BED records.
func WriteIntervals(w io.Writer, recs []feature.Interval) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		writeInterval(bw, r)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteBed6 writes six-column BED records.
func WriteBed6(w io.Writer, recs []feature.Bed6) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		writeBed6(bw, r)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteBed12 writes twelve-column BED records.
func WriteBed12(w io.Writer, recs []feature.Bed12) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		writeBed6(bw, r.Bed6)
		bw.WriteByte('\t')
		writeInt(bw, r.ThickStart)
		bw.WriteByte('\t')
		writeInt(bw, r.ThickEnd)
		bw.WriteByte('\t')
		bw.WriteString(r.ItemRGB)
		bw.WriteByte('\t')
		writeInt(bw, r.BlockCount)
		bw.WriteByte('\t')
		bw.WriteString(r.BlockSizes)
		bw.WriteByte('\t')
		bw.WriteString(r.BlockStarts)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteGtf writes nine-column GTF records; the raw attribute text is
// emitted as read, not re-rendered from the parsed map.
func WriteGtf(w io.Writer, recs []feature.Gtf) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		bw.WriteString(r.Chrom)
		bw.WriteByte('\t')
		bw.WriteString(r.Source)
		bw.WriteByte('\t')
		bw.WriteString(r.Feature)
		bw.WriteByte('\t')
		writeInt(bw, r.Start)
		bw.WriteByte('\t')
		writeInt(bw, r.End)
		bw.WriteByte('\t')
		bw.WriteString(r.Score.String())
		bw.WriteByte('\t')
		bw.WriteString(r.Strand.String())
		bw.WriteByte('\t')
		bw.WriteString(r.Frame.String())
		bw.WriteByte('\t')
		bw.WriteString(r.Attributes)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteBedpe writes eleven-column BEDPE records, pair halves in input
// order.
func WriteBedpe(w io.Writer, recs []feature.Bedpe) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		a, b := r.A(), r.B()
		bw.WriteString(a.Chrom)
		bw.WriteByte('\t')
		writeInt(bw, a.Start)
		bw.WriteByte('\t')
		writeInt(bw, a.End)
		bw.WriteByte('\t')
		bw.WriteString(b.Chrom)
		bw.WriteByte('\t')
		writeInt(bw, b.Start)
		bw.WriteByte('\t')
		writeInt(bw, b.End)
		bw.WriteByte('\t')
		bw.WriteString(r.Name())
		bw.WriteByte('\t')
		bw.WriteString(r.Score().String())
		bw.WriteByte('\t')
		bw.WriteString(a.Strand.String())
		bw.WriteByte('\t')
		bw.WriteString(b.Strand.String())
		bw.WriteByte('\t')
		bw.WriteString(r.AttrText())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func writeInterval(bw *bufio.Writer, r feature.Interval) {
	bw.WriteString(r.Chrom)
	bw.WriteByte('\t')
	writeInt(bw, r.Start)
	bw.WriteByte('\t')
	writeInt(bw, r.End)
	bw.WriteByte('\t')
	bw.WriteString(r.Name)
}

func writeBed6(bw *bufio.Writer, r feature.Bed6) {
	writeInterval(bw, r.Interval)
	bw.WriteByte('\t')
	bw.WriteString(r.Score.String())
	bw.WriteByte('\t')
	bw.WriteString(r.Strand.String())
}

func writeInt(bw *bufio.Writer, v int) {
	bw.WriteString(strconv.Itoa(v))
}

// createPath opens path for writing through base/file.
func createPath(path string) (file.File, func(error) error, error) {
	ctx := vcontext.Background()
	out, err := file.Create(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	closer := func(werr error) error {
		if cerr := out.Close(ctx); cerr != nil && werr == nil {
			return cerr
		}
		return werr
	}
	return out, closer, nil
}

// WriteIntervalsToPath is WriteIntervals on a path.
func WriteIntervalsToPath(path string, recs []feature.Interval) error {
	out, closer, err := createPath(path)
	if err != nil {
		return err
	}
	err = closer(WriteIntervals(out.Writer(vcontext.Background()), recs))
	if err == nil {
		log.Printf("bedio: %d BED interval(s) written to %s", len(recs), path)
	}
	return err
}

// WriteBed6ToPath is WriteBed6 on a path.
func WriteBed6ToPath(path string, recs []feature.Bed6) error {
	out, closer, err := createPath(path)
	if err != nil {
		return err
	}
	err = closer(WriteBed6(out.Writer(vcontext.Background()), recs))
	if err == nil {
		log.Printf("bedio: %d BED6 record(s) written to %s", len(recs), path)
	}
	return err
}

// WriteBed12ToPath is WriteBed12 on a path.
func WriteBed12ToPath(path string, recs []feature.Bed12) error {
	out, closer, err := createPath(path)
	if err != nil {
		return err
	}
	err = closer(WriteBed12(out.Writer(vcontext.Background()), recs))
	if err == nil {
		log.Printf("bedio: %d BED12 record(s) written to %s", len(recs), path)
	}
	return err
}

// WriteGtfToPath is WriteGtf on a path.
func WriteGtfToPath(path string, recs []feature.Gtf) error {
	out, closer, err := createPath(path)
	if err != nil {
		return err
	}
	err = closer(WriteGtf(out.Writer(vcontext.Background()), recs))
	if err == nil {
		log.Printf("bedio: %d GTF record(s) written to %s", len(recs), path)
	}
	return err
}

// WriteBedpeToPath is WriteBedpe on a path.
func WriteBedpeToPath(path string, recs []feature.Bedpe) error {
	out, closer, err := createPath(path)
	if err != nil {
		return err
	}
	err = closer(WriteBedpe(out.Writer(vcontext.Background()), recs))
	if err == nil {
		log.Printf("bedio: %d BEDPE record(s) written to %s", len(recs), path)
	}
	return err
}
