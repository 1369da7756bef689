package bedio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/grailbio/base/vcontext"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	"github.com/zwlab/gobjects/feature"
)

// splitTabs identifies up to the first len(tokens) tab-separated fields
// of curLine, returning the number of fields saved.  Unlike a
// whitespace tokenizer, tabs are the only delimiter: GTF and BEDPE
// attribute fields legitimately contain spaces.
//
// These simple loops beat the standard library string-split functions
// when a small fixed number of fields is expected; see the tokenizer
// notes in grailbio/bio's interval package.
func splitTabs(tokens [][]byte, curLine []byte) int {
	pos := 0
	lineLen := len(curLine)
	for tokenIdx := range tokens {
		if pos > lineLen {
			return tokenIdx
		}
		posEnd := pos
		for ; posEnd != lineLen; posEnd++ {
			if curLine[posEnd] == '\t' {
				break
			}
		}
		if pos == posEnd && posEnd == lineLen {
			return tokenIdx
		}
		tokens[tokenIdx] = curLine[pos:posEnd]
		pos = posEnd + 1
	}
	return len(tokens)
}

// skipLine reports whether curLine is blank or a header line (comment,
// track or browser) rather than a record.
func skipLine(curLine []byte) bool {
	if len(curLine) == 0 || curLine[0] == '#' {
		return true
	}
	return bytes.HasPrefix(curLine, []byte("track")) ||
		bytes.HasPrefix(curLine, []byte("browser"))
}

func parseCoord(token []byte, what string, lineIdx int) (int, error) {
	v, err := strconv.Atoi(gunsafe.BytesToString(token))
	if err != nil {
		return 0, fmt.Errorf("bedio: invalid %s %q on line %d", what, token, lineIdx)
	}
	return v, nil
}

// parseInterval builds the four-field core shared by the BED family.
// Token contents are copied: they alias the scanner's buffer, which the
// next Scan call overwrites.
func parseInterval(chrom, start, end, name []byte, lineIdx int) (feature.Interval, error) {
	s, err := parseCoord(start, "start", lineIdx)
	if err != nil {
		return feature.Interval{}, err
	}
	e, err := parseCoord(end, "end", lineIdx)
	if err != nil {
		return feature.Interval{}, err
	}
	return feature.Interval{
		Chrom: string(chrom),
		Start: s,
		End:   e,
		Name:  string(name),
	}, nil
}

// ReadIntervals reads four-column BED records.
func ReadIntervals(r io.Reader) ([]feature.Interval, error) {
	scanner := bufio.NewScanner(r)
	var recs []feature.Interval
	var tokens [4][]byte
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		curLine := scanner.Bytes()
		if skipLine(curLine) {
			continue
		}
		if n := splitTabs(tokens[:], curLine); n != 4 {
			return nil, fmt.Errorf("bedio.ReadIntervals: line %d has %d field(s), want 4", lineIdx, n)
		}
		iv, err := parseInterval(tokens[0], tokens[1], tokens[2], tokens[3], lineIdx)
		if err != nil {
			return nil, err
		}
		recs = append(recs, iv)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Printf("bedio: %d BED interval(s) loaded", len(recs))
	return recs, nil
}

// ReadBed6 reads six-column BED records.
func ReadBed6(r io.Reader) ([]feature.Bed6, error) {
	scanner := bufio.NewScanner(r)
	var recs []feature.Bed6
	var tokens [6][]byte
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		curLine := scanner.Bytes()
		if skipLine(curLine) {
			continue
		}
		if n := splitTabs(tokens[:], curLine); n != 6 {
			return nil, fmt.Errorf("bedio.ReadBed6: line %d has %d field(s), want 6", lineIdx, n)
		}
		iv, err := parseInterval(tokens[0], tokens[1], tokens[2], tokens[3], lineIdx)
		if err != nil {
			return nil, err
		}
		recs = append(recs, feature.Bed6{
			Interval: iv,
			Score:    feature.NewValue(string(tokens[4])),
			Strand:   feature.ParseStrand(gunsafe.BytesToString(tokens[5])),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Printf("bedio: %d BED6 record(s) loaded", len(recs))
	return recs, nil
}

// ReadBed12 reads twelve-column BED records.  Block sizes and starts
// are kept as raw comma-separated text.
func ReadBed12(r io.Reader) ([]feature.Bed12, error) {
	scanner := bufio.NewScanner(r)
	var recs []feature.Bed12
	var tokens [12][]byte
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		curLine := scanner.Bytes()
		if skipLine(curLine) {
			continue
		}
		if n := splitTabs(tokens[:], curLine); n != 12 {
			return nil, fmt.Errorf("bedio.ReadBed12: line %d has %d field(s), want 12", lineIdx, n)
		}
		iv, err := parseInterval(tokens[0], tokens[1], tokens[2], tokens[3], lineIdx)
		if err != nil {
			return nil, err
		}
		thickStart, err := parseCoord(tokens[6], "thickStart", lineIdx)
		if err != nil {
			return nil, err
		}
		thickEnd, err := parseCoord(tokens[7], "thickEnd", lineIdx)
		if err != nil {
			return nil, err
		}
		blockCount, err := parseCoord(tokens[9], "blockCount", lineIdx)
		if err != nil {
			return nil, err
		}
		recs = append(recs, feature.Bed12{
			Bed6: feature.Bed6{
				Interval: iv,
				Score:    feature.NewValue(string(tokens[4])),
				Strand:   feature.ParseStrand(gunsafe.BytesToString(tokens[5])),
			},
			ThickStart:  thickStart,
			ThickEnd:    thickEnd,
			ItemRGB:     string(tokens[8]),
			BlockCount:  blockCount,
			BlockSizes:  string(tokens[10]),
			BlockStarts: string(tokens[11]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Printf("bedio: %d BED12 record(s) loaded", len(recs))
	return recs, nil
}

// ReadGtf reads nine-column GTF records.  Attribute text is parsed into
// each record's Attrs map; malformed attributes fail the whole read
// with an error wrapping feature.ErrParse.
func ReadGtf(r io.Reader) ([]feature.Gtf, error) {
	scanner := bufio.NewScanner(r)
	var recs []feature.Gtf
	var tokens [9][]byte
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		curLine := scanner.Bytes()
		if skipLine(curLine) {
			continue
		}
		if n := splitTabs(tokens[:], curLine); n != 9 {
			return nil, fmt.Errorf("bedio.ReadGtf: line %d has %d field(s), want 9", lineIdx, n)
		}
		start, err := parseCoord(tokens[3], "start", lineIdx)
		if err != nil {
			return nil, err
		}
		end, err := parseCoord(tokens[4], "end", lineIdx)
		if err != nil {
			return nil, err
		}
		rec, err := feature.NewGtf(
			string(tokens[0]),
			string(tokens[1]),
			string(tokens[2]),
			start,
			end,
			feature.NewValue(string(tokens[5])),
			feature.ParseStrand(gunsafe.BytesToString(tokens[6])),
			feature.ParseFrame(gunsafe.BytesToString(tokens[7])),
			string(tokens[8]),
		)
		if err != nil {
			return nil, errors.WithMessagef(err, "bedio.ReadGtf: line %d", lineIdx)
		}
		recs = append(recs, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Printf("bedio: %d GTF record(s) loaded", len(recs))
	return recs, nil
}

// ReadBedpe reads BEDPE records.  The eleventh (attributes) column is
// optional; ten-column input gets an empty attribute map.
func ReadBedpe(r io.Reader) ([]feature.Bedpe, error) {
	scanner := bufio.NewScanner(r)
	var recs []feature.Bedpe
	var tokens [11][]byte
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		curLine := scanner.Bytes()
		if skipLine(curLine) {
			continue
		}
		n := splitTabs(tokens[:], curLine)
		if n != 10 && n != 11 {
			return nil, fmt.Errorf("bedio.ReadBedpe: line %d has %d field(s), want 10 or 11", lineIdx, n)
		}
		start1, err := parseCoord(tokens[1], "start1", lineIdx)
		if err != nil {
			return nil, err
		}
		end1, err := parseCoord(tokens[2], "end1", lineIdx)
		if err != nil {
			return nil, err
		}
		start2, err := parseCoord(tokens[4], "start2", lineIdx)
		if err != nil {
			return nil, err
		}
		end2, err := parseCoord(tokens[5], "end2", lineIdx)
		if err != nil {
			return nil, err
		}
		attributes := ""
		if n == 11 {
			attributes = string(tokens[10])
		}
		rec, err := feature.NewBedpe(
			string(tokens[0]), start1, end1,
			string(tokens[3]), start2, end2,
			string(tokens[6]),
			feature.NewValue(string(tokens[7])),
			feature.ParseStrand(gunsafe.BytesToString(tokens[8])),
			feature.ParseStrand(gunsafe.BytesToString(tokens[9])),
			attributes,
		)
		if err != nil {
			return nil, errors.WithMessagef(err, "bedio.ReadBedpe: line %d", lineIdx)
		}
		recs = append(recs, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Printf("bedio: %d BEDPE record(s) loaded", len(recs))
	return recs, nil
}

// openPath opens path for reading through base/file, transparently
// decompressing gzip input.  The returned closer must be called once
// reading finishes.
func openPath(path string) (io.Reader, func() error, error) {
	ctx := vcontext.Background()
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	closer := func() error { return in.Close(ctx) }
	reader := io.Reader(in.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		if reader, err = gzip.NewReader(reader); err != nil {
			_ = closer()
			return nil, nil, err
		}
	}
	return reader, closer, nil
}

// ReadIntervalsFromPath is ReadIntervals on a path.
func ReadIntervalsFromPath(path string) (recs []feature.Interval, err error) {
	reader, closer, err := openPath(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := closer(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	recs, err = ReadIntervals(reader)
	return
}

// ReadBed6FromPath is ReadBed6 on a path.
func ReadBed6FromPath(path string) (recs []feature.Bed6, err error) {
	reader, closer, err := openPath(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := closer(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	recs, err = ReadBed6(reader)
	return
}

// ReadBed12FromPath is ReadBed12 on a path.
func ReadBed12FromPath(path string) (recs []feature.Bed12, err error) {
	reader, closer, err := openPath(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := closer(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	recs, err = ReadBed12(reader)
	return
}

// ReadGtfFromPath is ReadGtf on a path.
func ReadGtfFromPath(path string) (recs []feature.Gtf, err error) {
	reader, closer, err := openPath(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := closer(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	recs, err = ReadGtf(reader)
	return
}

// ReadBedpeFromPath is ReadBedpe on a path.
func ReadBedpeFromPath(path string) (recs []feature.Bedpe, err error) {
	reader, closer, err := openPath(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := closer(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	recs, err = ReadBedpe(reader)
	return
}
