package bedio

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/zwlab/gobjects/feature"
)

// regionMax bounds the open end of an unrestricted region.  Positions
// beyond 2^31 - 2 don't occur in practice (BAM files can't represent
// them either).
const regionMax = math.MaxInt32 - 1

// ParseRegion parses a region string of one of the forms
//   [contig ID]:[1-based first pos]-[last pos]
//   [contig ID]:[1-based pos]
//   [contig ID]
// returning a zero-based half-open feature.Interval named after the
// region string.  The interval [0, regionMax) is returned when there is
// no positional restriction.
func ParseRegion(region string) (result feature.Interval, err error) {
	if len(region) == 0 {
		err = fmt.Errorf("bedio.ParseRegion: empty region string")
		return
	}
	result.Name = region
	colonPos := strings.IndexByte(region, ':')
	if colonPos == -1 {
		result.Chrom = region
		result.Start = 0
		result.End = regionMax
		return
	}
	if colonPos == 0 {
		err = fmt.Errorf("bedio.ParseRegion: empty contig ID")
		return
	}
	result.Chrom = region[0:colonPos]
	rangeStr := region[colonPos+1:]
	dashPos := strings.IndexByte(rangeStr, '-')
	if dashPos == -1 {
		var pos1 int
		if pos1, err = strconv.Atoi(rangeStr); err != nil {
			return
		}
		if pos1 <= 0 {
			err = fmt.Errorf("bedio.ParseRegion: position %v in region string out of range", rangeStr)
			return
		}
		result.Start = pos1 - 1
		result.End = pos1
		return
	}
	start1Str := rangeStr[:dashPos]
	endStr := rangeStr[dashPos+1:]
	var start1 int
	if start1, err = strconv.Atoi(start1Str); err != nil {
		return
	}
	if start1 <= 0 {
		err = fmt.Errorf("bedio.ParseRegion: position %v in region string out of range", start1Str)
		return
	}
	var end0 int
	if end0, err = strconv.Atoi(endStr); err != nil {
		return
	}
	if end0 < start1 || end0 > regionMax {
		err = fmt.Errorf("bedio.ParseRegion: invalid range string %v", rangeStr)
		return
	}
	result.Start = start1 - 1
	result.End = end0
	return
}
