package feature

import (
	"strings"
)

// chromToken is one maximal run of a chromosome label: either a digit
// run, compared numerically, or anything else, compared as case-folded
// text.
type chromToken struct {
	// digits holds a numeric run with leading zeros stripped, so equal
	// values always have equal representations and magnitude can be
	// compared by length first.  Valid only when num is true.
	digits string
	text   string
	num    bool
}

// ChromKey is the natural-sort key for a chromosome label.  Digit runs
// compare numerically and other runs compare case-insensitively, so
// "chr2" sorts before "chr10" and "chr1" keys equal to "CHR1".
type ChromKey []chromToken

// NewChromKey tokenizes a chromosome label.  It is pure and total: any
// input, including the empty string, produces a key.
func NewChromKey(chrom string) ChromKey {
	key := make(ChromKey, 0, 4)
	for i := 0; i < len(chrom); {
		j := i
		if isDigit(chrom[i]) {
			for j < len(chrom) && isDigit(chrom[j]) {
				j++
			}
			key = append(key, chromToken{digits: strings.TrimLeft(chrom[i:j], "0"), num: true})
		} else {
			for j < len(chrom) && !isDigit(chrom[j]) {
				j++
			}
			key = append(key, chromToken{text: strings.ToLower(chrom[i:j])})
		}
		i = j
	}
	return key
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Compare orders two keys token by token, returning -1, 0 or 1.  A
// numeric token always orders before a string token at the same
// position; when one key is a prefix of the other, the shorter key
// orders first.
func (k ChromKey) Compare(other ChromKey) int {
	for i := 0; i < len(k) && i < len(other); i++ {
		a, b := k[i], other[i]
		switch {
		case a.num && b.num:
			if c := compareDigits(a.digits, b.digits); c != 0 {
				return c
			}
		case a.num:
			return -1
		case b.num:
			return 1
		default:
			if c := strings.Compare(a.text, b.text); c != 0 {
				return c
			}
		}
	}
	switch {
	case len(k) < len(other):
		return -1
	case len(k) > len(other):
		return 1
	}
	return 0
}

// compareDigits compares two zero-stripped digit strings numerically:
// by length, then lexically.  Works for runs of any length, no integer
// conversion involved.
func compareDigits(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// CompareChroms compares two chromosome labels by natural sort.  Equal
// labels are compared without tokenizing.
func CompareChroms(a, b string) int {
	if a == b {
		return 0
	}
	return NewChromKey(a).Compare(NewChromKey(b))
}
