package feature_test

import (
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/zwlab/gobjects/feature"
)

func TestNewValue(t *testing.T) {
	tests := []struct {
		raw     string
		numeric bool
		num     float64
	}{
		{"900", true, 900},
		{"0", true, 0},
		{"-1.5", true, -1.5},
		{"+3", true, 3},
		{".5", true, 0.5},
		{"-.25", true, -0.25},
		{".", false, 0},
		{"", false, 0},
		{"abc", false, 0},
		{"1e5", false, 0}, // exponent form stays text
		{"5.", false, 0},  // bare trailing dot stays text
		{"1.2.3", false, 0},
	}
	for _, tt := range tests {
		v := feature.NewValue(tt.raw)
		expect.EQ(t, v.Numeric, tt.numeric, "NewValue(%q)", tt.raw)
		expect.EQ(t, v.Raw, tt.raw)
		if tt.numeric {
			expect.EQ(t, v.Num, tt.num, "NewValue(%q)", tt.raw)
		}
		expect.EQ(t, v.String(), tt.raw)
	}
}

func TestParseStrand(t *testing.T) {
	expect.EQ(t, feature.ParseStrand("+"), feature.Plus)
	expect.EQ(t, feature.ParseStrand("-"), feature.Minus)
	expect.EQ(t, feature.ParseStrand("."), feature.NoStrand)
	expect.EQ(t, feature.ParseStrand(""), feature.NoStrand)
	expect.EQ(t, feature.Plus.String(), "+")
}

func TestParseFrame(t *testing.T) {
	expect.EQ(t, feature.ParseFrame("0"), feature.Frame(0))
	expect.EQ(t, feature.ParseFrame("2"), feature.Frame(2))
	expect.EQ(t, feature.ParseFrame("."), feature.FrameNone)
	expect.EQ(t, feature.FrameNone.String(), ".")
	expect.EQ(t, feature.Frame(1).String(), "1")
}
