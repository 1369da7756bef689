package feature_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zwlab/gobjects/feature"
)

func TestParseAttrs(t *testing.T) {
	attrs, err := feature.ParseAttrs(`gene_id "X"; tag "a"; tag "b";`)
	require.NoError(t, err)
	require.Len(t, attrs, 2)
	require.Len(t, attrs["gene_id"], 1)
	assert.Equal(t, "X", attrs["gene_id"][0].Raw)
	require.Len(t, attrs["tag"], 2)
	assert.Equal(t, "a", attrs["tag"][0].Raw)
	assert.Equal(t, "b", attrs["tag"][1].Raw)
}

func TestParseAttrsNumericValues(t *testing.T) {
	attrs, err := feature.ParseAttrs(`exon_number "3"; gene_name "OR8K1";`)
	require.NoError(t, err)
	assert.True(t, attrs["exon_number"][0].Numeric)
	assert.Equal(t, 3.0, attrs["exon_number"][0].Num)
	assert.False(t, attrs["gene_name"][0].Numeric)
}

func TestParseAttrsTrailingSemicolonOptional(t *testing.T) {
	withSemi, err := feature.ParseAttrs(`gene_id "X";`)
	require.NoError(t, err)
	withoutSemi, err := feature.ParseAttrs(`gene_id "X"`)
	require.NoError(t, err)
	assert.Equal(t, withSemi, withoutSemi)
}

func TestParseAttrsEmpty(t *testing.T) {
	attrs, err := feature.ParseAttrs("")
	require.NoError(t, err)
	assert.NotNil(t, attrs)
	assert.Empty(t, attrs)
}

func TestParseAttrsMalformed(t *testing.T) {
	for _, s := range []string{
		`gene_id`,            // key without a value
		`gene_id "X" extra;`, // three fields in one pair
		`gene_id "X"; tag`,   // malformed second pair
	} {
		_, err := feature.ParseAttrs(s)
		require.Error(t, err, "ParseAttrs(%q)", s)
		assert.Equal(t, feature.ErrParse, errors.Cause(err), "ParseAttrs(%q)", s)
	}
}
