package versions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange_Match(t *testing.T) {
	tests := []struct {
		rng     string
		match   []string
		noMatch []string
	}{
		{
			rng:     "~11.1",
			match:   []string{"11.1", "11.1.0", "11.1.4"},
			noMatch: []string{"11.0.9", "11.2.0", "12.0.0", "11.1.5-rc1"},
		},
		{
			rng:     "~2",
			match:   []string{"2.0.0", "2.9.1"},
			noMatch: []string{"1.9.9", "3.0.0"},
		},
		{
			rng:     ">3.14",
			match:   []string{"3.14.1", "3.27.9", "4.0.0"},
			noMatch: []string{"3.14", "3.14.0", "3.13.9"},
		},
		{
			rng:     "^1.2",
			match:   []string{"1.2.0", "1.9.0"},
			noMatch: []string{"1.1.9", "2.0.0"},
		},
		{
			rng:     "^0.1.2",
			match:   []string{"0.1.2", "0.1.9"},
			noMatch: []string{"0.2.0", "0.1.1"},
		},
		{
			rng:     ">=1.2 <2 || =3.0",
			match:   []string{"1.2.0", "1.99.0", "3.0.0"},
			noMatch: []string{"2.0.0", "3.0.1", "1.1.0"},
		},
		{
			rng:     "1.3.1",
			match:   []string{"1.3.1", "v1.3.1"},
			noMatch: []string{"1.3.2", "not-a-version", ""},
		},
		{
			rng:     ">=1.0, include_prerelease",
			match:   []string{"1.1.0-rc1", "1.0.0"},
			noMatch: []string{"0.9.0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.rng, func(t *testing.T) {
			r, err := ParseRange(tt.rng)
			require.NoError(t, err)
			for _, v := range tt.match {
				assert.True(t, r.Match(v), "%q should match %q", tt.rng, v)
			}
			for _, v := range tt.noMatch {
				assert.False(t, r.Match(v), "%q should not match %q", tt.rng, v)
			}
		})
	}
}

func TestParseRange_Invalid(t *testing.T) {
	for _, s := range []string{"", "   ", ">", "~abc", "1.0 ||", ">=1.0, fast"} {
		_, err := ParseRange(s)
		assert.Error(t, err, "ParseRange(%q)", s)
	}
}

func TestRange_Select(t *testing.T) {
	r, err := ParseRange("~11.1")
	require.NoError(t, err)

	best, ok := r.Select([]string{"11.1.4", "11.0.2", "11.1.10", "11.2.0", "11.1.3"})
	assert.True(t, ok)
	assert.Equal(t, "11.1.10", best)

	_, ok = r.Select([]string{"10.0.0"})
	assert.False(t, ok)
	assert.Equal(t, "~11.1", r.String())
}
