package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "lowercases and trims",
			in:   []string{" Keto ", "DAIRY-FREE"},
			want: []string{"keto", "dairy-free"},
		},
		{
			name: "deduplicates preserving first-seen order",
			in:   []string{"vegan", "Keto", "VEGAN", "keto"},
			want: []string{"vegan", "keto"},
		},
		{
			name: "drops empty entries",
			in:   []string{"", "  ", "gluten-free"},
			want: []string{"gluten-free"},
		},
		{
			name: "empty input yields empty non-nil slice",
			in:   nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTags(tt.in)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExactMatch(t *testing.T) {
	tags := []string{"keto", "dairy-free"}

	assert.True(t, ExactMatch(tags, "keto"))
	assert.False(t, ExactMatch(tags, "dairy"))
	assert.False(t, ExactMatch(nil, "keto"))
}

func TestSubstringMatch(t *testing.T) {
	tags := []string{"keto", "dairy-free"}

	assert.True(t, SubstringMatch(tags, "keto"))
	assert.True(t, SubstringMatch(tags, "dairy"))
	assert.False(t, SubstringMatch(tags, "vegan"))
	assert.False(t, SubstringMatch(nil, "keto"))
}
