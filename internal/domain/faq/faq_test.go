package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByCategory(t *testing.T) {
	faqs := []FAQ{
		{ID: "a", Category: "Getting Started", Order: 2},
		{ID: "b", Category: "Security & Safety", Order: 1},
		{ID: "c", Category: "Getting Started", Order: 1},
	}
	groups := GroupByCategory(faqs)

	require.Len(t, groups, 2)
	assert.Equal(t, "Getting Started", groups[0].Category)
	assert.Equal(t, "c", groups[0].FAQs[0].ID)
	assert.Equal(t, "a", groups[0].FAQs[1].ID)
	assert.Equal(t, "Security & Safety", groups[1].Category)
}

func TestFilter_Match(t *testing.T) {
	f := Seed()[2]
	assert.True(t, Filter{Query: "encryption"}.Match(f))
	assert.True(t, Filter{Category: "Security & Safety"}.Match(f))
	assert.False(t, Filter{Category: "Getting Started"}.Match(f))
}
