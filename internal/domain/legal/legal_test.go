package legal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_SortedDoesNotReorderOriginal(t *testing.T) {
	p := Page{Sections: []Section{{ID: "b", Order: 2}, {ID: "a", Order: 1}}}
	sorted := p.Sorted()

	assert.Equal(t, "a", sorted.Sections[0].ID)
	assert.Equal(t, "b", p.Sections[0].ID)
}

func TestPage_SectionCRUD(t *testing.T) {
	p := SeedTerms()
	p.AddSection(Section{ID: "x", Title: "Refunds", Content: "...", Order: 11})
	assert.Len(t, p.Sections, 11)

	order := 0
	s, ok := p.UpdateSection("x", SectionPatch{Order: &order})
	assert.True(t, ok)
	assert.Equal(t, "Refunds", s.Title)
	assert.Equal(t, "x", p.Sorted().Sections[0].ID)

	assert.True(t, p.DeleteSection("x"))
	assert.False(t, p.DeleteSection("x"))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("privacy")
	assert.NoError(t, err)
	assert.Equal(t, "planmoni-privacy-policy", k.StorageKey())

	_, err = ParseKind("cookies")
	assert.ErrorIs(t, err, ErrUnknownPage)
}

func TestPage_DeletingLastSectionEncodesEmptyList(t *testing.T) {
	p := Page{Sections: []Section{{ID: "only", Title: "Scope", Content: "...", Order: 1}}}
	assert.True(t, p.DeleteSection("only"))

	body, err := json.Marshal(p.Sorted())
	require.NoError(t, err)
	assert.Contains(t, string(body), `"sections":[]`)

	body, err = json.Marshal(Page{}.Clone())
	require.NoError(t, err)
	assert.Contains(t, string(body), `"sections":[]`)
}
