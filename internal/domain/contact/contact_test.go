package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageMissingFields(t *testing.T) {
	m := Message{Name: "Ada", Email: "ada@example.com"}
	assert.Equal(t, []string{"subject", "message"}, m.MissingFields())
}

func TestFilterMatch(t *testing.T) {
	m := SeedMessages()[1]

	assert.True(t, Filter{}.Match(m))
	assert.True(t, Filter{Status: StatusReplied, Query: "logging"}.Match(m))
	assert.False(t, Filter{Status: StatusNew}.Match(m))
}

func TestInfoPatch(t *testing.T) {
	info := SeedInfo()
	addr := "Victoria Island, Lagos"
	InfoPatch{Address: &addr}.Apply(&info)

	assert.Equal(t, addr, info.Address)
	assert.Equal(t, "support@planmoni.com", info.Email)
}
