package sets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shop struct {
	Siret string
	Name  string
}

func TestOfDropsDuplicates(t *testing.T) {
	s := Of("a", "b", "a", "c")
	assert.Equal(t, []string{"a", "b", "c"}, s.Items())
}

func TestAddRemove(t *testing.T) {
	s := Of[string]()
	assert.True(t, s.Add("x"))
	assert.False(t, s.Add("x"))
	assert.True(t, s.Add("y"))
	assert.True(t, s.Remove("x"))
	assert.False(t, s.Remove("x"))
	assert.Equal(t, []string{"y"}, s.Items())
}

func TestRemoveReindexes(t *testing.T) {
	s := Of("a", "b", "c", "d")
	s.Remove("b")
	assert.True(t, s.Remove("d"))
	assert.True(t, s.Remove("c"))
	assert.Equal(t, []string{"a"}, s.Items())
}

func TestKeyedByField(t *testing.T) {
	s := New(func(b shop) string { return b.Siret },
		shop{Siret: "1", Name: "first"},
		shop{Siret: "1", Name: "renamed"},
	)
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "first", s.Items()[0].Name)
	assert.False(t, s.Add(shop{Siret: "1", Name: "other"}))
	assert.True(t, s.Remove("1"))
	assert.Empty(t, s.Items())
}

func TestItemsNeverNil(t *testing.T) {
	assert.NotNil(t, Of[string]().Items())
}
