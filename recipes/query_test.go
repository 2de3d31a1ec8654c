package recipes

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"gourmet/models"
)

func TestParseQueryDefaults(t *testing.T) {
	q := ParseQuery(url.Values{"page": {"abc"}, "limit": {"-4"}})
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, DefaultLimit, q.Limit)
	assert.Empty(t, q.Filter())
}

func TestParseQueryCapsLimit(t *testing.T) {
	q := ParseQuery(url.Values{"limit": {"5000"}})
	assert.Equal(t, MaxLimit, q.Limit)
}

func TestParseQueryRegimeForms(t *testing.T) {
	repeated := ParseQuery(url.Values{"regime": {"Vegan", "Bio"}})
	joined := ParseQuery(url.Values{"regime": {"Vegan,Bio"}})
	assert.Equal(t, []models.Regime{"Vegan", "Bio"}, repeated.Regimes)
	assert.Equal(t, repeated.Regimes, joined.Regimes)
}

func TestParseQueryHugePageStaysPositive(t *testing.T) {
	q := ParseQuery(url.Values{"page": {"9223372036854775807"}, "limit": {"10"}})
	assert.Equal(t, MaxPage, q.Page)
	assert.Positive(t, q.Skip())
	assert.EqualValues(t, int64(MaxPage-1)*10, q.Skip())

	assert.Zero(t, Query{Page: -3, Limit: 10}.Skip())
	assert.GreaterOrEqual(t, Query{Page: MaxPage + 1, Limit: 1 << 20}.Skip(), int64(0))
}

func TestPaginationSecondPage(t *testing.T) {
	q := ParseQuery(url.Values{"page": {"2"}, "limit": {"10"}})
	assert.EqualValues(t, 10, q.Skip())
	p := NewPagination(q, 25)
	assert.Equal(t, Pagination{Current: 2, Pages: 3, Total: 25}, p)
	assert.Equal(t, 0, NewPagination(q, 0).Pages)
}

func TestFilterCombinesConstraints(t *testing.T) {
	q := Query{Keyword: "pâte (fraîche)", Regimes: []models.Regime{"Vegan", "Bio"}, Category: "MAIN", Page: 1, Limit: 10}
	f := q.Filter()

	assert.Equal(t, bson.M{"$all": []models.Regime{"Vegan", "Bio"}}, f["regime"])
	assert.Equal(t, models.Category("MAIN"), f["category"])
	or, ok := f["$or"].(bson.A)
	if assert.True(t, ok) && assert.Len(t, or, 2) {
		title := or[0].(bson.M)["title"].(bson.M)
		assert.Equal(t, `pâte \(fraîche\)`, title["$regex"])
		assert.Equal(t, "i", title["$options"])
	}
}

func TestCacheKeyIgnoresRegimeOrder(t *testing.T) {
	a := Query{Regimes: []models.Regime{"Vegan", "Bio"}, Page: 1, Limit: 10}
	b := Query{Regimes: []models.Regime{"Bio", "Vegan"}, Page: 1, Limit: 10}
	c := Query{Regimes: []models.Regime{"Bio"}, Page: 1, Limit: 10}
	assert.Equal(t, a.cacheKey(), b.cacheKey())
	assert.NotEqual(t, a.cacheKey(), c.cacheKey())
}
