package recipes

import (
	"math"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"gourmet/models"
	"gourmet/utils"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
	MaxPage      = math.MaxInt32
)

// Query is a parsed search request. Zero values mean "no constraint".
type Query struct {
	Keyword  string
	Regimes  []models.Regime
	Category models.Category
	Page     int
	Limit    int
}

// ParseQuery reads search parameters. Malformed page or limit values fall back to defaults;
// out-of-range ones are clamped.
func ParseQuery(v url.Values) Query {
	q := Query{
		Keyword:  strings.TrimSpace(v.Get("keyword")),
		Category: models.Category(strings.TrimSpace(v.Get("category"))),
		Page:     utils.PositiveInt(v.Get("page"), 1),
		Limit:    utils.PositiveInt(v.Get("limit"), DefaultLimit),
	}
	q.Limit = min(q.Limit, MaxLimit)
	q.Page = min(q.Page, MaxPage)
	for _, r := range utils.MultiValue(v, "regime") {
		q.Regimes = append(q.Regimes, models.Regime(r))
	}
	return q
}

// Filter builds the Mongo filter. Present constraints are ANDed as top-level keys;
// regimes match as a superset.
func (q Query) Filter() bson.M {
	filter := bson.M{}
	if q.Keyword != "" {
		pattern := regexp.QuoteMeta(q.Keyword)
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}
	if len(q.Regimes) > 0 {
		filter["regime"] = bson.M{"$all": q.Regimes}
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	return filter
}

// Skip never goes negative, even for a Query built by hand.
func (q Query) Skip() int64 {
	page := min(max(q.Page, 1), MaxPage)
	limit := min(max(q.Limit, 0), MaxLimit)
	return int64(page-1) * int64(limit)
}

// cacheKey is stable for equivalent queries regardless of regime order.
func (q Query) cacheKey() string {
	regimes := make([]string, len(q.Regimes))
	for i, r := range q.Regimes {
		regimes[i] = string(r)
	}
	sort.Strings(regimes)
	v := url.Values{}
	v.Set("k", strings.ToLower(q.Keyword))
	v.Set("c", string(q.Category))
	v.Set("r", strings.Join(regimes, ","))
	v.Set("p", strconv.Itoa(q.Page))
	v.Set("l", strconv.Itoa(q.Limit))
	return v.Encode()
}

type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

func NewPagination(q Query, total int64) Pagination {
	return Pagination{
		Current: q.Page,
		Pages:   int(math.Ceil(float64(total) / float64(q.Limit))),
		Total:   total,
	}
}
