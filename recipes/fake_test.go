package recipes

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gourmet/errs"
	"gourmet/models"
)

// fakeStore keeps recipes in memory. Search ignores the filter and pages over everything;
// the last filter is recorded for assertions.
type fakeStore struct {
	mu       sync.Mutex
	recipes  map[string]*models.Recipe
	order    []string
	searches int
	filter   bson.M
	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{recipes: map[string]*models.Recipe{}}
}

func (f *fakeStore) Insert(_ context.Context, r *models.Recipe) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	r.ID = primitive.NewObjectID()
	cp := *r
	f.recipes[r.ID.Hex()] = &cp
	f.order = append(f.order, r.ID.Hex())
	return nil
}

func (f *fakeStore) FindByID(_ context.Context, id string) (*models.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.recipes[id]
	if !ok {
		return nil, errs.ErrRecipeNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeStore) Update(_ context.Context, id string, p models.RecipePatch) (*models.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.recipes[id]
	if !ok {
		return nil, errs.ErrRecipeNotFound
	}
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.Cost != nil {
		r.Cost = *p.Cost
	}
	cp := *r
	return &cp, nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.recipes[id]; !ok {
		return errs.ErrRecipeNotFound
	}
	delete(f.recipes, id)
	for i, o := range f.order {
		if o == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeStore) Search(_ context.Context, filter bson.M, skip, limit int64) ([]models.Recipe, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches++
	f.filter = filter
	if f.failWith != nil {
		return nil, 0, f.failWith
	}
	out := []models.Recipe{}
	for i := skip; i < int64(len(f.order)) && i < skip+limit; i++ {
		out = append(out, *f.recipes[f.order[i]])
	}
	return out, int64(len(f.order)), nil
}

func (f *fakeStore) List(_ context.Context, limit int64) ([]models.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Recipe{}
	for _, id := range f.order {
		if int64(len(out)) == limit {
			break
		}
		out = append(out, *f.recipes[id])
	}
	return out, nil
}

// ApplyVote runs NextRating under the store lock, standing in for the atomic pipeline.
func (f *fakeStore) ApplyVote(_ context.Context, id string, vote float64) (*models.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.recipes[id]
	if !ok {
		return nil, errs.ErrRecipeNotFound
	}
	r.AverageNote, r.VoteNr = NextRating(r.AverageNote, r.VoteNr, vote)
	cp := *r
	return &cp, nil
}

type memCache struct {
	mu   sync.Mutex
	vals map[string]any
	gens map[string]int64
}

func newMemCache() *memCache {
	return &memCache{vals: map[string]any{}, gens: map[string]int64{}}
}

func (c *memCache) GetJSON(_ context.Context, key string, dst any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.vals[key]
	if !ok {
		return false
	}
	*dst.(*SearchResult) = v.(SearchResult)
	return true
}

func (c *memCache) SetJSON(_ context.Context, key string, v any, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals[key] = v
}

func (c *memCache) Generation(_ context.Context, ns string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[ns]
}

func (c *memCache) Bump(_ context.Context, ns string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[ns]++
}
