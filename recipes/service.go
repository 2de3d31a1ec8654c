package recipes

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"gourmet/errs"
	"gourmet/models"
)

const (
	// AllRecipesLimit caps the unfiltered listing.
	AllRecipesLimit = 20

	searchNamespace = "recipes:search"
	searchTTL       = 60 * time.Second
)

// Store is the persistence the service needs; *db.RecipeStore satisfies it.
type Store interface {
	Insert(ctx context.Context, r *models.Recipe) error
	FindByID(ctx context.Context, id string) (*models.Recipe, error)
	Update(ctx context.Context, id string, patch models.RecipePatch) (*models.Recipe, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Recipe, int64, error)
	List(ctx context.Context, limit int64) ([]models.Recipe, error)
	ApplyVote(ctx context.Context, id string, vote float64) (*models.Recipe, error)
}

// Cache is the read-through cache used for search pages; *rdx.Cache satisfies it.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) bool
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration)
	Generation(ctx context.Context, namespace string) int64
	Bump(ctx context.Context, namespace string)
}

type noCache struct{}

func (noCache) GetJSON(context.Context, string, any) bool { return false }
func (noCache) SetJSON(context.Context, string, any, time.Duration) {}
func (noCache) Generation(context.Context, string) int64 { return 0 }
func (noCache) Bump(context.Context, string) {}

type Service struct {
	store Store
	cache Cache
	log   *zap.Logger
}

func NewService(store Store, cache Cache, log *zap.Logger) *Service {
	if cache == nil {
		cache = noCache{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, cache: cache, log: log}
}

type SearchResult struct {
	Recipes    []models.Recipe `json:"recipes"`
	Pagination Pagination      `json:"pagination"`
}

// Search returns one page of recipe summaries. Pages are served from cache when the
// recipe generation has not moved since they were stored.
func (s *Service) Search(ctx context.Context, q Query) (SearchResult, error) {
	key := fmt.Sprintf("%s:%d:%s", searchNamespace, s.cache.Generation(ctx, searchNamespace), q.cacheKey())
	var res SearchResult
	if s.cache.GetJSON(ctx, key, &res) {
		return res, nil
	}

	found, total, err := s.store.Search(ctx, q.Filter(), q.Skip(), int64(q.Limit))
	if err != nil {
		return SearchResult{}, errs.Store(err)
	}
	for i := range found {
		found[i].NormalizeSlices()
	}
	res = SearchResult{Recipes: found, Pagination: NewPagination(q, total)}
	s.cache.SetJSON(ctx, key, res, searchTTL)
	return res, nil
}

func (s *Service) All(ctx context.Context) ([]models.Recipe, error) {
	found, err := s.store.List(ctx, AllRecipesLimit)
	if err != nil {
		return nil, err
	}
	for i := range found {
		found[i].NormalizeSlices()
	}
	return found, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Recipe, error) {
	r, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.NormalizeSlices()
	return r, nil
}

// Create validates and stores a new recipe. Difficulty defaults to MEDIUM and the rating
// starts at zero votes.
func (s *Service) Create(ctx context.Context, in models.RecipeEdit) (*models.Recipe, error) {
	if in.Difficulty == "" {
		in.Difficulty = models.DifficultyMedium
	}
	if err := checkEnums(&in.Category, &in.Difficulty, in.Regime); err != nil {
		return nil, err
	}
	r := &models.Recipe{
		Title:       in.Title,
		Description: in.Description,
		Regime:      in.Regime,
		Ingredients: in.Ingredients,
		Category:    in.Category,
		Difficulty:  in.Difficulty,
		Cost:        in.Cost,
		Duration:    in.Duration,
		Steps:       in.Steps,
	}
	r.NormalizeSlices()
	if err := s.store.Insert(ctx, r); err != nil {
		return nil, err
	}
	s.cache.Bump(ctx, searchNamespace)
	return r, nil
}

// Update applies a partial edit. Fields present in the patch may not be blanked.
func (s *Service) Update(ctx context.Context, id string, p models.RecipePatch) (*models.Recipe, error) {
	for _, f := range []*string{p.Title, p.Description, (*string)(p.Category)} {
		if f != nil && *f == "" {
			return nil, errs.Validation(errs.MsgMissingRequired)
		}
	}
	var regimes []models.Regime
	if p.Regime != nil {
		regimes = *p.Regime
	}
	if err := checkEnums(p.Category, p.Difficulty, regimes); err != nil {
		return nil, err
	}
	r, err := s.store.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	s.cache.Bump(ctx, searchNamespace)
	r.NormalizeSlices()
	return r, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Bump(ctx, searchNamespace)
	return nil
}

// Vote records one note in [0,5] and returns the recipe with its new average.
func (s *Service) Vote(ctx context.Context, id string, note *float64) (*models.Recipe, error) {
	if err := checkNote(note); err != nil {
		return nil, err
	}
	r, err := s.store.ApplyVote(ctx, id, *note)
	if err != nil {
		return nil, err
	}
	votesTotal.Inc()
	s.cache.Bump(ctx, searchNamespace)
	s.log.Debug("vote recorded", zap.String("recipe", id), zap.Float64("note", *note),
		zap.Float64("average", r.AverageNote), zap.Int("votes", r.VoteNr))
	r.NormalizeSlices()
	return r, nil
}

func checkEnums(c *models.Category, d *models.Difficulty, regimes []models.Regime) error {
	if c != nil && !c.Valid() {
		return errs.Validation("Invalid category")
	}
	if d != nil && !d.Valid() {
		return errs.Validation("Invalid difficulty")
	}
	for _, r := range regimes {
		if !r.Valid() {
			return errs.Validation("Invalid regime")
		}
	}
	return nil
}
