// Package favorites keeps the per-user favorite sets: recipe ids, dietary regimes and
// business snapshots. Every mutation is a single conditional update on the user document.
package favorites

import (
	"context"
	"errors"
	"strings"

	"gourmet/db"
	"gourmet/errs"
	"gourmet/models"
	"gourmet/sets"
)

// UserStore is satisfied by *db.UserStore.
type UserStore interface {
	FindByToken(ctx context.Context, token string) (*models.User, error)
	PushMember(ctx context.Context, token string, m db.Member) (*models.User, error)
	PullMember(ctx context.Context, token string, m db.Member) (*models.User, error)
}

// RecipeLister resolves bookmarked recipe ids; *db.RecipeStore satisfies it.
type RecipeLister interface {
	FindSummariesByIDs(ctx context.Context, ids []string) ([]models.Recipe, error)
}

// Collection describes one favorites array on the user document.
type Collection[T any] struct {
	Name     string
	Field    string
	KeyField string // sub-field compared for membership; empty for value equality
	Key      func(T) string
	Of       func(*models.User) []T
	Check    func(T) error

	AlreadyMsg string
	MissingMsg string
}

var Recipes = Collection[string]{
	Name:       "recipes",
	Field:      "favRecipes",
	Key:        identity,
	Of:         func(u *models.User) []string { return u.FavRecipes },
	AlreadyMsg: "Recipe already in favorites",
	MissingMsg: "Recipe not in favorites",
}

var Regimes = Collection[string]{
	Name:  "regimes",
	Field: "regime",
	Key:   identity,
	Of:    func(u *models.User) []string { return u.Regime },
	Check: func(r string) error {
		if !models.Regime(r).Valid() {
			return errs.Validation("Invalid regime")
		}
		return nil
	},
	AlreadyMsg: "Regime already in favorites",
	MissingMsg: "Regime not in regimes",
}

var Businesses = Collection[models.Business]{
	Name:       "businesses",
	Field:      "favBuisnesses",
	KeyField:   "siret",
	Key:        func(b models.Business) string { return b.Siret },
	Of:         func(u *models.User) []models.Business { return u.FavBusinesses },
	AlreadyMsg: "Business already in favorites",
	MissingMsg: "Business not in favorites",
}

func identity(s string) string { return s }

func (c Collection[T]) member(key string, value any) db.Member {
	m := db.Member{Field: c.Field, KeyPath: c.Field, Key: key, Value: value, Match: key}
	if c.KeyField != "" {
		m.KeyPath = c.Field + "." + c.KeyField
		m.Match = map[string]any{c.KeyField: key}
	}
	return m
}

// set reads the collection off u, dropping duplicate keys left by older documents.
func (c Collection[T]) set(u *models.User) []T {
	return sets.New(c.Key, c.Of(u)...).Items()
}

// Add inserts item unless its key is already present and returns the resulting set.
func Add[T any](ctx context.Context, users UserStore, c Collection[T], token string, item T) ([]T, error) {
	key := c.Key(item)
	if blank(token) || blank(key) {
		return nil, errs.Validation(errs.MsgMissingFields)
	}
	if c.Check != nil {
		if err := c.Check(item); err != nil {
			return nil, err
		}
	}
	u, err := users.PushMember(ctx, token, c.member(key, item))
	if err != nil {
		return nil, c.mapErr(err)
	}
	mutations.WithLabelValues(c.Name, "add").Inc()
	return c.set(u), nil
}

// Remove deletes the element keyed key and returns the resulting set.
func Remove[T any](ctx context.Context, users UserStore, c Collection[T], token, key string) ([]T, error) {
	if blank(token) || blank(key) {
		return nil, errs.Validation(errs.MsgMissingFields)
	}
	u, err := users.PullMember(ctx, token, c.member(key, nil))
	if err != nil {
		return nil, c.mapErr(err)
	}
	mutations.WithLabelValues(c.Name, "remove").Inc()
	return c.set(u), nil
}

// List returns the user's set; an absent array reads as empty.
func List[T any](ctx context.Context, users UserStore, c Collection[T], token string) ([]T, error) {
	if blank(token) {
		return nil, errs.Validation(errs.MsgMissingFields)
	}
	u, err := users.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return c.set(u), nil
}

// Bookmarks resolves the user's favorite recipe ids to summaries. Ids that no longer
// resolve are dropped.
func Bookmarks(ctx context.Context, users UserStore, recipes RecipeLister, token string) ([]models.Recipe, error) {
	ids, err := List(ctx, users, Recipes, token)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.Recipe{}, nil
	}
	found, err := recipes.FindSummariesByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Store(err)
	}
	for i := range found {
		found[i].NormalizeSlices()
	}
	return found, nil
}

func (c Collection[T]) mapErr(err error) error {
	switch {
	case errors.Is(err, db.ErrAlreadyMember):
		return errs.Conflict(c.AlreadyMsg)
	case errors.Is(err, db.ErrNotMember):
		return errs.Conflict(c.MissingMsg)
	}
	return err
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
