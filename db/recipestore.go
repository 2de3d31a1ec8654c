package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gourmet/errs"
	"gourmet/models"
)

type RecipeStore struct {
	c *mongo.Collection
}

func NewRecipeStore(database *mongo.Database) *RecipeStore {
	return &RecipeStore{c: database.Collection(RecipesCollection)}
}

func (s *RecipeStore) Insert(ctx context.Context, r *models.Recipe) error {
	r.ID = primitive.NewObjectID()
	if _, err := s.c.InsertOne(ctx, r); err != nil {
		return errs.Store(err)
	}
	return nil
}

func (s *RecipeStore) FindByID(ctx context.Context, id string) (*models.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.ErrRecipeNotFound
	}
	var r models.Recipe
	if err := s.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&r); err != nil {
		return nil, notFound(err, errs.ErrRecipeNotFound)
	}
	return &r, nil
}

// Update applies the non-nil fields of patch and returns the updated document.
// An empty patch still resolves the id.
func (s *RecipeStore) Update(ctx context.Context, id string, patch models.RecipePatch) (*models.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.ErrRecipeNotFound
	}
	set := patchSet(patch)
	if len(set) == 0 {
		return s.FindByID(ctx, id)
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var r models.Recipe
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&r); err != nil {
		return nil, notFound(err, errs.ErrRecipeNotFound)
	}
	return &r, nil
}

func patchSet(p models.RecipePatch) bson.M {
	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.Regime != nil {
		set["regime"] = *p.Regime
	}
	if p.Ingredients != nil {
		set["ingredients"] = *p.Ingredients
	}
	if p.Difficulty != nil {
		set["difficulty"] = *p.Difficulty
	}
	if p.Cost != nil {
		set["cost"] = *p.Cost
	}
	if p.Duration != nil {
		set["duration"] = *p.Duration
	}
	if p.Steps != nil {
		set["steps"] = *p.Steps
	}
	return set
}

func (s *RecipeStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrRecipeNotFound
	}
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errs.Store(err)
	}
	if res.DeletedCount == 0 {
		return errs.ErrRecipeNotFound
	}
	return nil
}

// Search returns one page of summaries matching filter plus the total match count.
func (s *RecipeStore) Search(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Recipe, int64, error) {
	opts := options.Find().
		SetProjection(projection(models.SummaryFields...)).
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	recipes, err := findAll(ctx, s.c, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errs.Store(err)
	}
	return recipes, total, nil
}

// List returns up to limit recipes with summary fields and steps.
func (s *RecipeStore) List(ctx context.Context, limit int64) ([]models.Recipe, error) {
	fields := append(append([]string{}, models.SummaryFields...), "steps")
	opts := options.Find().SetProjection(projection(fields...)).SetLimit(limit)
	return findAll(ctx, s.c, bson.M{}, opts)
}

// FindSummariesByIDs resolves favorite ids. Malformed or dangling ids are skipped.
func (s *RecipeStore) FindSummariesByIDs(ctx context.Context, ids []string) ([]models.Recipe, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return []models.Recipe{}, nil
	}
	opts := options.Find().SetProjection(projection(models.SummaryFields...))
	return findAll(ctx, s.c, bson.M{"_id": bson.M{"$in": oids}}, opts)
}

// ApplyVote folds one vote into averageNote and voteNr in a single pipeline update.
// Both fields are computed from their pre-update values, so concurrent votes serialize
// on the document instead of overwriting each other.
func (s *RecipeStore) ApplyVote(ctx context.Context, id string, vote float64) (*models.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.ErrRecipeNotFound
	}
	n := bson.D{{Key: "$ifNull", Value: bson.A{"$voteNr", 0}}}
	avg := bson.D{{Key: "$ifNull", Value: bson.A{"$averageNote", 0}}}
	next := bson.D{{Key: "$add", Value: bson.A{n, 1}}}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "averageNote", Value: bson.D{{Key: "$divide", Value: bson.A{
				bson.D{{Key: "$add", Value: bson.A{
					bson.D{{Key: "$multiply", Value: bson.A{avg, n}}},
					vote,
				}}},
				next,
			}}}},
			{Key: "voteNr", Value: next},
		}}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var r models.Recipe
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&r); err != nil {
		return nil, notFound(err, errs.ErrRecipeNotFound)
	}
	return &r, nil
}

func findAll(ctx context.Context, c *mongo.Collection, filter any, opts *options.FindOptions) ([]models.Recipe, error) {
	cursor, err := c.Find(ctx, filter, opts)
	if err != nil {
		return nil, errs.Store(err)
	}
	defer cursor.Close(ctx)

	recipes := []models.Recipe{}
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, errs.Store(err)
	}
	return recipes, nil
}

func notFound(err error, nf *errs.Error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nf
	}
	return errs.Store(err)
}
