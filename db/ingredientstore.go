package db

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gourmet/errs"
	"gourmet/models"
)

type IngredientStore struct {
	c *mongo.Collection
}

func NewIngredientStore(database *mongo.Database) *IngredientStore {
	return &IngredientStore{c: database.Collection(IngredientsCollection)}
}

// SearchByName matches nom case-insensitively as a substring.
func (s *IngredientStore) SearchByName(ctx context.Context, nom string, limit int64) ([]models.IngredientRef, error) {
	filter := bson.M{"nom": bson.M{"$regex": regexp.QuoteMeta(nom), "$options": "i"}}
	cursor, err := s.c.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, errs.Store(err)
	}
	defer cursor.Close(ctx)

	out := []models.IngredientRef{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, errs.Store(err)
	}
	return out, nil
}
