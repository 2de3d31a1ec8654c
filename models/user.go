package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Username      string             `json:"username" bson:"username"`
	Password      string             `json:"-" bson:"password"`
	Token         string             `json:"token" bson:"token"`
	Email         string             `json:"email" bson:"email"`
	FavRecipes    []string           `json:"favRecipes" bson:"favRecipes"`
	FavBusinesses []Business         `json:"favBusinesses" bson:"favBuisnesses"`
	Regime        []string           `json:"regime" bson:"regime"`
}

// Business is a snapshot of a local shop copied into a user's favorites at bookmark time.
// Siret is the only field used for equality.
type Business struct {
	Siret      string   `json:"siret" bson:"siret" validate:"required"`
	Name       string   `json:"name" bson:"name"`
	Address    string   `json:"address,omitempty" bson:"address,omitempty"`
	ZipCode    string   `json:"zipCode,omitempty" bson:"zipCode,omitempty"`
	City       string   `json:"city,omitempty" bson:"city,omitempty"`
	Categories []string `json:"categories,omitempty" bson:"categories,omitempty"`
	Phone      string   `json:"phone,omitempty" bson:"phone,omitempty"`
	Email      string   `json:"email,omitempty" bson:"email,omitempty"`
	Website    string   `json:"website,omitempty" bson:"website,omitempty"`
	Latitude   float64  `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude  float64  `json:"longitude,omitempty" bson:"longitude,omitempty"`
}

// IngredientRef is a row of the static ingredient reference table.
type IngredientRef struct {
	ID   int    `json:"id" bson:"id"`
	Code string `json:"code" bson:"code"`
	Nom  string `json:"nom" bson:"nom"`
}
