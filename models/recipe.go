package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Regime string

const (
	RegimeVegan      Regime = "Vegan"
	RegimeVegetarian Regime = "Végé"
	RegimeGlutenFree Regime = "Sans gluten"
	RegimeOrganic    Regime = "Bio"
)

var Regimes = []Regime{RegimeVegan, RegimeVegetarian, RegimeGlutenFree, RegimeOrganic}

func (r Regime) Valid() bool {
	for _, v := range Regimes {
		if v == r {
			return true
		}
	}
	return false
}

type Category string

var Categories = []Category{"STARTER", "MAIN", "DESSERT", "PARTY", "FAST FOOD", "HEALTHY", "AFRICA", "ASIA", "LATINO"}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

type Ingredient struct {
	Name     string  `json:"name" bson:"name"`
	Icon     string  `json:"icon,omitempty" bson:"icon,omitempty"`
	Quantity float64 `json:"quantity" bson:"quantity"`
	Unit     string  `json:"unit" bson:"unit"`
}

type Recipe struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Regime      []Regime           `json:"regime" bson:"regime"`
	Ingredients []Ingredient       `json:"ingredients" bson:"ingredients,omitempty"`
	Category    Category           `json:"category" bson:"category"`
	Difficulty  Difficulty         `json:"difficulty" bson:"difficulty"`
	Cost        float64            `json:"cost" bson:"cost"`
	Duration    int                `json:"duration" bson:"duration"`
	Steps       []string           `json:"steps" bson:"steps,omitempty"`
	AverageNote float64            `json:"averageNote" bson:"averageNote"`
	VoteNr      int                `json:"voteNr" bson:"voteNr"`
	ShareLinks  []string           `json:"shareLinks" bson:"shareLinks,omitempty"`
}

// RecipeEdit carries the fields a create may write. Rating counters are written only by a vote.
type RecipeEdit struct {
	Title       string       `json:"title" validate:"required"`
	Description string       `json:"description" validate:"required"`
	Category    Category     `json:"category" validate:"required"`
	Regime      []Regime     `json:"regime"`
	Ingredients []Ingredient `json:"ingredients"`
	Difficulty  Difficulty   `json:"difficulty"`
	Cost        float64      `json:"cost"`
	Duration    int          `json:"duration"`
	Steps       []string     `json:"steps"`
}

// RecipePatch is a partial edit: nil fields are left untouched.
type RecipePatch struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Category    *Category     `json:"category"`
	Regime      *[]Regime     `json:"regime"`
	Ingredients *[]Ingredient `json:"ingredients"`
	Difficulty  *Difficulty   `json:"difficulty"`
	Cost        *float64      `json:"cost"`
	Duration    *int          `json:"duration"`
	Steps       *[]string     `json:"steps"`
}

// SummaryFields is the projection used by search and bookmark listings.
var SummaryFields = []string{"title", "description", "regime", "category", "averageNote", "voteNr", "difficulty", "duration", "cost"}

// NormalizeSlices keeps JSON output as [] instead of null.
func (r *Recipe) NormalizeSlices() {
	if r.Regime == nil {
		r.Regime = []Regime{}
	}
	if r.Ingredients == nil {
		r.Ingredients = []Ingredient{}
	}
	if r.Steps == nil {
		r.Steps = []string{}
	}
	if r.ShareLinks == nil {
		r.ShareLinks = []string{}
	}
}
