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

var (
	// ErrAlreadyMember is returned by PushMember when the key is already in the array.
	ErrAlreadyMember = errors.New("already a member")
	// ErrNotMember is returned by PullMember when the key is absent from the array.
	ErrNotMember = errors.New("not a member")
	// ErrDuplicateUser is returned by Create when the username is taken.
	ErrDuplicateUser = errors.New("duplicate user")
)

// Member describes one element of a user's favorites array and how it is matched.
type Member struct {
	Field   string // array field, e.g. "favRecipes"
	KeyPath string // path compared for membership, e.g. "favBuisnesses.siret"
	Key     any    // value of KeyPath identifying the element
	Value   any    // element appended on push
	Match   any    // $pull condition selecting the element
}

type UserStore struct {
	c *mongo.Collection
}

func NewUserStore(database *mongo.Database) *UserStore {
	return &UserStore{c: database.Collection(UsersCollection)}
}

func (s *UserStore) Create(ctx context.Context, u *models.User) error {
	u.ID = primitive.NewObjectID()
	if u.FavRecipes == nil {
		u.FavRecipes = []string{}
	}
	if u.FavBusinesses == nil {
		u.FavBusinesses = []models.Business{}
	}
	if u.Regime == nil {
		u.Regime = []string{}
	}
	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateUser
		}
		return errs.Store(err)
	}
	return nil
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"username": username})
}

func (s *UserStore) FindByToken(ctx context.Context, token string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"token": token})
}

// PushMember appends m.Value unless an element with m.Key is already present.
// The membership test and the push are one conditional update.
func (s *UserStore) PushMember(ctx context.Context, token string, m Member) (*models.User, error) {
	filter := bson.M{"token": token, m.KeyPath: bson.M{"$ne": m.Key}}
	update := bson.M{"$push": bson.M{m.Field: m.Value}}
	return s.conditionalUpdate(ctx, token, filter, update, ErrAlreadyMember)
}

// PullMember removes the element matched by m.Match, failing with ErrNotMember when
// no element carries m.Key.
func (s *UserStore) PullMember(ctx context.Context, token string, m Member) (*models.User, error) {
	filter := bson.M{"token": token, m.KeyPath: m.Key}
	update := bson.M{"$pull": bson.M{m.Field: m.Match}}
	return s.conditionalUpdate(ctx, token, filter, update, ErrNotMember)
}

// conditionalUpdate applies update when filter matches. On no match it tells a missing
// user apart from a failed membership condition with one extra read.
func (s *UserStore) conditionalUpdate(ctx context.Context, token string, filter, update bson.M, unmatched error) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var u models.User
	err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&u)
	if err == nil {
		return &u, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.Store(err)
	}
	if _, err := s.FindByToken(ctx, token); err != nil {
		return nil, err
	}
	return nil, unmatched
}

func (s *UserStore) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, filter).Decode(&u); err != nil {
		return nil, notFound(err, errs.ErrUserNotFound)
	}
	return &u, nil
}
