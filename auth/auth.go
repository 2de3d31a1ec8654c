// Package auth issues and checks the opaque session token every favorites call is keyed by.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"go.uber.org/zap"

	"gourmet/db"
	"gourmet/errs"
	"gourmet/models"
)

const (
	MsgUserExists     = "User already exists"
	MsgBadCredentials = "User not found or wrong password"
	bcryptCost        = 10
)

// UserStore is satisfied by *db.UserStore.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email"`
}

type Service struct {
	users UserStore
	log   *zap.Logger
}

func NewService(users UserStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{users: users, log: log}
}

// NewToken returns 32 random hex characters.
func NewToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Signup creates the user and returns its token. The unique username index decides races.
func (s *Service) Signup(ctx context.Context, in Credentials) (string, error) {
	if blank(in.Username) || blank(in.Password) {
		return "", errs.Validation(errs.MsgMissingFields)
	}
	if _, err := s.users.FindByUsername(ctx, in.Username); err == nil {
		return "", errs.Conflict(MsgUserExists)
	} else if !errors.Is(err, errs.ErrUserNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return "", errs.Store(err)
	}
	u := &models.User{
		Username: in.Username,
		Password: string(hash),
		Token:    NewToken(),
		Email:    in.Email,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, db.ErrDuplicateUser) {
			return "", errs.Conflict(MsgUserExists)
		}
		return "", err
	}
	s.log.Info("user signed up", zap.String("username", u.Username))
	return u.Token, nil
}

// Signin checks the password and returns the stored user. Unknown users and wrong
// passwords are indistinguishable to the caller.
func (s *Service) Signin(ctx context.Context, in Credentials) (*models.User, error) {
	if blank(in.Username) || blank(in.Password) {
		return nil, errs.Validation(errs.MsgMissingFields)
	}
	u, err := s.users.FindByUsername(ctx, in.Username)
	if errors.Is(err, errs.ErrUserNotFound) {
		return nil, errs.NotFound(MsgBadCredentials)
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(in.Password)) != nil {
		return nil, errs.NotFound(MsgBadCredentials)
	}
	return u, nil
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
