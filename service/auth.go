package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/beka-birhanu/mazeprint-api/domain"
	"github.com/beka-birhanu/mazeprint-api/service/i"
)

const tokenLifetime = 24 * time.Hour

// Auth registers users and signs them in.
type Auth struct {
	userRepo  i.UserRepo
	tokenizer i.Tokenizer
}

// NewAuthService creates an Auth backed by the given repo and tokenizer.
func NewAuthService(userRepo i.UserRepo, tokenizer i.Tokenizer) (*Auth, error) {
	if userRepo == nil || tokenizer == nil {
		return nil, errors.New("auth service requires a user repo and a tokenizer")
	}
	return &Auth{userRepo: userRepo, tokenizer: tokenizer}, nil
}

// Register creates a new user account.
func (a *Auth) Register(username, password string) error {
	user, err := domain.NewUser(domain.UserConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return err
	}

	return a.userRepo.Save(user)
}

// SignIn verifies the credentials and returns the user with a fresh token.
func (a *Auth) SignIn(username, password string) (*domain.User, string, error) {
	user, err := a.userRepo.ByUsername(username)
	if err != nil {
		return nil, "", errors.New("invalid username or password")
	}

	if !user.VerifyPassword(password) {
		return nil, "", errors.New("invalid username or password")
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"userID":   user.ID.String(),
		"username": user.Username,
	}, tokenLifetime)

	return user, token, err
}
