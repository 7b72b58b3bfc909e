package service

import (
	"errors"
	"time"

	"github.com/beka-birhanu/maze-editor/identity"
	"github.com/beka-birhanu/maze-editor/service/i"
	"github.com/google/uuid"
)

const (
	tokenLifetime = 24 * time.Hour

	// ClaimAuthorID is the token claim carrying the author's ID.
	ClaimAuthorID = "authorID"
	// ClaimUsername is the token claim carrying the author's username.
	ClaimUsername = "username"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)

// Auth registers authors and issues tokens for them.
type Auth struct {
	authorRepo i.AuthorRepo
	tokenizer  i.Tokenizer
}

// NewAuthService creates an Auth service.
func NewAuthService(authorRepo i.AuthorRepo, tokenizer i.Tokenizer) (*Auth, error) {
	if authorRepo == nil || tokenizer == nil {
		return nil, ErrMissingDependency
	}

	return &Auth{
		authorRepo: authorRepo,
		tokenizer:  tokenizer,
	}, nil
}

// Register creates a new author account.
func (a *Auth) Register(username, password string) error {
	if _, err := a.authorRepo.ByUsername(username); err == nil {
		return ErrUsernameTaken
	}

	author, err := identity.NewAuthor(identity.AuthorConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return err
	}

	return a.authorRepo.Save(author)
}

// SignIn checks the credentials and returns the author with a fresh token.
func (a *Auth) SignIn(username, password string) (*identity.Author, string, error) {
	author, err := a.authorRepo.ByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !author.VerifyPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		ClaimAuthorID: author.ID,
		ClaimUsername: author.Username,
	}, tokenLifetime)
	if err != nil {
		return nil, "", err
	}

	return author, token, nil
}
