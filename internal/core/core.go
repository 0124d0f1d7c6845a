package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taskboard/internal/repository"
	tokenIssuer "taskboard/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultTokenTTL  = 7 * 24 * time.Hour
	passwordHashCost = 10
)

var (
	ErrUsernameTaken     error = errors.New("username already exists")
	ErrUserNotFound      error = errors.New("user not found")
	ErrIncorrectPassword error = errors.New("incorrect password")
	ErrMissingToken      error = errors.New("no token provided")
	ErrMalformedHeader   error = errors.New("invalid authorization format")
	ErrInvalidToken      error = errors.New("invalid or expired token")
)

// Board is the application service behind the HTTP API: authentication,
// the task board and its employees.
type Board struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
	tokenTTL  time.Duration
}

// NewBoard is a constructor function for the Board type. A non-positive
// tokenTTL falls back to DefaultTokenTTL.
func NewBoard(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, tokenTTL time.Duration) *Board {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &Board{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
		tokenTTL:  tokenTTL,
	}
}

// Register stores a new user with a bcrypt hash of the password.
func (b *Board) Register(ctx context.Context, creds Credentials) error {
	_, err := b.repo.GetUserByUsername(ctx, creds.Username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("get user from db: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), passwordHashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		ID:           uuid.NewString(),
		Username:     creds.Username,
		PasswordHash: string(hash),
	}
	if err := b.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	b.logs.Infow("user registered", "userId", user.ID, "username", user.Username)
	return nil
}

// Login checks the credentials against the stored hash and issues a signed token.
func (b *Board) Login(ctx context.Context, creds Credentials) (Session, error) {
	user, err := b.repo.GetUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Session{}, ErrUserNotFound
		}
		return Session{}, fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return Session{}, ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: b.tokenTTL,
	}
	token := b.jwtIssuer.Generate(tokenInfo)
	signed, err := b.jwtIssuer.Sign(token)
	if err != nil {
		return Session{}, fmt.Errorf("signing token: %w", err)
	}

	return Session{
		Token: signed,
		User: UserSummary{
			ID:       user.ID,
			Username: user.Username,
		},
	}, nil
}

// Authorize verifies the value of an Authorization header. Any header made of
// exactly two space separated parts is accepted as long as the second one is
// a valid token; the scheme word is not checked.
func (b *Board) Authorize(header string) (Identity, error) {
	if header == "" {
		return Identity{}, ErrMissingToken
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 {
		return Identity{}, ErrMalformedHeader
	}

	claims, err := b.jwtIssuer.Validate(parts[1])
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return Identity{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	username, _ := claims["username"].(string)

	return Identity{
		UserID:   userID,
		Username: username,
	}, nil
}
