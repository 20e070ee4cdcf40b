package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"slangopedia/internal/repository"
	tokenIssuer "slangopedia/pkg/jwt"
)

var ErrEmailExists error = errors.New("email already exists")
var ErrInvalidCredentials error = errors.New("invalid credentials")
var ErrUserNotFound error = errors.New("user not found")

// Auth registers users, verifies credentials and resolves profiles.
type Auth struct {
	logs       *zap.SugaredLogger
	users      UserStore
	jwtIssuer  JWTIssuer
	expiration time.Duration
}

func NewAuth(logger *zap.SugaredLogger, users UserStore, jwt JWTIssuer, expiration time.Duration) *Auth {
	return &Auth{
		logs:       logger,
		users:      users,
		jwtIssuer:  jwt,
		expiration: expiration,
	}
}

// Register hashes the password, persists the user and issues a session token.
// The plaintext password never reaches the store or the logs.
func (a *Auth) Register(ctx context.Context, msg RegisterMessage) (AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		ID:           uuid.NewString(),
		Username:     strings.TrimSpace(msg.Username),
		Email:        strings.ToLower(msg.Email),
		PasswordHash: string(hash),
	}

	created, err := a.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return AuthResult{}, ErrEmailExists
		}
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	token, err := a.issueToken(created)
	if err != nil {
		return AuthResult{}, err
	}

	a.logs.Infow("user registered", "userId", created.ID)

	return AuthResult{Token: token, User: toUserRecord(created)}, nil
}

// Login verifies the credentials against the stored hash. A missing user and
// a wrong password are indistinguishable to the caller.
func (a *Auth) Login(ctx context.Context, msg LoginMessage) (AuthResult, error) {
	user, err := a.users.GetUserByEmail(ctx, strings.ToLower(msg.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, fmt.Errorf("get user by email: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := a.issueToken(user)
	if err != nil {
		return AuthResult{}, err
	}

	a.logs.Infow("user logged in", "userId", user.ID)

	return AuthResult{Token: token, User: toUserRecord(user)}, nil
}

// Profile returns the user's profile with favorites resolved to full entries.
func (a *Auth) Profile(ctx context.Context, userID string) (UserProfile, error) {
	user, err := a.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserProfile{}, ErrUserNotFound
		}
		return UserProfile{}, fmt.Errorf("get user by id: %w", err)
	}

	favorites, err := a.users.GetFavorites(ctx, userID)
	if err != nil {
		return UserProfile{}, fmt.Errorf("get favorites: %w", err)
	}

	return UserProfile{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Favorites: toSlangRecords(favorites),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

func (a *Auth) issueToken(user repository.User) (string, error) {
	token := a.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		Username:   user.Username,
		Subject:    user.ID,
		Expiration: a.expiration,
	})

	signed, err := a.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}
