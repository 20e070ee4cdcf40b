package core

import (
	"context"

	"github.com/golang-jwt/jwt"

	"slangopedia/internal/repository"
	tokenIssuer "slangopedia/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserStore . UserStore
type UserStore interface {
	CreateUser(ctx context.Context, user repository.User) (repository.User, error)
	GetUserByEmail(ctx context.Context, email string) (repository.User, error)
	GetUserByID(ctx context.Context, id string) (repository.User, error)
	GetFavorites(ctx context.Context, userID string) ([]repository.Slang, error)
	ToggleFavorite(ctx context.Context, userID, slangID string) ([]string, error)
}

//counterfeiter:generate -o fake -fake-name SlangStore . SlangStore
type SlangStore interface {
	CreateSlang(ctx context.Context, slang repository.Slang) (repository.Slang, error)
	GetSlang(ctx context.Context, id string) (repository.Slang, error)
	ListSlangs(ctx context.Context, filter repository.SlangFilter) ([]repository.Slang, error)
	UpdateSlang(ctx context.Context, slang repository.Slang) error
	DeleteSlang(ctx context.Context, id, callerID string) error
	ToggleLike(ctx context.Context, slangID, userID string) (int, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
