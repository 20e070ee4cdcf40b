package handler

import (
	"context"
	"net/http"

	"slangopedia/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name AuthService . AuthService
type AuthService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (core.AuthResult, error)
	Login(ctx context.Context, msg core.LoginMessage) (core.AuthResult, error)
	Profile(ctx context.Context, userID string) (core.UserProfile, error)
}

//counterfeiter:generate -o fake -fake-name CatalogService . CatalogService
type CatalogService interface {
	Create(ctx context.Context, authorID string, msg core.SlangMessage) (core.SlangRecord, error)
	Get(ctx context.Context, id string) (core.SlangDetails, error)
	List(ctx context.Context, query core.ListQuery) ([]core.SlangRecord, error)
	Update(ctx context.Context, id, callerID string, patch core.SlangPatch) (core.SlangRecord, error)
	Delete(ctx context.Context, id, callerID string) error
	ToggleLike(ctx context.Context, id, userID string) (int, error)
	ToggleFavorite(ctx context.Context, userID, id string) ([]string, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
