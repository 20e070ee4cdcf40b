package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"slangopedia/internal/repository"
)

var ErrSlangNotFound error = errors.New("slang not found")
var ErrWordExists error = errors.New("slang word already exists")
var ErrNotAllowed error = errors.New("not allowed")

const defaultCategory = "general"
const defaultPageLimit = 20

// Catalog owns the slang catalog: creation, lookup, search, ownership-guarded
// mutation and the like/favorite toggles.
type Catalog struct {
	logs   *zap.SugaredLogger
	slangs SlangStore
	users  UserStore
}

func NewCatalog(logger *zap.SugaredLogger, slangs SlangStore, users UserStore) *Catalog {
	return &Catalog{
		logs:   logger,
		slangs: slangs,
		users:  users,
	}
}

func (c *Catalog) Create(ctx context.Context, authorID string, msg SlangMessage) (SlangRecord, error) {
	category := msg.Category
	if category == "" {
		category = defaultCategory
	}

	slang := repository.Slang{
		ID:        uuid.NewString(),
		Word:      msg.Word,
		Meaning:   msg.Meaning,
		Example:   msg.Example,
		Category:  category,
		CreatedBy: authorID,
	}

	created, err := c.slangs.CreateSlang(ctx, slang)
	if err != nil {
		if errors.Is(err, repository.ErrWordExists) {
			return SlangRecord{}, ErrWordExists
		}
		return SlangRecord{}, fmt.Errorf("create slang: %w", err)
	}

	c.logs.Infow("slang created", "slangId", created.ID, "word", created.Word, "userId", authorID)

	return toSlangRecord(created), nil
}

// Get returns one entry with its author resolved to a displayable username.
func (c *Catalog) Get(ctx context.Context, id string) (SlangDetails, error) {
	slang, err := c.slangs.GetSlang(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSlangNotFound) {
			return SlangDetails{}, ErrSlangNotFound
		}
		return SlangDetails{}, fmt.Errorf("get slang: %w", err)
	}

	author := SlangAuthor{ID: slang.CreatedBy}
	user, err := c.users.GetUserByID(ctx, slang.CreatedBy)
	if err == nil {
		author.Username = user.Username
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return SlangDetails{}, fmt.Errorf("get slang author: %w", err)
	}

	return SlangDetails{
		SlangRecord: toSlangRecord(slang),
		CreatedBy:   author,
	}, nil
}

func (c *Catalog) List(ctx context.Context, query ListQuery) ([]SlangRecord, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = defaultPageLimit
	}

	slangs, err := c.slangs.ListSlangs(ctx, repository.SlangFilter{
		Query:    query.Query,
		Category: query.Category,
		Page:     query.Page,
		Limit:    query.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list slangs: %w", err)
	}

	return toSlangRecords(slangs), nil
}

// Update applies the patch if the caller authored the entry. Authorship,
// likes and the liked-by set are not reachable through this path.
func (c *Catalog) Update(ctx context.Context, id, callerID string, patch SlangPatch) (SlangRecord, error) {
	slang, err := c.slangs.GetSlang(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSlangNotFound) {
			return SlangRecord{}, ErrSlangNotFound
		}
		return SlangRecord{}, fmt.Errorf("get slang: %w", err)
	}

	if slang.CreatedBy != callerID {
		return SlangRecord{}, ErrNotAllowed
	}

	if patch.Word != nil {
		slang.Word = *patch.Word
	}
	if patch.Meaning != nil {
		slang.Meaning = *patch.Meaning
	}
	if patch.Example != nil {
		slang.Example = *patch.Example
	}
	if patch.Category != nil {
		slang.Category = *patch.Category
	}

	if err := c.slangs.UpdateSlang(ctx, slang); err != nil {
		if errors.Is(err, repository.ErrWordExists) {
			return SlangRecord{}, ErrWordExists
		}
		if errors.Is(err, repository.ErrSlangNotFound) {
			return SlangRecord{}, ErrSlangNotFound
		}
		return SlangRecord{}, fmt.Errorf("update slang: %w", err)
	}

	c.logs.Infow("slang updated", "slangId", id, "userId", callerID)

	return toSlangRecord(slang), nil
}

func (c *Catalog) Delete(ctx context.Context, id, callerID string) error {
	slang, err := c.slangs.GetSlang(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSlangNotFound) {
			return ErrSlangNotFound
		}
		return fmt.Errorf("get slang: %w", err)
	}

	if slang.CreatedBy != callerID {
		return ErrNotAllowed
	}

	if err := c.slangs.DeleteSlang(ctx, id, callerID); err != nil {
		if errors.Is(err, repository.ErrSlangNotFound) {
			return ErrSlangNotFound
		}
		return fmt.Errorf("delete slang: %w", err)
	}

	c.logs.Infow("slang deleted", "slangId", id, "userId", callerID)

	return nil
}

func (c *Catalog) ToggleLike(ctx context.Context, id, userID string) (int, error) {
	likes, err := c.slangs.ToggleLike(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSlangNotFound) {
			return 0, ErrSlangNotFound
		}
		return 0, fmt.Errorf("toggle like: %w", err)
	}

	return likes, nil
}

func (c *Catalog) ToggleFavorite(ctx context.Context, userID, id string) ([]string, error) {
	favorites, err := c.users.ToggleFavorite(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrSlangNotFound) {
			return nil, ErrSlangNotFound
		}
		return nil, fmt.Errorf("toggle favorite: %w", err)
	}

	return favorites, nil
}
