package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"slangopedia/internal/db"
)

var ErrSlangNotFound error = errors.New("slang not found")
var ErrWordExists error = errors.New("slang word already exists")

type SlangFilter struct {
	Query    string
	Category string
	Page     int
	Limit    int
}

type SlangRepository struct {
	db *db.PostgresDB
}

func NewSlangRepository(database *db.PostgresDB) *SlangRepository {
	return &SlangRepository{
		db: database,
	}
}

// CreateSlang inserts a new slang. The duplicate check is a case-insensitive
// full-word match and runs inside the insert transaction.
func (r *SlangRepository) CreateSlang(ctx context.Context, slang Slang) (Slang, error) {
	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Slang{}).Where("LOWER(word) = LOWER(?)", slang.Word).Count(&count).Error; err != nil {
			return fmt.Errorf("check word exists: %w", err)
		}
		if count > 0 {
			return ErrWordExists
		}

		if err := tx.Create(&slang).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrWordExists
			}
			return fmt.Errorf("insert slang: %w", err)
		}
		return nil
	})
	if err != nil {
		return Slang{}, err
	}

	slang.LikedBy = []string{}
	return slang, nil
}

func (r *SlangRepository) GetSlang(ctx context.Context, id string) (Slang, error) {
	tx := r.db.DB.WithContext(ctx)

	var slang Slang
	err := tx.Where("id = ?", id).First(&slang).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Slang{}, ErrSlangNotFound
		}
		return Slang{}, fmt.Errorf("get slang by id: %w", err)
	}

	slangs, err := loadLikedBy(tx, []Slang{slang})
	if err != nil {
		return Slang{}, err
	}

	return slangs[0], nil
}

// ListSlangs filters, sorts and paginates the catalog. Most-liked entries come
// first; ties break on descending author id to keep pages identical across calls.
func (r *SlangRepository) ListSlangs(ctx context.Context, filter SlangFilter) ([]Slang, error) {
	query := r.db.DB.WithContext(ctx).Model(&Slang{})

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("word ILIKE ? OR meaning ILIKE ?", pattern, pattern)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var slangs []Slang
	err := query.
		Order("likes DESC").
		Order("created_by DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&slangs).Error
	if err != nil {
		return nil, fmt.Errorf("list slangs: %w", err)
	}

	return loadLikedBy(r.db.DB.WithContext(ctx), slangs)
}

// UpdateSlang writes the mutable fields. The created_by predicate on the
// update itself means an entry that changed hands mid-request is not touched.
func (r *SlangRepository) UpdateSlang(ctx context.Context, slang Slang) error {
	res := r.db.DB.WithContext(ctx).Model(&Slang{}).
		Where("id = ? AND created_by = ?", slang.ID, slang.CreatedBy).
		Updates(map[string]any{
			"word":     slang.Word,
			"meaning":  slang.Meaning,
			"example":  slang.Example,
			"category": slang.Category,
		})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return ErrWordExists
		}
		return fmt.Errorf("update slang: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrSlangNotFound
	}

	return nil
}

func (r *SlangRepository) DeleteSlang(ctx context.Context, id, callerID string) error {
	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND created_by = ?", id, callerID).Delete(&Slang{})
		if res.Error != nil {
			return fmt.Errorf("delete slang: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrSlangNotFound
		}

		if err := tx.Where("slang_id = ?", id).Delete(&SlangLike{}).Error; err != nil {
			return fmt.Errorf("delete slang likes: %w", err)
		}
		if err := tx.Where("slang_id = ?", id).Delete(&Favorite{}).Error; err != nil {
			return fmt.Errorf("delete slang favorites: %w", err)
		}
		return nil
	})

	return err
}

// ToggleLike flips the user's membership in the slang's liked-by set and
// recomputes the likes counter from the set size in the same transaction, so
// the two can never be observed out of sync.
func (r *SlangRepository) ToggleLike(ctx context.Context, slangID, userID string) (int, error) {
	var likes int

	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slang Slang
		if err := tx.Where("id = ?", slangID).First(&slang).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlangNotFound
			}
			return fmt.Errorf("get slang by id: %w", err)
		}

		res := tx.Where("slang_id = ? AND user_id = ?", slangID, userID).Delete(&SlangLike{})
		if res.Error != nil {
			return fmt.Errorf("remove like: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			if err := tx.Create(&SlangLike{SlangID: slangID, UserID: userID}).Error; err != nil {
				return fmt.Errorf("add like: %w", err)
			}
		}

		var count int64
		if err := tx.Model(&SlangLike{}).Where("slang_id = ?", slangID).Count(&count).Error; err != nil {
			return fmt.Errorf("count likes: %w", err)
		}

		if err := tx.Model(&Slang{}).Where("id = ?", slangID).Update("likes", count).Error; err != nil {
			return fmt.Errorf("update likes: %w", err)
		}

		likes = int(count)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return likes, nil
}

func loadLikedBy(tx *gorm.DB, slangs []Slang) ([]Slang, error) {
	if len(slangs) == 0 {
		return []Slang{}, nil
	}

	ids := make([]string, 0, len(slangs))
	for _, slang := range slangs {
		ids = append(ids, slang.ID)
	}

	var likes []SlangLike
	if err := tx.Where("slang_id IN ?", ids).Find(&likes).Error; err != nil {
		return nil, fmt.Errorf("load liked by: %w", err)
	}

	bySlang := make(map[string][]string, len(slangs))
	for _, like := range likes {
		bySlang[like.SlangID] = append(bySlang[like.SlangID], like.UserID)
	}

	for i := range slangs {
		likedBy := bySlang[slangs[i].ID]
		if likedBy == nil {
			likedBy = []string{}
		}
		slangs[i].LikedBy = likedBy
	}

	return slangs, nil
}
