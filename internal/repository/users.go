package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"slangopedia/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrEmailExists error = errors.New("email already exists")

type UserRepository struct {
	db *db.PostgresDB
}

func NewUserRepository(database *db.PostgresDB) *UserRepository {
	return &UserRepository{
		db: database,
	}
}

// CreateUser inserts a new user. The duplicate-email check runs inside the
// insert transaction and is backed by the unique index, so a concurrent
// register with the same email cannot slip through between check and insert.
func (r *UserRepository) CreateUser(ctx context.Context, user User) (User, error) {
	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return fmt.Errorf("check email exists: %w", err)
		}
		if count > 0 {
			return ErrEmailExists
		}

		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEmailExists
			}
			return fmt.Errorf("insert user: %w", err)
		}
		return nil
	})
	if err != nil {
		return User{}, err
	}

	return user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User

	err := r.db.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (User, error) {
	var user User

	err := r.db.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

// GetFavorites returns the user's favorite slangs in the order they were added.
func (r *UserRepository) GetFavorites(ctx context.Context, userID string) ([]Slang, error) {
	tx := r.db.DB.WithContext(ctx)

	var favorites []Favorite
	if err := tx.Where("user_id = ?", userID).Order("created_at ASC").Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("get favorites: %w", err)
	}
	if len(favorites) == 0 {
		return []Slang{}, nil
	}

	ids := make([]string, 0, len(favorites))
	for _, fav := range favorites {
		ids = append(ids, fav.SlangID)
	}

	var slangs []Slang
	if err := tx.Where("id IN ?", ids).Find(&slangs).Error; err != nil {
		return nil, fmt.Errorf("get favorite slangs: %w", err)
	}

	slangs, err := loadLikedBy(tx, slangs)
	if err != nil {
		return nil, err
	}

	// preserve insertion order
	byID := make(map[string]Slang, len(slangs))
	for _, slang := range slangs {
		byID[slang.ID] = slang
	}
	ordered := make([]Slang, 0, len(slangs))
	for _, id := range ids {
		if slang, ok := byID[id]; ok {
			ordered = append(ordered, slang)
		}
	}

	return ordered, nil
}

// ToggleFavorite flips the slang's membership in the user's favorites set and
// returns the resulting set, all within one transaction.
func (r *UserRepository) ToggleFavorite(ctx context.Context, userID, slangID string) ([]string, error) {
	var favoriteIDs []string

	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Slang{}).Where("id = ?", slangID).Count(&count).Error; err != nil {
			return fmt.Errorf("check slang exists: %w", err)
		}
		if count == 0 {
			return ErrSlangNotFound
		}

		res := tx.Where("user_id = ? AND slang_id = ?", userID, slangID).Delete(&Favorite{})
		if res.Error != nil {
			return fmt.Errorf("remove favorite: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			if err := tx.Create(&Favorite{UserID: userID, SlangID: slangID}).Error; err != nil {
				return fmt.Errorf("add favorite: %w", err)
			}
		}

		var favorites []Favorite
		if err := tx.Where("user_id = ?", userID).Order("created_at ASC").Find(&favorites).Error; err != nil {
			return fmt.Errorf("get favorites: %w", err)
		}

		favoriteIDs = make([]string, 0, len(favorites))
		for _, fav := range favorites {
			favoriteIDs = append(favoriteIDs, fav.SlangID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return favoriteIDs, nil
}
