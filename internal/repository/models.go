package repository

import "time"

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"` // stored lowercase
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Slang struct {
	ID        string   `gorm:"primaryKey;autoIncrement:false"`
	Word      string   `gorm:"type:varchar(255);uniqueIndex;not null"`
	Meaning   string   `gorm:"type:text;not null"`
	Example   string   `gorm:"type:text"`
	Category  string   `gorm:"type:varchar(100);not null;default:general"`
	CreatedBy string   `gorm:"not null;index"`
	Likes     int      `gorm:"not null;default:0"` // always |slang_likes| for this slang
	LikedBy   []string `gorm:"-"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlangLike is one element of a slang's liked-by set.
type SlangLike struct {
	SlangID string `gorm:"primaryKey;autoIncrement:false"`
	UserID  string `gorm:"primaryKey;autoIncrement:false"`
}

// Favorite is one element of a user's favorites set. CreatedAt keeps display order stable.
type Favorite struct {
	UserID    string `gorm:"primaryKey;autoIncrement:false"`
	SlangID   string `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time
}
