package core

import (
	"time"

	"slangopedia/internal/repository"
)

type RegisterMessage struct {
	Username string
	Email    string
	Password string
}

type LoginMessage struct {
	Email    string
	Password string
}

type UserRecord struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AuthResult struct {
	Token string     `json:"token"`
	User  UserRecord `json:"user"`
}

type UserProfile struct {
	ID        string        `json:"id"`
	Username  string        `json:"username"`
	Email     string        `json:"email"`
	Favorites []SlangRecord `json:"favorites"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type SlangMessage struct {
	Word     string
	Meaning  string
	Example  string
	Category string
}

type SlangPatch struct {
	Word     *string
	Meaning  *string
	Example  *string
	Category *string
}

type ListQuery struct {
	Query    string
	Category string
	Page     int
	Limit    int
}

type SlangRecord struct {
	ID        string    `json:"id"`
	Word      string    `json:"word"`
	Meaning   string    `json:"meaning"`
	Example   string    `json:"example,omitempty"`
	Category  string    `json:"catagory"`
	CreatedBy string    `json:"createdBy"`
	Likes     int       `json:"likes"`
	LikedBy   []string  `json:"likedBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SlangAuthor struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// SlangDetails is a SlangRecord with the author resolved; its CreatedBy
// object shadows the embedded plain id on serialization.
type SlangDetails struct {
	SlangRecord
	CreatedBy SlangAuthor `json:"createdBy"`
}

func toUserRecord(user repository.User) UserRecord {
	return UserRecord{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

func toSlangRecord(slang repository.Slang) SlangRecord {
	likedBy := slang.LikedBy
	if likedBy == nil {
		likedBy = []string{}
	}
	return SlangRecord{
		ID:        slang.ID,
		Word:      slang.Word,
		Meaning:   slang.Meaning,
		Example:   slang.Example,
		Category:  slang.Category,
		CreatedBy: slang.CreatedBy,
		Likes:     slang.Likes,
		LikedBy:   likedBy,
		CreatedAt: slang.CreatedAt,
		UpdatedAt: slang.UpdatedAt,
	}
}

func toSlangRecords(slangs []repository.Slang) []SlangRecord {
	records := make([]SlangRecord, len(slangs))
	for i, slang := range slangs {
		records[i] = toSlangRecord(slang)
	}
	return records
}
