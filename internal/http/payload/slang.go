package payload

import (
	"github.com/jellydator/validation"

	"slangopedia/internal/core"
)

type CreateSlangRequest struct {
	Word     string `json:"word"`
	Meaning  string `json:"meaning"`
	Example  string `json:"example"`
	Category string `json:"catagory"`
}

func (c CreateSlangRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Word, validation.Required),
		validation.Field(&c.Meaning, validation.Required),
	)
}

func (c CreateSlangRequest) ToMessage() core.SlangMessage {
	return core.SlangMessage{
		Word:     c.Word,
		Meaning:  c.Meaning,
		Example:  c.Example,
		Category: c.Category,
	}
}

// UpdateSlangRequest carries a partial update; absent fields stay untouched.
type UpdateSlangRequest struct {
	Word     *string `json:"word"`
	Meaning  *string `json:"meaning"`
	Example  *string `json:"example"`
	Category *string `json:"catagory"`
}

func (u UpdateSlangRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Word, validation.NilOrNotEmpty),
		validation.Field(&u.Meaning, validation.NilOrNotEmpty),
	)
}

func (u UpdateSlangRequest) ToPatch() core.SlangPatch {
	return core.SlangPatch{
		Word:     u.Word,
		Meaning:  u.Meaning,
		Example:  u.Example,
		Category: u.Category,
	}
}
