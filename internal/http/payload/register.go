package payload

import (
	"regexp"

	"github.com/jellydator/validation"

	"slangopedia/internal/core"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(3, 0)),
		validation.Field(&r.Email, validation.Required, validation.Match(emailRegex)),
		validation.Field(&r.Password, validation.Required, validation.Length(3, 0)),
	)
}

func (r RegisterRequest) ToMessage() core.RegisterMessage {
	return core.RegisterMessage{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}
