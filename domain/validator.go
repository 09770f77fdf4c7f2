package domain

import (
	"unicode"

	"github.com/go-playground/validator/v10"

	"sockchat/errors"
)

var validate = validator.New()

type registerRequest struct {
	Username string `validate:"required,min=1,max=32"`
}

// ValidateUsername rejects usernames that cannot be registered: empty,
// oversized, containing control characters that would corrupt broadcasts,
// or containing the storage key separators. '|' joins the two usernames of
// a conversation key and ':' delimits key segments, so a username carrying
// either would make distinct conversations collide on one key range.
func ValidateUsername(username string) error {
	if err := validate.Struct(registerRequest{Username: username}); err != nil {
		return errors.ErrInvalidUsername
	}
	for _, r := range username {
		if unicode.IsControl(r) || r == '|' || r == ':' {
			return errors.ErrInvalidUsername
		}
	}
	return nil
}
