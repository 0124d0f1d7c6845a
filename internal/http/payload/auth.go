package payload

import (
	"errors"
	"strings"

	"taskboard/internal/core"

	"github.com/jellydator/validation"
)

// maxPasswordBytes is the longest input bcrypt will hash.
const maxPasswordBytes = 72

var errPasswordTooLong = errors.New("must be at most 72 bytes long")

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a AuthRequest) Validate() error {
	a.Username = strings.TrimSpace(a.Username)
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required, validation.Length(1, 255)),
		validation.Field(&a.Password, validation.Required, validation.By(passwordBytes)),
	)
}

// ToCoreCredentials trims the username; the password is passed through untouched.
func (a AuthRequest) ToCoreCredentials() core.Credentials {
	return core.Credentials{
		Username: strings.TrimSpace(a.Username),
		Password: a.Password,
	}
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func NewLoginResponse(session core.Session) LoginResponse {
	return LoginResponse{
		Token: session.Token,
		User: UserResponse{
			ID:       session.User.ID,
			Username: session.User.Username,
		},
	}
}

func passwordBytes(value any) error {
	s, _ := value.(string)
	if len(s) > maxPasswordBytes {
		return errPasswordTooLong
	}
	return nil
}
