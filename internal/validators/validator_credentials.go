package validators

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/models"
)

const (
	// FieldLogin targets the username.
	FieldLogin = "login"

	// FieldPassword targets the plain-text password typed by the user.
	FieldPassword = "password"
)

// CredentialsValidator checks login forms before they reach the auth service
// storage. Only emptiness is checked; the password itself is never trimmed.
type CredentialsValidator struct{}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var user models.User
	switch value := obj.(type) {
	case models.User:
		user = value
	case *models.User:
		user = *value
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if blank(user.Login) {
				return invalid(FieldLogin, ErrEmptyLogin)
			}
		case FieldPassword:
			if user.Password == "" {
				return invalid(FieldPassword, ErrEmptyPassword)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
