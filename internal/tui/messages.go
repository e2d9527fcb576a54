package tui

import (
	"github.com/MKhiriev/go-stock-keeper/models"
)

// NavigateTo switches the router to Page. A non-nil Payload is delivered to
// the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login page once the auth service answered.
type LoginResult struct {
	Err      error
	Username string
	Session  models.Session
}

// RegisterResult is produced by the register page once the auth service answered.
type RegisterResult struct {
	Err      error
	Username string
}

// RegisterSuccessNotice is shown on the menu after a successful registration.
type RegisterSuccessNotice struct {
	Username string
}

type productsLoadedMsg struct {
	items []models.Product
	query string
	err   error
}

type productSavedMsg struct {
	product models.Product
	created bool
	err     error
}

type productDeletedMsg struct {
	product models.Product
	err     error
}
