package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ProductServiceWrapper

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// AuthService registers users and checks their credentials.
type AuthService interface {
	// Register stores a new user. It returns store.ErrLoginAlreadyExists for
	// a taken username and ErrInvalidDataProvided for empty credentials.
	Register(ctx context.Context, user models.User) error
	// Validate reports whether user.Login exists and user.Password matches it.
	Validate(ctx context.Context, user models.User) (bool, error)
	// ResolveUserID returns the id stored for login, or models.UnknownUserID
	// with store.ErrNoUserWasFound.
	ResolveUserID(ctx context.Context, login string) (int64, error)
	// Login validates user and opens a session for it.
	Login(ctx context.Context, user models.User) (models.Session, error)
}

// ProductService runs product operations on behalf of a session.
type ProductService interface {
	Add(ctx context.Context, session models.Session, product models.Product) (models.Product, error)
	ListAll(ctx context.Context, session models.Session) ([]models.Product, error)
	Search(ctx context.Context, session models.Session, text string) ([]models.Product, error)
	Update(ctx context.Context, session models.Session, change models.ProductChange) (models.Product, error)
	Delete(ctx context.Context, session models.Session, product models.Product) error
}

// ProductServiceWrapper defines middleware composition for ProductService.
// Implementations wrap an existing ProductService to add behavior such as
// logging or validating.
type ProductServiceWrapper interface {
	Wrap(ProductService) ProductService // returns a decorated ProductService applying additional behavior
}

// IDGenerator produces unique session identifiers.
type IDGenerator interface {
	Generate() string
}
