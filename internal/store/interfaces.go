package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// UserRepository persists registered accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// ProductRepository persists products. Every method is scoped to userID and
// never touches rows of another owner.
type ProductRepository interface {
	AddProduct(ctx context.Context, product models.Product, userID int64) (models.Product, error)
	GetAllProducts(ctx context.Context, userID int64) ([]models.Product, error)
	SearchProducts(ctx context.Context, text string, userID int64) ([]models.Product, error)

	// UpdateProductBySupplier rewrites name, SKU and quantity of every product
	// of userID whose supplier equals product.Supplier. Products sharing a
	// supplier are all overwritten.
	UpdateProductBySupplier(ctx context.Context, product models.Product, userID int64) (int64, error)
	// DeleteProductsBySupplier removes every product of userID with the given
	// supplier.
	DeleteProductsBySupplier(ctx context.Context, supplier string, userID int64) (int64, error)

	UpdateProduct(ctx context.Context, product models.Product, userID int64) error
	DeleteProduct(ctx context.Context, productID, userID int64) error
}
