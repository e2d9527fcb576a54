package service

import (
	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	ProductService ProductService
}

// NewServices builds the service layer. ProductService is the validated
// wrapper around the strict core.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	productService := NewProductService(storages.ProductRepository, logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		ProductService: NewProductValidationService(cfg.App.SearchMinLength).Wrap(productService),
	}
}
