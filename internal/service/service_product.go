package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// productService is the strict core of ProductService. It trusts its input
// and maps calls onto the repository scoped by session.UserID; input checks
// live in ProductValidationService.
type productService struct {
	productRepository store.ProductRepository
	logger            *logger.Logger
}

func NewProductService(productRepository store.ProductRepository, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		logger:            logger,
	}
}

func (p *productService) Add(ctx context.Context, session models.Session, product models.Product) (models.Product, error) {
	stored, err := p.productRepository.AddProduct(ctx, product, session.UserID)
	if err != nil {
		return models.Product{}, fmt.Errorf("add product: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("user_id", session.UserID).
		Int64("product_id", stored.ID).
		Msg("product added")
	return stored, nil
}

func (p *productService) ListAll(ctx context.Context, session models.Session) ([]models.Product, error) {
	products, err := p.productRepository.GetAllProducts(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (p *productService) Search(ctx context.Context, session models.Session, text string) ([]models.Product, error) {
	products, err := p.productRepository.SearchProducts(ctx, text, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}

// Update writes change.After over the row addressed by change.Before.ID.
// The supplier of the stored row is kept.
func (p *productService) Update(ctx context.Context, session models.Session, change models.ProductChange) (models.Product, error) {
	updated := change.After
	updated.ID = change.Before.ID
	updated.Supplier = change.Before.Supplier
	updated.UserID = session.UserID

	if err := p.productRepository.UpdateProduct(ctx, updated, session.UserID); err != nil {
		return models.Product{}, fmt.Errorf("update product: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("user_id", session.UserID).
		Int64("product_id", updated.ID).
		Msg("product updated")
	return updated, nil
}

func (p *productService) Delete(ctx context.Context, session models.Session, product models.Product) error {
	if err := p.productRepository.DeleteProduct(ctx, product.ID, session.UserID); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("user_id", session.UserID).
		Int64("product_id", product.ID).
		Msg("product deleted")
	return nil
}
