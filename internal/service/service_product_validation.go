package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/validators"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// ProductValidationService guards a ProductService. Every call is checked
// for a live session and complete input before it is passed on; rejected
// calls never reach storage.
type ProductValidationService struct {
	inner           ProductService
	validator       validators.Validator
	searchMinLength int
}

// NewProductValidationService returns a wrapper that lists every product
// instead of searching when the trimmed search text is shorter than
// searchMinLength runes.
func NewProductValidationService(searchMinLength int) ProductServiceWrapper {
	return &ProductValidationService{
		validator:       validators.NewProductValidator(),
		searchMinLength: searchMinLength,
	}
}

func (v *ProductValidationService) Add(ctx context.Context, session models.Session, product models.Product) (models.Product, error) {
	if err := v.validator.Validate(ctx, session); err != nil {
		return models.Product{}, err
	}

	product = product.Trimmed()
	if err := v.validator.Validate(ctx, product); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("product rejected")
		return models.Product{}, err
	}

	return v.inner.Add(ctx, session, product)
}

func (v *ProductValidationService) ListAll(ctx context.Context, session models.Session) ([]models.Product, error) {
	if err := v.validator.Validate(ctx, session); err != nil {
		return nil, err
	}

	return v.inner.ListAll(ctx, session)
}

func (v *ProductValidationService) Search(ctx context.Context, session models.Session, text string) ([]models.Product, error) {
	if err := v.validator.Validate(ctx, session); err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < v.searchMinLength {
		return v.inner.ListAll(ctx, session)
	}

	return v.inner.Search(ctx, session, text)
}

func (v *ProductValidationService) Update(ctx context.Context, session models.Session, change models.ProductChange) (models.Product, error) {
	if err := v.validator.Validate(ctx, session); err != nil {
		return models.Product{}, err
	}

	change.After = change.After.Trimmed()
	if err := v.validator.Validate(ctx, change); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Int64("product_id", change.Before.ID).Msg("product change rejected")
		return models.Product{}, err
	}

	return v.inner.Update(ctx, session, change)
}

func (v *ProductValidationService) Delete(ctx context.Context, session models.Session, product models.Product) error {
	if err := v.validator.Validate(ctx, session); err != nil {
		return err
	}

	if err := v.validator.Validate(ctx, product, validators.FieldProductID); err != nil {
		return err
	}

	return v.inner.Delete(ctx, session, product)
}

func (v *ProductValidationService) Wrap(wrapper ProductService) ProductService {
	v.inner = wrapper
	return v
}
