package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// They are also reported in [ValidationError.Field].
const (
	// FieldSession targets the logged-in session.
	FieldSession = "session"

	// FieldProductID targets the surrogate id of a selected product.
	FieldProductID = "product_id"

	// FieldName targets the product name.
	FieldName = "name"

	// FieldSKU targets the stock keeping unit.
	FieldSKU = "sku"

	// FieldSupplier targets the supplier; on a change it also enforces that
	// the supplier stays the same.
	FieldSupplier = "supplier"
)

// ProductValidator implements the Validator interface for
// models.Session, models.Product and models.ProductChange.
//
// Required text fields are checked after trimming; quantity is optional.
type ProductValidator struct{}

// NewProductValidator constructs a new ProductValidator
// and returns it as the Validator interface.
func NewProductValidator() Validator {
	return &ProductValidator{}
}

func (v *ProductValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Session:
		return v.validateSession(value)
	case *models.Session:
		return v.validateSession(*value)

	case models.Product:
		return v.validateProduct(value, fields...)
	case *models.Product:
		return v.validateProduct(*value, fields...)

	case models.ProductChange:
		return v.validateChange(value, fields...)
	case *models.ProductChange:
		return v.validateChange(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ProductValidator) validateSession(session models.Session) error {
	if !session.Valid() {
		return invalid(FieldSession, ErrNoSession)
	}
	return nil
}

func (v *ProductValidator) validateProduct(product models.Product, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldSKU, FieldSupplier}
	}

	for _, f := range fields {
		switch f {
		case FieldProductID:
			if product.ID <= 0 {
				return invalid(FieldProductID, ErrNothingSelected)
			}
		case FieldName:
			if blank(product.Name) {
				return invalid(FieldName, ErrEmptyName)
			}
		case FieldSKU:
			if blank(product.SKU) {
				return invalid(FieldSKU, ErrEmptySKU)
			}
		case FieldSupplier:
			if blank(product.Supplier) {
				return invalid(FieldSupplier, ErrEmptySupplier)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateChange checks that a stored product is selected, the new values
// are complete and the supplier was left alone.
func (v *ProductValidator) validateChange(change models.ProductChange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProductID, FieldName, FieldSKU, FieldSupplier}
	}

	for _, f := range fields {
		switch f {
		case FieldProductID:
			if err := v.validateProduct(change.Before, FieldProductID); err != nil {
				return err
			}
		case FieldName, FieldSKU:
			if err := v.validateProduct(change.After, f); err != nil {
				return err
			}
		case FieldSupplier:
			if err := v.validateProduct(change.After, FieldSupplier); err != nil {
				return err
			}
			if strings.TrimSpace(change.After.Supplier) != strings.TrimSpace(change.Before.Supplier) {
				return invalid(FieldSupplier, ErrSupplierChangeNotAllowed)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
