package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// productRepository is the SQL-backed implementation of [ProductRepository].
// It runs product CRUD against the "products" table through the embedded
// [*DB] connection.
type productRepository struct {
	*DB
	logger *logger.Logger
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		DB:     db,
		logger: logger,
	}
}

// AddProduct inserts product for userID unconditionally and returns the stored
// row with its generated ID.
func (p *productRepository) AddProduct(ctx context.Context, product models.Product, userID int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.queries.insertProduct(product, userID)
	if err != nil {
		log.Err(err).Str("func", "productRepository.AddProduct").Msg("failed to create query")
		return models.Product{}, storageError("add product", ErrBuildingSQLQuery, err)
	}

	id, err := p.insertReturningID(ctx, query, args)
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.AddProduct").
			Int64("user_id", userID).
			Str("classification", p.classify(err).String()).
			Msg("failed to insert product")
		return models.Product{}, storageError("add product", ErrExecutingStatement, err)
	}

	product.ID = id
	product.UserID = userID
	return product, nil
}

// GetAllProducts returns every product of userID in insertion order.
func (p *productRepository) GetAllProducts(ctx context.Context, userID int64) ([]models.Product, error) {
	query, args, err := p.queries.selectProducts(userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "productRepository.GetAllProducts").Msg("failed to create query")
		return nil, storageError("list products", ErrBuildingSQLQuery, err)
	}

	return p.queryProducts(ctx, "list products", query, args, userID)
}

// SearchProducts returns the products of userID whose name, SKU, supplier or
// quantity contains text, ignoring case.
func (p *productRepository) SearchProducts(ctx context.Context, text string, userID int64) ([]models.Product, error) {
	query, args, err := p.queries.searchProducts(text, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "productRepository.SearchProducts").Msg("failed to create query")
		return nil, storageError("search products", ErrBuildingSQLQuery, err)
	}

	return p.queryProducts(ctx, "search products", query, args, userID)
}

func (p *productRepository) UpdateProductBySupplier(ctx context.Context, product models.Product, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.queries.updateProductBySupplier(product, userID)
	if err != nil {
		log.Err(err).Str("func", "productRepository.UpdateProductBySupplier").Msg("failed to create query")
		return 0, storageError("update product", ErrBuildingSQLQuery, err)
	}

	affected, err := p.exec(ctx, query, args)
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.UpdateProductBySupplier").
			Int64("user_id", userID).
			Str("supplier", product.Supplier).
			Msg("failed to update product")
		return 0, storageError("update product", ErrExecutingStatement, err)
	}

	if affected > 1 {
		log.Warn().
			Str("func", "productRepository.UpdateProductBySupplier").
			Int64("user_id", userID).
			Str("supplier", product.Supplier).
			Int64("rows", affected).
			Msg("supplier matched several products, all were overwritten")
	}

	return affected, nil
}

func (p *productRepository) DeleteProductsBySupplier(ctx context.Context, supplier string, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.queries.deleteProductsBySupplier(supplier, userID)
	if err != nil {
		log.Err(err).Str("func", "productRepository.DeleteProductsBySupplier").Msg("failed to create query")
		return 0, storageError("delete product", ErrBuildingSQLQuery, err)
	}

	affected, err := p.exec(ctx, query, args)
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.DeleteProductsBySupplier").
			Int64("user_id", userID).
			Str("supplier", supplier).
			Msg("failed to delete products")
		return 0, storageError("delete product", ErrExecutingStatement, err)
	}

	return affected, nil
}

// UpdateProduct rewrites name, SKU and quantity of the product addressed by
// (product.ID, userID). Supplier is never written.
func (p *productRepository) UpdateProduct(ctx context.Context, product models.Product, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := p.queries.updateProduct(product, userID)
	if err != nil {
		log.Err(err).Str("func", "productRepository.UpdateProduct").Msg("failed to create query")
		return storageError("update product", ErrBuildingSQLQuery, err)
	}

	affected, err := p.exec(ctx, query, args)
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.UpdateProduct").
			Int64("user_id", userID).
			Int64("product_id", product.ID).
			Msg("failed to update product")
		return storageError("update product", ErrExecutingStatement, err)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "productRepository.UpdateProduct").
			Int64("user_id", userID).
			Int64("product_id", product.ID).
			Msg("no product was updated")
		return ErrProductNotFound
	}

	return nil
}

func (p *productRepository) DeleteProduct(ctx context.Context, productID, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := p.queries.deleteProduct(productID, userID)
	if err != nil {
		log.Err(err).Str("func", "productRepository.DeleteProduct").Msg("failed to create query")
		return storageError("delete product", ErrBuildingSQLQuery, err)
	}

	affected, err := p.exec(ctx, query, args)
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.DeleteProduct").
			Int64("user_id", userID).
			Int64("product_id", productID).
			Msg("failed to delete product")
		return storageError("delete product", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (p *productRepository) exec(ctx context.Context, query string, args []any) (int64, error) {
	res, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (p *productRepository) queryProducts(ctx context.Context, op, query string, args []any, userID int64) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.queryProducts").
			Str("op", op).
			Int64("user_id", userID).
			Msg("failed to execute query")
		return nil, storageError(op, ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0, 16)

	for rows.Next() {
		var (
			product  models.Product
			quantity sql.NullString
		)

		scanErr := rows.Scan(
			&product.ID,
			&product.Name,
			&product.SKU,
			&product.Supplier,
			&quantity,
			&product.UserID,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "productRepository.queryProducts").
				Str("op", op).
				Int64("user_id", userID).
				Msg("failed to scan product row")
			return nil, storageError(op, ErrScanningRows, scanErr)
		}

		product.Quantity = quantity.String
		products = append(products, product)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "productRepository.queryProducts").
			Str("op", op).
			Int64("user_id", userID).
			Msg("error iterating product rows")
		return nil, storageError(op, ErrScanningRows, rowsErr)
	}

	return products, nil
}
