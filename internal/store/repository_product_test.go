package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

func newTestProductRepo(t *testing.T, driver string) (*productRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t, driver)
	return &productRepository{DB: db, logger: logger.Nop()}, mock
}

var productRowColumns = []string{"id", "name", "sku", "supplier", "quantity", "user_id"}

func TestAddProduct_SetsIDAndOwner(t *testing.T) {
	repo, mock := newTestProductRepo(t, config.DriverSQLite)

	mock.ExpectExec("INSERT INTO products").
		WithArgs("Widget", "W1", "Acme", "10", int64(3)).
		WillReturnResult(sqlmock.NewResult(11, 1))

	stored, err := repo.AddProduct(context.Background(), models.Product{Name: "Widget", SKU: "W1", Supplier: "Acme", Quantity: "10"}, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(11), stored.ID)
	assert.Equal(t, int64(3), stored.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddProduct_ForeignKeyViolation(t *testing.T) {
	repo, mock := newTestProductRepo(t, config.DriverMySQL)

	mock.ExpectExec("INSERT INTO products").
		WillReturnError(&mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"})

	_, err := repo.AddProduct(context.Background(), models.Product{Name: "Widget"}, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorage)
	assert.Contains(t, err.Error(), "Cannot add or update a child row")
}

func TestGetAllProducts_ScansRows(t *testing.T) {
	repo, mock := newTestProductRepo(t, config.DriverSQLite)

	rows := sqlmock.NewRows(productRowColumns).
		AddRow(1, "Widget", "W1", "Acme", "10", 3).
		AddRow(2, "Bolt", "B2", "Globex", nil, 3)

	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE user_id = ? ORDER BY id")).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	products, err := repo.GetAllProducts(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, models.Product{ID: 1, Name: "Widget", SKU: "W1", Supplier: "Acme", Quantity: "10", UserID: 3}, products[0])
	assert.Empty(t, products[1].Quantity)
}

func TestGetAllProducts_EmptyIsNotNil(t *testing.T) {
	repo, mock := newTestProductRepo(t, config.DriverSQLite)

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(productRowColumns))

	products, err := repo.GetAllProducts(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestGetAllProducts_QueryError(t *testing.T) {
	repo, mock := newTestProductRepo(t, config.DriverSQLite)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("no such table: products"))

	_, err := repo.GetAllProducts(context.Background(), 3)
	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "list products", storageErr.Op)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetAllProducts_RowError(t *testing.T) {
	repo, mock := newTestProductRepo(t, config.DriverSQLite)

	rows := sqlmock.NewRows(productRowColumns).
		AddRow(1, "Widget", "W1", "Acme", "10", 3).
		RowError(0, errors.New("row broke"))
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	_, err := repo.GetAllProducts(context.Background(), 3)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestSearchProducts_PassesEscapedPattern(t *testing.T) {
	repo, mock := newTestProductRepo(t, config.DriverSQLite)

	mock.ExpectQuery("SELECT .* FROM products WHERE user_id = \\? AND \\(LOWER\\(name\\) LIKE").
		WithArgs(int64(3), "%50!%%", "%50!%%", "%50!%%", "%50!%%").
		WillReturnRows(sqlmock.NewRows(productRowColumns).AddRow(4, "Half", "H50%", "Acme", "1", 3))

	products, err := repo.SearchProducts(context.Background(), "50%", 3)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(4), products[0].ID)
}

func TestUpdateProductBySupplier_ReturnsRowsAffected(t *testing.T) {
	repo, mock := newTestProductRepo(t, config.DriverSQLite)

	mock.ExpectExec("UPDATE products SET").
		WithArgs("Widget", "W1", "12", "Acme", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	affected, err := repo.UpdateProductBySupplier(context.Background(), models.Product{Name: "Widget", SKU: "W1", Supplier: "Acme", Quantity: "12"}, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
}

func TestDeleteProductsBySupplier_Error(t *testing.T) {
	repo, mock := newTestProductRepo(t, config.DriverSQLite)

	mock.ExpectExec("DELETE FROM products").
		WithArgs("Acme", int64(3)).
		WillReturnError(errors.New("database is locked"))

	_, err := repo.DeleteProductsBySupplier(context.Background(), "Acme", 3)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	repo, mock := newTestProductRepo(t, config.DriverPostgres)

	mock.ExpectExec(regexp.QuoteMeta("WHERE id = $4 AND user_id = $5")).
		WithArgs("Widget", "W1", "10", int64(8), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateProduct(context.Background(), models.Product{ID: 8, Name: "Widget", SKU: "W1", Supplier: "Acme", Quantity: "10"}, 3)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "missing", affected: 0, wantErr: ErrProductNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestProductRepo(t, config.DriverSQLite)

			mock.ExpectExec("DELETE FROM products WHERE id").
				WithArgs(int64(8), int64(3)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.DeleteProduct(context.Background(), 8, 3)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
