package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// likeEscape is the LIKE escape character. '!' needs no quoting in any of the
// supported dialects, unlike the backslash under MySQL.
const likeEscape = "!"

var (
	userColumns    = []string{"id", "username", "password"}
	productColumns = []string{"id", "name", "sku", "supplier", "quantity", "user_id"}
	searchColumns  = []string{"name", "sku", "supplier", "quantity"}
)

// queryBuilder produces every statement the repositories run, in the
// placeholder style of one dialect.
type queryBuilder struct {
	sb sq.StatementBuilderType
	// returning marks dialects that report generated ids via RETURNING.
	returning bool
}

func newQueryBuilder(driver string) queryBuilder {
	return queryBuilder{
		sb:        sq.StatementBuilder.PlaceholderFormat(placeholderFormat(driver)),
		returning: driver == config.DriverPostgres,
	}
}

func (q queryBuilder) createUser(user models.User) (string, []any, error) {
	insert := q.sb.
		Insert(models.User{}.TableName()).
		Columns("username", "password").
		Values(user.Login, user.PasswordHash)

	if q.returning {
		insert = insert.Suffix("RETURNING id")
	}

	return insert.ToSql()
}

func (q queryBuilder) findUserByLogin(login string) (string, []any, error) {
	return q.sb.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": login}).
		ToSql()
}

func (q queryBuilder) insertProduct(product models.Product, userID int64) (string, []any, error) {
	insert := q.sb.
		Insert(models.Product{}.TableName()).
		Columns("name", "sku", "supplier", "quantity", "user_id").
		Values(product.Name, product.SKU, product.Supplier, product.Quantity, userID)

	if q.returning {
		insert = insert.Suffix("RETURNING id")
	}

	return insert.ToSql()
}

func (q queryBuilder) selectProducts(userID int64) (string, []any, error) {
	return q.sb.
		Select(productColumns...).
		From(models.Product{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
}

// searchProducts matches text as a literal, case-insensitive substring of
// any searchable column.
func (q queryBuilder) searchProducts(text string, userID int64) (string, []any, error) {
	pattern := "%" + escapeLike(strings.ToLower(text)) + "%"

	anyColumn := make(sq.Or, 0, len(searchColumns))
	for _, col := range searchColumns {
		anyColumn = append(anyColumn, sq.Expr("LOWER("+col+") LIKE ? ESCAPE '"+likeEscape+"'", pattern))
	}

	return q.sb.
		Select(productColumns...).
		From(models.Product{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		Where(anyColumn).
		OrderBy("id").
		ToSql()
}

func (q queryBuilder) updateProductBySupplier(product models.Product, userID int64) (string, []any, error) {
	return q.sb.
		Update(models.Product{}.TableName()).
		Set("name", product.Name).
		Set("sku", product.SKU).
		Set("quantity", product.Quantity).
		Where(sq.Eq{"supplier": product.Supplier, "user_id": userID}).
		ToSql()
}

func (q queryBuilder) deleteProductsBySupplier(supplier string, userID int64) (string, []any, error) {
	return q.sb.
		Delete(models.Product{}.TableName()).
		Where(sq.Eq{"supplier": supplier, "user_id": userID}).
		ToSql()
}

func (q queryBuilder) updateProduct(product models.Product, userID int64) (string, []any, error) {
	return q.sb.
		Update(models.Product{}.TableName()).
		Set("name", product.Name).
		Set("sku", product.SKU).
		Set("quantity", product.Quantity).
		Where(sq.Eq{"id": product.ID, "user_id": userID}).
		ToSql()
}

func (q queryBuilder) deleteProduct(id, userID int64) (string, []any, error) {
	return q.sb.
		Delete(models.Product{}.TableName()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

var likeReplacer = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

func escapeLike(s string) string {
	return likeReplacer.Replace(s)
}
