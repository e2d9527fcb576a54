package store

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers.
// See https://dev.mysql.com/doc/mysql-errors/8.0/en/server-error-reference.html
const (
	mysqlDuplicateEntry      = 1062
	mysqlColumnCannotBeNull  = 1048
	mysqlRowIsReferenced     = 1451
	mysqlNoReferencedRow     = 1452
	mysqlLockWaitTimeout     = 1205
	mysqlDeadlock            = 1213
	mysqlTooManyConnections  = 1040
	mysqlServerShutdown      = 1053
	mysqlConnectionCountOver = 1203
)

// MySQLErrorClassifier implements [ErrorClassificator] for go-sql-driver/mysql.
type MySQLErrorClassifier struct{}

// NewMySQLErrorClassifier constructs a [MySQLErrorClassifier].
func NewMySQLErrorClassifier() *MySQLErrorClassifier {
	return &MySQLErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *MySQLErrorClassifier) Classify(err error) ErrorClassification {
	if errors.Is(err, mysql.ErrInvalidConn) {
		return ClassTransient
	}

	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) {
		return ClassUnknown
	}

	switch myErr.Number {
	case mysqlDuplicateEntry:
		return ClassUniqueViolation
	case mysqlNoReferencedRow, mysqlRowIsReferenced:
		return ClassForeignKeyViolation
	case mysqlColumnCannotBeNull:
		return ClassNotNullViolation
	case mysqlLockWaitTimeout, mysqlDeadlock, mysqlTooManyConnections, mysqlServerShutdown, mysqlConnectionCountOver:
		return ClassTransient
	}

	return ClassUnknown
}
