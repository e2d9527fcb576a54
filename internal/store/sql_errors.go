package store

import "github.com/MKhiriev/go-stock-keeper/internal/config"

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It tells repositories which domain error, if
// any, a driver error stands for.
type ErrorClassification int

const (
	// ClassUnknown covers every error no classifier recognises.
	ClassUnknown ErrorClassification = iota

	// ClassUniqueViolation is a UNIQUE or PRIMARY KEY conflict.
	ClassUniqueViolation

	// ClassForeignKeyViolation is a row referencing a missing parent.
	ClassForeignKeyViolation

	// ClassNotNullViolation is a NULL written into a NOT NULL column.
	ClassNotNullViolation

	// ClassTransient is a lock, deadlock or connection failure that might
	// succeed on a later attempt. Nothing retries automatically.
	ClassTransient
)

func (c ErrorClassification) String() string {
	switch c {
	case ClassUniqueViolation:
		return "unique_violation"
	case ClassForeignKeyViolation:
		return "foreign_key_violation"
	case ClassNotNullViolation:
		return "not_null_violation"
	case ClassTransient:
		return "transient"
	default:
		return "unknown"
	}
}

// ErrorClassificator maps a driver-specific error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

func newErrorClassifier(driver string) ErrorClassificator {
	switch driver {
	case config.DriverPostgres:
		return NewPostgresErrorClassifier()
	case config.DriverMySQL:
		return NewMySQLErrorClassifier()
	default:
		return NewSQLiteErrorClassifier()
	}
}
