package repositories

import (
	"errors"

	"github.com/bizreview/backend/internal/models"
	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers the repositories translate into domain errors
const (
	errDuplicateEntry     = 1062
	errDataTooLong        = 1406
	errNoReferencedRow    = 1452
	errCheckConstraint    = 3819
	errNoReferencedRowOld = 1216
)

// translateWriteError converts constraint violations reported by MySQL into validation errors.
// Other errors are returned unchanged.
func translateWriteError(err error) error {
	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) {
		return err
	}

	switch myErr.Number {
	case errNoReferencedRow, errNoReferencedRowOld:
		return models.NewValidationError("referenced user or business does not exist")
	case errDataTooLong:
		return models.NewValidationError("field value is too long")
	case errCheckConstraint:
		return models.NewValidationError("field value is out of range")
	default:
		return err
	}
}

// isDuplicateEntry reports whether err is a unique key violation
func isDuplicateEntry(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == errDuplicateEntry
}
