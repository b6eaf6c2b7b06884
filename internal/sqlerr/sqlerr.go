// Package sqlerr translates MySQL driver errors into domain errors.
//
// The pre-insert uniqueness checks in the service layer are advisory only;
// under a write race the unique index is the final arbiter and the driver
// surfaces error 1062. This package relabels that case as a ConflictError
// naming the offending value.
package sqlerr

import (
	"errors"
	"fmt"

	"github.com/advisorycontent/backend/internal/apperrors"
	"github.com/go-sql-driver/mysql"
)

// MySQL error number for duplicate entry on a unique index
const mysqlDuplicateEntry = 1062

// IsDuplicate reports whether err is a MySQL duplicate-entry error
func IsDuplicate(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

// ConvertDuplicate relabels a duplicate-entry error as a ConflictError naming
// the offending field value. Any other error is returned unchanged.
func ConvertDuplicate(err error, field, value string) error {
	if !IsDuplicate(err) {
		return err
	}
	return apperrors.NewConflict(fmt.Sprintf("A record with %s '%s' already exists.", field, value))
}
