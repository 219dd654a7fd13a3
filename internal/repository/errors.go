// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrConstraint indicates the database rejected a write because
// of a broken foreign key or a duplicate value; handlers surface it to
// the user as a flash message and treat the operation as a no-op.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrConstraint is returned when an insert or update violates a database
// constraint, such as a show referencing a venue or artist that does not
// exist. Handlers should translate this into a non-fatal flash message.
var ErrConstraint = errors.New("constraint violation")

// MySQL server error numbers that map onto ErrConstraint.
const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrNoReferencedRow = 1452
)

// asConstraintErr converts MySQL constraint failures into ErrConstraint and
// passes every other error through untouched.
func asConstraintErr(err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case mysqlErrDuplicateEntry, mysqlErrNoReferencedRow:
			return ErrConstraint
		}
	}
	return err
}
