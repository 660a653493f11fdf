// Package dberr classifies driver errors from PostgreSQL (pgx) and SQLite
// (mattn/go-sqlite3) so repositories can report them in domain terms.
//
// gorm is opened with TranslateError, which turns constraint violations into
// gorm sentinels; the driver-specific checks cover connections opened without it.
package dberr

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"restaurant/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgTooManyConnections  = "53300"
	pgAdminShutdown       = "57P01"
	pgCannotConnectNow    = "57P03"
)

func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	if pgErr := asPgError(err); pgErr != nil {
		return pgErr.Code == pgUniqueViolation
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

func IsForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	if pgErr := asPgError(err); pgErr != nil {
		return pgErr.Code == pgForeignKeyViolation
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}

func IsCheckViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	if pgErr := asPgError(err); pgErr != nil {
		return pgErr.Code == pgCheckViolation
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintCheck
	}
	return false
}

// IsUnavailable reports connectivity failures: the store could not be
// reached or dropped the connection, as opposed to rejecting the statement.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	if pgErr := asPgError(err); pgErr != nil {
		// class 08: connection exception
		return (len(pgErr.Code) == 5 && pgErr.Code[:2] == "08") ||
			pgErr.Code == pgTooManyConnections ||
			pgErr.Code == pgAdminShutdown ||
			pgErr.Code == pgCannotConnectNow
	}
	if pgconn.Timeout(err) {
		return true
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code == sqlite3.ErrBusy ||
			liteErr.Code == sqlite3.ErrLocked ||
			liteErr.Code == sqlite3.ErrCantOpen
	}

	var netErr net.Error
	return errors.As(err, &netErr) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone)
}

// Wrap converts connectivity failures into errs.StoreUnavailableError and
// returns every other error unchanged.
func Wrap(err error) error {
	if IsUnavailable(err) {
		return errs.NewStoreUnavailableError(err)
	}
	return err
}

func asPgError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}
	return nil
}
