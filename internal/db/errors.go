package db

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// MySQL server error numbers raised when a session cannot be established.
var mysqlConnectionErrors = map[uint16]bool{
	1040: true, // ER_CON_COUNT_ERROR
	1044: true, // ER_DBACCESS_DENIED_ERROR
	1045: true, // ER_ACCESS_DENIED_ERROR
	1049: true, // ER_BAD_DB_ERROR
	1053: true, // ER_SERVER_SHUTDOWN
}

type QueryError struct {
	Store string
	Op    string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s database: %s failed: %v", e.Store, e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// IsConnectionError reports whether err means the store could not be reached,
// as opposed to a statement that the store rejected.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgerrcode.IsConnectionException(pgErr.Code) ||
			pgerrcode.IsInvalidAuthorizationSpecification(pgErr.Code) ||
			pgErr.Code == pgerrcode.InvalidCatalogName ||
			pgErr.Code == pgerrcode.TooManyConnections
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return mysqlConnectionErrors[myErr.Number]
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
