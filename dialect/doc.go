// Package dialect provides the database abstraction the uuident store
// is built on.
//
// It defines the interfaces and constants used for database-specific
// operations, supporting PostgreSQL, MySQL, and SQLite backends.
//
// # Dialect Constants
//
// Each dialect is identified by a constant string:
//
//	dialect.Postgres = "postgres"
//	dialect.MySQL    = "mysql"
//	dialect.SQLite   = "sqlite"
//
// # Driver Interface
//
// The Driver interface wraps all database operations:
//
//	type Driver interface {
//	    Exec(ctx context.Context, query string, args, v any) error
//	    Query(ctx context.Context, query string, args, v any) error
//	    Tx(ctx context.Context) (Tx, error)
//	    Close() error
//	    Dialect() string
//	}
//
// The dialect/sql subpackage provides the standard implementation over
// database/sql, together with the query builders used by the store.
//
// # Usage
//
// Opening a database connection:
//
//	import (
//	    "github.com/syssam/uuident/dialect"
//	    "github.com/syssam/uuident/dialect/sql"
//	)
//
//	drv, err := sql.Open(dialect.SQLite, "file:demo?mode=memory&cache=shared")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer drv.Close()
package dialect
