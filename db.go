package msql

import "context"

type (
	// Pool hands out database connections. The standard subpackage provides
	// an implementation over database/sql; any connection pool can be used
	// as long as Acquire returns a connection that is owned by the caller
	// until Release.
	Pool interface {
		Acquire(ctx context.Context) (Conn, error)
		Close() error
	}

	// Conn is a single connection acquired from a Pool. Release returns it
	// to the pool; after Release the connection must not be used.
	Conn interface {
		Session
		Begin(ctx context.Context) (Tx, error)
		Release()
	}

	// Tx is a transaction started on a Conn. Commit and Rollback carry no
	// context, matching database/sql's transaction finalizers.
	Tx interface {
		Session
		Commit() error
		Rollback() error
	}

	// Session runs statements on a connection or inside a transaction.
	// Statements use "??" placeholders for identifiers and "?" placeholders
	// for values (see ExpandStatement); args contains both kinds in
	// placeholder order. Query returns the full materialized result set.
	Session interface {
		Exec(ctx context.Context, query string, args ...interface{}) (Result, error)
		Query(ctx context.Context, query string, args ...interface{}) ([]Row, error)
	}

	// Result reports the outcome of an INSERT, UPDATE or DELETE.
	Result struct {
		RowsAffected int64
		LastInsertID int64
	}
)
