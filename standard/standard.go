// Package standard connects msql to MySQL through database/sql, using
// github.com/jmoiron/sqlx for connection handling and row materialization
// and github.com/go-sql-driver/mysql as the driver.
package standard

import (
	"context"
	"database/sql"
	"time"

	"github.com/gopsql/msql"
	"github.com/jmoiron/sqlx"
)

type (
	// Pool implements msql.Pool over a sqlx database handle. Acquire pins
	// one connection from the underlying pool until Release.
	Pool struct {
		db *sqlx.DB
	}

	connection struct {
		conn *sqlx.Conn
	}

	transaction struct {
		tx *sqlx.Tx
	}

	execer interface {
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	}

	queryer interface {
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
	}
)

// Open connects to the MySQL server described by the config, applies the
// pool limits and verifies the connection with a ping.
func Open(config Config) (*Pool, error) {
	db, err := sqlx.Open("mysql", config.DSN())
	if err != nil {
		return nil, err
	}
	if config.MaxOpenConns > 0 {
		db.SetMaxOpenConns(config.MaxOpenConns)
	}
	if config.MaxIdleConns > 0 {
		db.SetMaxIdleConns(config.MaxIdleConns)
	}
	if config.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(config.ConnMaxLifetime) * time.Second)
	}
	if config.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(time.Duration(config.ConnMaxIdleTime) * time.Second)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return &Pool{db: db}, nil
}

// NewPool wraps an already opened sqlx database handle.
func NewPool(db *sqlx.DB) *Pool {
	return &Pool{db: db}
}

// The underlying sqlx handle, for statements outside msql.
func (p *Pool) DB() *sqlx.DB {
	return p.db
}

func (p *Pool) Acquire(ctx context.Context) (msql.Conn, error) {
	conn, err := p.db.Connx(ctx)
	if err != nil {
		return nil, err
	}
	return &connection{conn: conn}, nil
}

func (p *Pool) Close() error {
	return p.db.Close()
}

func (c *connection) Begin(ctx context.Context) (msql.Tx, error) {
	tx, err := c.conn.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &transaction{tx: tx}, nil
}

func (c *connection) Release() {
	c.conn.Close()
}

func (c *connection) Exec(ctx context.Context, query string, args ...interface{}) (msql.Result, error) {
	return execContext(ctx, c.conn, query, args)
}

func (c *connection) Query(ctx context.Context, query string, args ...interface{}) ([]msql.Row, error) {
	return queryContext(ctx, c.conn, query, args)
}

func (t *transaction) Commit() error {
	return t.tx.Commit()
}

func (t *transaction) Rollback() error {
	return t.tx.Rollback()
}

func (t *transaction) Exec(ctx context.Context, query string, args ...interface{}) (msql.Result, error) {
	return execContext(ctx, t.tx, query, args)
}

func (t *transaction) Query(ctx context.Context, query string, args ...interface{}) ([]msql.Row, error) {
	return queryContext(ctx, t.tx, query, args)
}

func execContext(ctx context.Context, e execer, query string, args []interface{}) (msql.Result, error) {
	stmt, values, err := msql.ExpandStatement(query, args)
	if err != nil {
		return msql.Result{}, err
	}
	result, err := e.ExecContext(ctx, stmt, values...)
	if err != nil {
		return msql.Result{}, err
	}
	out := msql.Result{}
	if n, err := result.RowsAffected(); err == nil {
		out.RowsAffected = n
	}
	if id, err := result.LastInsertId(); err == nil {
		out.LastInsertID = id
	}
	return out, nil
}

// queryContext materializes the whole result set. Text protocol values
// arrive as []byte and are converted to string so rows survive the
// connection.
func queryContext(ctx context.Context, q queryer, query string, args []interface{}) ([]msql.Row, error) {
	stmt, values, err := msql.ExpandStatement(query, args)
	if err != nil {
		return nil, err
	}
	rows, err := q.QueryxContext(ctx, stmt, values...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []msql.Row{}
	for rows.Next() {
		row := map[string]interface{}{}
		if err := rows.MapScan(row); err != nil {
			return nil, err
		}
		for column, value := range row {
			if b, ok := value.([]byte); ok {
				row[column] = string(b)
			}
		}
		out = append(out, msql.Row(row))
	}
	return out, rows.Err()
}
