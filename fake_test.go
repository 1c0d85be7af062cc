package msql

import (
	"context"
	"fmt"
	"testing"

	"github.com/gopsql/logger"
)

type (
	// fakeDB records everything the handler does to the capability so tests
	// can assert statement shapes and lifecycle ordering.
	fakeDB struct {
		events     []string
		statements []fakeStatement

		rows   []Row
		result Result

		acquireErr  error
		beginErr    error
		queryErr    error
		execErr     error
		commitErr   error
		rollbackErr error
	}

	fakeStatement struct {
		query string
		args  []interface{}
	}

	fakePool struct {
		db *fakeDB
	}

	fakeConn struct {
		db *fakeDB
	}

	fakeTx struct {
		db *fakeDB
	}
)

func (d *fakeDB) record(event string) {
	d.events = append(d.events, event)
}

func (d *fakeDB) exec(query string, args []interface{}) (Result, error) {
	d.record("exec")
	d.statements = append(d.statements, fakeStatement{query, args})
	if d.execErr != nil {
		return Result{}, d.execErr
	}
	return d.result, nil
}

func (d *fakeDB) query(query string, args []interface{}) ([]Row, error) {
	d.record("query")
	d.statements = append(d.statements, fakeStatement{query, args})
	if d.queryErr != nil {
		return nil, d.queryErr
	}
	return d.rows, nil
}

func (p *fakePool) Acquire(ctx context.Context) (Conn, error) {
	if p.db.acquireErr != nil {
		return nil, p.db.acquireErr
	}
	p.db.record("acquire")
	return &fakeConn{db: p.db}, nil
}

func (p *fakePool) Close() error {
	return nil
}

func (c *fakeConn) Begin(ctx context.Context) (Tx, error) {
	if c.db.beginErr != nil {
		return nil, c.db.beginErr
	}
	c.db.record("begin")
	return &fakeTx{db: c.db}, nil
}

func (c *fakeConn) Release() {
	c.db.record("release")
}

func (c *fakeConn) Exec(ctx context.Context, query string, args ...interface{}) (Result, error) {
	return c.db.exec(query, args)
}

func (c *fakeConn) Query(ctx context.Context, query string, args ...interface{}) ([]Row, error) {
	return c.db.query(query, args)
}

func (t *fakeTx) Commit() error {
	t.db.record("commit")
	return t.db.commitErr
}

func (t *fakeTx) Rollback() error {
	t.db.record("rollback")
	return t.db.rollbackErr
}

func (t *fakeTx) Exec(ctx context.Context, query string, args ...interface{}) (Result, error) {
	return t.db.exec(query, args)
}

func (t *fakeTx) Query(ctx context.Context, query string, args ...interface{}) ([]Row, error) {
	return t.db.query(query, args)
}

// testLogger captures Debug and Error output. The embedded interface keeps
// it assignable as a logger.Logger.
type testLogger struct {
	logger.Logger
	debugs []string
	errors []string
}

func (l *testLogger) Debug(args ...interface{}) {
	l.debugs = append(l.debugs, fmt.Sprint(args...))
}

func (l *testLogger) Error(args ...interface{}) {
	l.errors = append(l.errors, fmt.Sprint(args...))
}

// newTestTable binds the canonical test table: keys id, name, createdAt
// with id and createdAt populated by the database.
func newTestTable(t *testing.T, db *fakeDB, behavior ...Behavior) *Table {
	t.Helper()
	var b Behavior
	if len(behavior) > 0 {
		b = behavior[0]
	}
	table, err := NewTable(Options{
		Table:    "tasks",
		Keys:     []string{"id", "name", "createdAt"},
		AutoSet:  []string{"id", "createdAt"},
		Pool:     &fakePool{db: db},
		Behavior: b,
	})
	if err != nil {
		t.Fatalf("NewTable() = %v", err)
	}
	return table
}
