package msql

import (
	"context"
	"errors"
	"fmt"
)

type (
	// TransactionBlock is a unit of work run against one connection. The
	// session is the transaction when one is open, the bare connection
	// otherwise.
	TransactionBlock func(context.Context, Session) error
)

// MustTransaction is like Transaction but panics if the transaction fails.
func (t *Table) MustTransaction(ctx context.Context, block TransactionBlock) {
	if err := t.Transaction(ctx, block); err != nil {
		panic(err)
	}
}

// Transaction acquires a connection, starts a transaction and runs block
// inside it. The transaction is committed when block returns nil and rolled
// back when it returns an error or panics, honoring Behavior.NoRollback.
// The connection is always released, exactly once, on every path.
func (t *Table) Transaction(ctx context.Context, block TransactionBlock) error {
	return t.silence(t.execute(ctx, true, block))
}

// execute runs block on a freshly acquired connection, transactional or
// not. Every facade operation and Transaction funnel through here, so the
// acquire / begin / commit / rollback / release lifecycle exists in exactly
// one place.
func (t *Table) execute(ctx context.Context, transactional bool, block TransactionBlock) (err error) {
	if t.pool == nil {
		return ErrNoPool
	}
	conn, err := t.pool.Acquire(ctx)
	if err != nil {
		connErr := &ConnectionError{Err: err}
		t.logError(connErr)
		return connErr
	}
	defer conn.Release()
	if !transactional {
		defer func() {
			if r := recover(); r != nil {
				err = toError(r)
			}
		}()
		err = block(ctx, conn)
		return
	}
	t.logSQL("BEGIN", nil)
	var tx Tx
	tx, err = conn.Begin(ctx)
	if err != nil {
		return t.dbError(err, "BEGIN", nil)
	}
	defer func() {
		if r := recover(); r != nil {
			err = toError(r)
		}
		if err != nil {
			if !t.behavior.NoRollback {
				t.logSQL("ROLLBACK", nil)
				tx.Rollback() // a failing rollback must not mask err
			}
			return
		}
		t.logSQL("COMMIT", nil)
		if cerr := tx.Commit(); cerr != nil {
			err = t.dbError(cerr, "COMMIT", nil)
		}
	}()
	err = block(ctx, tx)
	return
}

func toError(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}
	return errors.New(fmt.Sprint(r))
}

// runQuery logs and executes one query statement on the session, wrapping
// driver failures into DatabaseError.
func (t *Table) runQuery(ctx context.Context, sess Session, query string, args []interface{}) ([]Row, error) {
	t.logSQL(query, args)
	rows, err := sess.Query(ctx, query, args...)
	if err != nil {
		return nil, t.dbError(err, query, args)
	}
	return rows, nil
}

// runExec logs and executes one mutation statement on the session, wrapping
// driver failures into DatabaseError.
func (t *Table) runExec(ctx context.Context, sess Session, query string, args []interface{}) (Result, error) {
	t.logSQL(query, args)
	result, err := sess.Exec(ctx, query, args...)
	if err != nil {
		return Result{}, t.dbError(err, query, args)
	}
	return result, nil
}
