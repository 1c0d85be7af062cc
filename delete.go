package msql

import "context"

// MustDelete is like Delete but panics if the delete fails.
func (t *Table) MustDelete(ctx context.Context, where Predicate) Result {
	result, err := t.Delete(ctx, where)
	if err != nil {
		panic(err)
	}
	return result
}

// Delete removes all rows matching the predicate. The predicate must not be
// empty; ErrUnscopedMutation is returned before anything touches the
// database. Use DeleteAll to empty the table on purpose.
func (t *Table) Delete(ctx context.Context, where Predicate) (Result, error) {
	if len(where) == 0 {
		return Result{}, ErrUnscopedMutation
	}
	return t.deleteWhere(ctx, where)
}

// MustDeleteAll is like DeleteAll but panics if the delete fails.
func (t *Table) MustDeleteAll(ctx context.Context) Result {
	result, err := t.DeleteAll(ctx)
	if err != nil {
		panic(err)
	}
	return result
}

// DeleteAll removes every row of the table.
func (t *Table) DeleteAll(ctx context.Context) (Result, error) {
	return t.deleteWhere(ctx, nil)
}

func (t *Table) deleteWhere(ctx context.Context, where Predicate) (Result, error) {
	query := "DELETE FROM ??"
	args := []interface{}{t.name}
	if len(where) > 0 {
		clause, whereArgs, err := t.WhereClause(where)
		if err != nil {
			return Result{}, err
		}
		query += " WHERE " + clause
		args = append(args, whereArgs...)
	}
	var out Result
	err := t.execute(ctx, !t.behavior.NoTransaction, func(ctx context.Context, sess Session) error {
		result, err := t.runExec(ctx, sess, query, args)
		if err != nil {
			return err
		}
		out = result
		return nil
	})
	if err != nil {
		return Result{}, t.silence(err)
	}
	return out, nil
}
