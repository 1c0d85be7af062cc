package msql

import "context"

// MustUpdate is like Update but panics if the update fails.
func (t *Table) MustUpdate(ctx context.Context, set Object, where Predicate) Result {
	result, err := t.Update(ctx, set, where)
	if err != nil {
		panic(err)
	}
	return result
}

// Update sets the given keys on all rows matching the predicate. The
// predicate must not be empty; ErrUnscopedMutation is returned before
// anything touches the database. Use UpdateAll to update every row on
// purpose. Setter values for auto-set keys and for undeclared keys are
// ignored; a setter without any assignable key returns ErrEmptySetter.
func (t *Table) Update(ctx context.Context, set Object, where Predicate) (Result, error) {
	if len(where) == 0 {
		return Result{}, ErrUnscopedMutation
	}
	return t.updateWhere(ctx, set, where)
}

// MustUpdateAll is like UpdateAll but panics if the update fails.
func (t *Table) MustUpdateAll(ctx context.Context, set Object) Result {
	result, err := t.UpdateAll(ctx, set)
	if err != nil {
		panic(err)
	}
	return result
}

// UpdateAll sets the given keys on every row of the table.
func (t *Table) UpdateAll(ctx context.Context, set Object) (Result, error) {
	return t.updateWhere(ctx, set, nil)
}

func (t *Table) updateWhere(ctx context.Context, set Object, where Predicate) (Result, error) {
	query, args, err := t.updateStatement(set, where)
	if err != nil {
		return Result{}, err
	}
	var out Result
	err = t.execute(ctx, !t.behavior.NoTransaction, func(ctx context.Context, sess Session) error {
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

func (t *Table) updateStatement(set Object, where Predicate) (string, []interface{}, error) {
	query := "UPDATE ?? SET "
	args := []interface{}{t.name}
	assigned := 0
	for i, key := range t.mapper.keys {
		if t.autoSet[key] {
			continue
		}
		value, ok := set[key]
		if !ok {
			continue
		}
		if assigned > 0 {
			query += ", "
		}
		query += "?? = ?"
		args = append(args, t.mapper.columns[i], value)
		assigned++
	}
	if assigned == 0 {
		return "", nil, ErrEmptySetter
	}
	if len(where) > 0 {
		clause, whereArgs, err := t.WhereClause(where)
		if err != nil {
			return "", nil, err
		}
		query += " WHERE " + clause
		args = append(args, whereArgs...)
	}
	return query, args, nil
}
