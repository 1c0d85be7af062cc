package msql

import (
	"context"
	"fmt"
	"strconv"
)

// MustFind is like Find but panics if the query fails.
func (t *Table) MustFind(ctx context.Context, where ...Predicate) []Object {
	objects, err := t.Find(ctx, where...)
	if err != nil {
		panic(err)
	}
	return objects
}

// Find selects all rows matching the predicate and maps them to objects.
// Without a predicate every row is selected. The result is never nil on
// success, only empty.
func (t *Table) Find(ctx context.Context, where ...Predicate) ([]Object, error) {
	query, args, err := t.selectStatement(optional(where), "")
	if err != nil {
		return nil, err
	}
	var out []Object
	err = t.execute(ctx, !t.behavior.NoTransaction, func(ctx context.Context, sess Session) error {
		rows, err := t.runQuery(ctx, sess, query, args)
		if err != nil {
			return err
		}
		out = make([]Object, 0, len(rows))
		for _, row := range rows {
			out = append(out, t.mapper.Object(row))
		}
		return nil
	})
	if err != nil {
		return nil, t.silence(err)
	}
	return out, nil
}

// MustFirst is like First but panics if the query fails.
func (t *Table) MustFirst(ctx context.Context, where ...Predicate) Object {
	object, err := t.First(ctx, where...)
	if err != nil {
		panic(err)
	}
	return object
}

// First selects the first row matching the predicate, or nil when nothing
// matches. Use FindOne to treat a missing row as an error.
func (t *Table) First(ctx context.Context, where ...Predicate) (Object, error) {
	objects, err := t.findLimited(ctx, optional(where), 1)
	if err != nil {
		return nil, t.silence(err)
	}
	if len(objects) == 0 {
		return nil, nil
	}
	return objects[0], nil
}

// MustFindOne is like FindOne but panics if the query fails.
func (t *Table) MustFindOne(ctx context.Context, where ...Predicate) Object {
	object, err := t.FindOne(ctx, where...)
	if err != nil {
		panic(err)
	}
	return object
}

// FindOne selects exactly one row matching the predicate. ErrNotFound is
// returned when nothing matches and ErrMultipleFound when more than one row
// matches.
func (t *Table) FindOne(ctx context.Context, where ...Predicate) (Object, error) {
	objects, err := t.findLimited(ctx, optional(where), 2)
	if err != nil {
		return nil, t.silence(err)
	}
	switch len(objects) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return objects[0], nil
	}
	return nil, ErrMultipleFound
}

func (t *Table) findLimited(ctx context.Context, where Predicate, limit int) ([]Object, error) {
	query, args, err := t.selectStatement(where, " LIMIT "+strconv.Itoa(limit))
	if err != nil {
		return nil, err
	}
	var out []Object
	err = t.execute(ctx, !t.behavior.NoTransaction, func(ctx context.Context, sess Session) error {
		rows, err := t.runQuery(ctx, sess, query, args)
		if err != nil {
			return err
		}
		for _, row := range rows {
			out = append(out, t.mapper.Object(row))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MustCount is like Count but panics if the query fails.
func (t *Table) MustCount(ctx context.Context, where ...Predicate) int {
	count, err := t.Count(ctx, where...)
	if err != nil {
		panic(err)
	}
	return count
}

// Count returns the number of rows matching the predicate, or the size of
// the whole table without one.
func (t *Table) Count(ctx context.Context, where ...Predicate) (int, error) {
	query := "SELECT COUNT(*) AS count FROM ??"
	args := []interface{}{t.name}
	if w := optional(where); len(w) > 0 {
		clause, whereArgs, err := t.WhereClause(w)
		if err != nil {
			return 0, err
		}
		query += " WHERE " + clause
		args = append(args, whereArgs...)
	}
	var count int
	err := t.execute(ctx, !t.behavior.NoTransaction, func(ctx context.Context, sess Session) error {
		rows, err := t.runQuery(ctx, sess, query, args)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		count, err = toInt(rows[0]["count"])
		return err
	})
	if err != nil {
		return 0, t.silence(err)
	}
	return count, nil
}

// MustExists is like Exists but panics if the query fails. Returns true if
// a matching record exists, false if not.
func (t *Table) MustExists(ctx context.Context, where ...Predicate) bool {
	exists, err := t.Exists(ctx, where...)
	if err != nil {
		panic(err)
	}
	return exists
}

// Exists reports whether any row matches the predicate.
func (t *Table) Exists(ctx context.Context, where ...Predicate) (bool, error) {
	query := "SELECT 1 FROM ??"
	args := []interface{}{t.name}
	if w := optional(where); len(w) > 0 {
		clause, whereArgs, err := t.WhereClause(w)
		if err != nil {
			return false, err
		}
		query += " WHERE " + clause
		args = append(args, whereArgs...)
	}
	query += " LIMIT 1"
	var exists bool
	err := t.execute(ctx, !t.behavior.NoTransaction, func(ctx context.Context, sess Session) error {
		rows, err := t.runQuery(ctx, sess, query, args)
		if err != nil {
			return err
		}
		exists = len(rows) > 0
		return nil
	})
	if err != nil {
		return false, t.silence(err)
	}
	return exists, nil
}

// selectStatement builds "SELECT columns FROM table" plus an optional WHERE
// clause and suffix.
func (t *Table) selectStatement(where Predicate, suffix string) (string, []interface{}, error) {
	query := "SELECT ?? FROM ??"
	args := []interface{}{t.mapper.Columns(), t.name}
	if len(where) > 0 {
		clause, whereArgs, err := t.WhereClause(where)
		if err != nil {
			return "", nil, err
		}
		query += " WHERE " + clause
		args = append(args, whereArgs...)
	}
	return query + suffix, args, nil
}

// toInt reads a numeric scalar from a materialized row. Text-protocol
// drivers hand numbers back as strings.
func toInt(value interface{}) (int, error) {
	switch x := value.(type) {
	case int64:
		return int(x), nil
	case uint64:
		return int(x), nil
	case int:
		return x, nil
	case string:
		return strconv.Atoi(x)
	case []byte:
		return strconv.Atoi(string(x))
	}
	return 0, fmt.Errorf("%w on %T", ErrTypeAssertionFailed, value)
}
