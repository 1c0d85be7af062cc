package msql

import (
	"context"
	"strings"
)

// MustSave is like Save but panics if the insert fails.
func (t *Table) MustSave(ctx context.Context, set Object) Result {
	result, err := t.Save(ctx, set)
	if err != nil {
		panic(err)
	}
	return result
}

// Save inserts one row built from the setter. The statement always lists
// every bound column in declared order; keys absent from the setter and
// auto-set keys are inserted as NULL so the database can fill them in.
// Setter values for auto-set keys and for undeclared keys are ignored.
// Save runs on the bare connection, never in a transaction.
func (t *Table) Save(ctx context.Context, set Object) (Result, error) {
	return t.insert(ctx, []Object{set})
}

// MustSaveMany is like SaveMany but panics if the insert fails.
func (t *Table) MustSaveMany(ctx context.Context, sets []Object) Result {
	result, err := t.SaveMany(ctx, sets)
	if err != nil {
		panic(err)
	}
	return result
}

// SaveMany inserts all setters with a single multi-row statement, each row
// built the way Save builds one. An empty slice is a complete no-op: no
// connection is acquired and a zero Result is returned. SaveMany runs on
// the bare connection, never in a transaction.
func (t *Table) SaveMany(ctx context.Context, sets []Object) (Result, error) {
	if len(sets) == 0 {
		return Result{}, nil
	}
	return t.insert(ctx, sets)
}

func (t *Table) insert(ctx context.Context, sets []Object) (Result, error) {
	query, args := t.insertStatement(sets)
	var out Result
	err := t.execute(ctx, false, func(ctx context.Context, sess Session) error {
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

func (t *Table) insertStatement(sets []Object) (string, []interface{}) {
	keys := t.mapper.keys
	args := make([]interface{}, 0, 2+len(sets)*len(keys))
	args = append(args, t.name, t.mapper.Columns())
	row := "(" + placeholders(len(keys)) + ")"
	rows := make([]string, len(sets))
	for i, set := range sets {
		rows[i] = row
		for _, key := range keys {
			if t.autoSet[key] {
				args = append(args, nil)
				continue
			}
			args = append(args, set[key])
		}
	}
	return "INSERT INTO ?? (??) VALUES " + strings.Join(rows, ", "), args
}
