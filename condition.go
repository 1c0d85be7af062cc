package msql

import (
	"fmt"
	"sort"
	"strings"
)

type (
	// Predicate matches rows by key. Entries are combined with AND; clause
	// order follows the table's declared key order, not the map order.
	Predicate map[string]Cond

	// Cond is one comparison in a Predicate. The zero value compares
	// against nil; use the constructors to pick the comparison semantics
	// explicitly. Eq never turns into LIKE, no matter what the value
	// contains.
	Cond struct {
		kind  condKind
		value interface{}
		list  []interface{}
	}

	condKind int
)

const (
	condEq condKind = iota
	condIn
	condNull
	condNotNull
	condLike
)

// Eq matches rows whose column equals value.
func Eq(value interface{}) Cond {
	return Cond{kind: condEq, value: value}
}

// In matches rows whose column equals any of the values. With no values the
// condition matches no rows at all.
func In(values ...interface{}) Cond {
	return Cond{kind: condIn, list: values}
}

// Null matches rows whose column IS NULL.
func Null() Cond {
	return Cond{kind: condNull}
}

// NotNull matches rows whose column IS NOT NULL.
func NotNull() Cond {
	return Cond{kind: condNotNull}
}

// Like matches rows whose column matches the SQL LIKE pattern.
func Like(pattern string) Cond {
	return Cond{kind: condLike, value: pattern}
}

// WhereClause renders a predicate into an AND-joined condition clause with
// "??"/"?" placeholders and the matching argument list. Clauses appear in
// the table's declared key order. ErrEmptyPredicate is returned for an
// empty predicate and ErrUnknownKey for keys outside the binding.
func (t *Table) WhereClause(where Predicate) (string, []interface{}, error) {
	if len(where) == 0 {
		return "", nil, ErrEmptyPredicate
	}
	var unknown []string
	for key := range where {
		if _, ok := t.mapper.index[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return "", nil, fmt.Errorf("%w %q", ErrUnknownKey, unknown[0])
	}
	var clauses []string
	var args []interface{}
	for i, key := range t.mapper.keys {
		cond, ok := where[key]
		if !ok {
			continue
		}
		column := t.mapper.columns[i]
		switch cond.kind {
		case condIn:
			if len(cond.list) == 0 {
				clauses = append(clauses, "1 = 0")
				continue
			}
			clauses = append(clauses, "?? IN ("+placeholders(len(cond.list))+")")
			args = append(args, column)
			args = append(args, cond.list...)
		case condNull:
			clauses = append(clauses, "?? IS NULL")
			args = append(args, column)
		case condNotNull:
			clauses = append(clauses, "?? IS NOT NULL")
			args = append(args, column)
		case condLike:
			clauses = append(clauses, "?? LIKE ?")
			args = append(args, column, cond.value)
		default:
			clauses = append(clauses, "?? = ?")
			args = append(args, column, cond.value)
		}
	}
	return strings.Join(clauses, " AND "), args, nil
}

func optional(where []Predicate) Predicate {
	if len(where) > 0 {
		return where[0]
	}
	return nil
}
