package msql

import "fmt"

type (
	// Object is a domain record keyed by the binding's key names.
	Object map[string]interface{}

	// Row is a storage record keyed by column names.
	Row map[string]interface{}

	// Mapper transcodes between Objects and Rows. Keys and columns pair up
	// by position; the mapper itself never touches the database.
	Mapper struct {
		keys    []string
		columns []string
		index   map[string]int
	}
)

// NewMapper pairs key names with column names by position. ErrLengthMismatch
// is returned if the two lists differ in length, ErrDuplicateKey or
// ErrDuplicateColumn if a name appears twice in its list.
func NewMapper(keys, columns []string) (*Mapper, error) {
	if len(keys) != len(columns) {
		return nil, ErrLengthMismatch
	}
	index := make(map[string]int, len(keys))
	for i, key := range keys {
		if _, ok := index[key]; ok {
			return nil, fmt.Errorf("%w %q", ErrDuplicateKey, key)
		}
		index[key] = i
	}
	used := make(map[string]bool, len(columns))
	for _, column := range columns {
		if used[column] {
			return nil, fmt.Errorf("%w %q", ErrDuplicateColumn, column)
		}
		used[column] = true
	}
	return &Mapper{
		keys:    append([]string{}, keys...),
		columns: append([]string{}, columns...),
		index:   index,
	}, nil
}

// Key names in declared order.
func (m *Mapper) Keys() []string {
	return append([]string{}, m.keys...)
}

// Column names in declared order.
func (m *Mapper) Columns() []string {
	return append([]string{}, m.columns...)
}

// Column returns the column name paired with key.
func (m *Mapper) Column(key string) (string, bool) {
	i, ok := m.index[key]
	if !ok {
		return "", false
	}
	return m.columns[i], true
}

// Object converts a storage row into a domain object. Columns absent from
// the row leave the paired key absent; columns not declared in the mapper
// are dropped.
func (m *Mapper) Object(row Row) Object {
	object := make(Object, len(m.keys))
	for i, key := range m.keys {
		if value, ok := row[m.columns[i]]; ok {
			object[key] = value
		}
	}
	return object
}

// Row converts a domain object into a complete storage row. Every declared
// column is present in the result; keys absent from the object produce nil
// entries. Keys not declared in the mapper are dropped.
func (m *Mapper) Row(object Object) Row {
	row := make(Row, len(m.keys))
	for i, key := range m.keys {
		row[m.columns[i]] = object[key]
	}
	return row
}

// PartialRow is like Row but keys absent from the object produce no entry
// at all, so the result contains only the columns the object mentions.
func (m *Mapper) PartialRow(object Object) Row {
	row := Row{}
	for i, key := range m.keys {
		if value, ok := object[key]; ok {
			row[m.columns[i]] = value
		}
	}
	return row
}
