package msql

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// ExpandStatement replaces every "??" placeholder in query with the quoted
// identifier from args, leaving "?" value placeholders for the driver. The
// identifier argument must be a string or a []string (joined with commas).
// It returns the expanded statement and the remaining value arguments in
// placeholder order. The argument count must match the placeholder count
// exactly.
func ExpandStatement(query string, args []interface{}) (string, []interface{}, error) {
	var out strings.Builder
	values := make([]interface{}, 0, len(args))
	n := 0
	for i := 0; i < len(query); i++ {
		c := query[i]
		if c != '?' {
			out.WriteByte(c)
			continue
		}
		if n >= len(args) {
			return "", nil, ErrTooFewArguments
		}
		if i+1 < len(query) && query[i+1] == '?' {
			ident, err := identifier(args[n])
			if err != nil {
				return "", nil, err
			}
			out.WriteString(ident)
			i++
		} else {
			values = append(values, args[n])
			out.WriteByte('?')
		}
		n++
	}
	if n < len(args) {
		return "", nil, ErrTooManyArguments
	}
	return out.String(), values, nil
}

// Format interpolates all placeholders in query, quoting identifiers and
// escaping values, and returns the resulting statement. The output is meant
// for logging and error messages, never for execution; drivers receive
// values through ExpandStatement instead. Format is forgiving: placeholders
// without arguments are kept as-is and extra arguments are ignored.
func Format(query string, args []interface{}) string {
	var out strings.Builder
	n := 0
	for i := 0; i < len(query); i++ {
		c := query[i]
		if c != '?' || n >= len(args) {
			out.WriteByte(c)
			continue
		}
		if i+1 < len(query) && query[i+1] == '?' {
			if ident, err := identifier(args[n]); err == nil {
				out.WriteString(ident)
			} else {
				out.WriteString(fmt.Sprint(args[n]))
			}
			i++
		} else {
			out.WriteString(formatValue(args[n]))
		}
		n++
	}
	return out.String()
}

// QuoteIdentifier quotes a table or column name with backticks. Dotted
// names are quoted per part, so "db.users" becomes "`db`.`users`".
func QuoteIdentifier(name string) string {
	parts := strings.Split(name, ".")
	for i, part := range parts {
		parts[i] = "`" + strings.ReplaceAll(part, "`", "``") + "`"
	}
	return strings.Join(parts, ".")
}

func identifier(arg interface{}) (string, error) {
	switch x := arg.(type) {
	case string:
		return QuoteIdentifier(x), nil
	case []string:
		quoted := make([]string, len(x))
		for i, name := range x {
			quoted[i] = QuoteIdentifier(name)
		}
		return strings.Join(quoted, ", "), nil
	}
	return "", fmt.Errorf("%w, got %T", ErrBadIdentifier, arg)
}

func formatValue(value interface{}) string {
	switch x := value.(type) {
	case nil:
		return "NULL"
	case bool:
		if x {
			return "true"
		}
		return "false"
	case string:
		return quoteString(x)
	case []byte:
		return quoteString(string(x))
	case time.Time:
		return "'" + x.Format("2006-01-02 15:04:05.000") + "'"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(x)
	case driver.Valuer:
		if v, err := x.Value(); err == nil {
			return formatValue(v)
		}
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = formatValue(rv.Index(i).Interface())
		}
		return strings.Join(parts, ", ")
	}
	return quoteString(fmt.Sprint(value))
}

func quoteString(s string) string {
	var out strings.Builder
	out.WriteByte('\'')
	for _, r := range s {
		switch r {
		case 0:
			out.WriteString(`\0`)
		case '\b':
			out.WriteString(`\b`)
		case '\t':
			out.WriteString(`\t`)
		case '\n':
			out.WriteString(`\n`)
		case '\r':
			out.WriteString(`\r`)
		case 0x1a:
			out.WriteString(`\Z`)
		case '\'':
			out.WriteString(`\'`)
		case '"':
			out.WriteString(`\"`)
		case '\\':
			out.WriteString(`\\`)
		default:
			out.WriteRune(r)
		}
	}
	out.WriteByte('\'')
	return out.String()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
