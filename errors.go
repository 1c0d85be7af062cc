package msql

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

var (
	ErrNoPool              = errors.New("no pool")
	ErrNoTable             = errors.New("no table name")
	ErrNoKeys              = errors.New("no keys")
	ErrLengthMismatch      = errors.New("keys and columns differ in length")
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrDuplicateColumn     = errors.New("duplicate column")
	ErrUnknownKey          = errors.New("unknown key")
	ErrEmptyPredicate      = errors.New("empty predicate")
	ErrEmptySetter         = errors.New("empty setter")
	ErrUnscopedMutation    = errors.New("refusing to mutate without predicate")
	ErrNotFound            = errors.New("record not found")
	ErrMultipleFound       = errors.New("multiple records found")
	ErrTypeAssertionFailed = errors.New("type assertion failed")
	ErrBadIdentifier       = errors.New("identifier must be string or []string")
	ErrTooFewArguments     = errors.New("not enough arguments for placeholders")
	ErrTooManyArguments    = errors.New("too many arguments for placeholders")
)

type (
	// ConnectionError is returned when no connection could be acquired from
	// the pool. No statement has been executed and no transaction started
	// when it occurs.
	ConnectionError struct {
		Err error
	}

	// DatabaseError is returned when the database rejects a statement. Code
	// and State carry the server error number and SQLSTATE when the driver
	// provides them. SQL is the statement with parameters interpolated, for
	// diagnostics only.
	DatabaseError struct {
		Code    uint16
		State   string
		Message string
		SQL     string
		Args    []interface{}
		Err     error
	}
)

func (e *ConnectionError) Error() string {
	return "cannot acquire connection: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func (e *DatabaseError) Error() string {
	out := e.Message
	if e.Code != 0 {
		out = fmt.Sprintf("error %d (%s): %s", e.Code, e.State, e.Message)
	}
	if e.SQL != "" {
		out += " in " + e.SQL
	}
	return out
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

const mysqlDuplicateEntry = 1062

// IsDuplicate reports whether err is a duplicate entry error (MySQL error
// 1062), for example from a unique index violation during Save.
func IsDuplicate(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry
}

// dbError wraps a driver error into a DatabaseError and reports it to the
// logger if one is set.
func (t *Table) dbError(err error, query string, args []interface{}) error {
	e := &DatabaseError{SQL: Format(query, args), Args: args, Err: err}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		e.Code = myErr.Number
		e.Message = myErr.Message
		if myErr.SQLState != [5]byte{} {
			e.State = string(myErr.SQLState[:])
		}
	} else {
		e.Message = err.Error()
	}
	t.logError(e)
	return e
}

// silence drops connection and database errors when Behavior.SilenceErrors
// is set, turning the operation's outcome into an absent result. All other
// errors pass through.
func (t *Table) silence(err error) error {
	if err == nil || !t.behavior.SilenceErrors {
		return err
	}
	var connErr *ConnectionError
	var dbErr *DatabaseError
	if errors.As(err, &connErr) || errors.As(err, &dbErr) {
		return nil
	}
	return err
}
