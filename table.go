package msql

import (
	"fmt"
	"strconv"

	"github.com/gopsql/logger"
)

type (
	// Table binds key names to the columns of one database table and
	// provides CRUD operations on it. A Table is read-only after NewTable
	// and can be shared between goroutines; Quiet, WithPool, WithLogger and
	// WithBehavior return modified copies.
	Table struct {
		name     string
		mapper   *Mapper
		autoSet  map[string]bool
		pool     Pool
		logger   logger.Logger
		behavior Behavior
	}

	// Options describes a Table. Table and Keys are required; everything
	// else has a usable zero value.
	Options struct {
		// Table is the table name in the database.
		Table string

		// Keys lists the domain key names in declared order. Statement
		// column order, predicate clause order and setter column order all
		// follow this order.
		Keys []string

		// Columns lists the column names paired with Keys by position. When
		// nil, columns are derived from Keys with DefaultColumnNamer. When
		// set, it must have the same length as Keys.
		Columns []string

		// AutoSet names keys whose columns the database populates itself,
		// such as auto increment ids and insertion timestamps. Their
		// columns are inserted as NULL and never updated; setter values
		// for them are ignored.
		AutoSet []string

		// Pool provides database connections. A Table without a pool can
		// still build statements, but operations return ErrNoPool.
		Pool Pool

		// Logger receives executed statements and errors. Use
		// logger.StandardLogger for Go's built-in log package. By default,
		// no logger is used, so SQL statements are not printed.
		Logger logger.Logger

		// Behavior adjusts how operations run. The zero value runs
		// operations in transactions, rolls back on error and returns all
		// errors.
		Behavior Behavior
	}

	// Behavior toggles are named so the zero value is the default mode.
	Behavior struct {
		// NoTransaction runs operations directly on the acquired
		// connection, without BEGIN/COMMIT. Save and SaveMany always run
		// this way.
		NoTransaction bool

		// NoRollback leaves a failed transaction to the connection
		// teardown instead of issuing ROLLBACK.
		NoRollback bool

		// SilenceErrors converts connection and database errors into
		// absent results: nil objects, zero Results. The errors still
		// reach the logger. Guard errors such as ErrUnscopedMutation,
		// ErrNotFound or predicate shape errors are always returned.
		SilenceErrors bool
	}
)

// NewTable validates options and binds a Table. Columns are derived from
// Keys with DefaultColumnNamer unless listed explicitly.
func NewTable(opts Options) (*Table, error) {
	if opts.Table == "" {
		return nil, ErrNoTable
	}
	if len(opts.Keys) == 0 {
		return nil, ErrNoKeys
	}
	columns := opts.Columns
	if columns == nil {
		columns = make([]string, len(opts.Keys))
		for i, key := range opts.Keys {
			if DefaultColumnNamer != nil {
				columns[i] = DefaultColumnNamer(key)
			} else {
				columns[i] = key
			}
		}
	}
	mapper, err := NewMapper(opts.Keys, columns)
	if err != nil {
		return nil, err
	}
	autoSet := make(map[string]bool, len(opts.AutoSet))
	for _, key := range opts.AutoSet {
		if _, ok := mapper.index[key]; !ok {
			return nil, fmt.Errorf("%w %q in AutoSet", ErrUnknownKey, key)
		}
		autoSet[key] = true
	}
	return &Table{
		name:     opts.Table,
		mapper:   mapper,
		autoSet:  autoSet,
		pool:     opts.Pool,
		logger:   opts.Logger,
		behavior: opts.Behavior,
	}, nil
}

// MustNewTable is like NewTable but panics if the options are invalid.
func MustNewTable(opts Options) *Table {
	table, err := NewTable(opts)
	if err != nil {
		panic(err)
	}
	return table
}

func (t *Table) String() string {
	return `table (name: "` + t.name + `") has ` + strconv.Itoa(len(t.mapper.keys)) + " keys"
}

// Table name in the database.
func (t *Table) Name() string {
	return t.name
}

// Key names in declared order.
func (t *Table) Keys() []string {
	return t.mapper.Keys()
}

// Column names in declared order.
func (t *Table) Columns() []string {
	return t.mapper.Columns()
}

// The mapper used by this table.
func (t *Table) Mapper() *Mapper {
	return t.mapper
}

func (t *Table) clone() *Table {
	c := *t
	return &c
}

// Quiet returns a copy of the table without logger.
func (t *Table) Quiet() *Table {
	c := t.clone()
	c.logger = nil
	return c
}

// WithLogger returns a copy of the table using the given logger.
func (t *Table) WithLogger(l logger.Logger) *Table {
	c := t.clone()
	c.logger = l
	return c
}

// WithPool returns a copy of the table using the given pool.
func (t *Table) WithPool(p Pool) *Table {
	c := t.clone()
	c.pool = p
	return c
}

// WithBehavior returns a copy of the table using the given behavior.
func (t *Table) WithBehavior(b Behavior) *Table {
	c := t.clone()
	c.behavior = b
	return c
}

func (t *Table) logSQL(query string, args []interface{}) {
	if t.logger == nil {
		return
	}
	if len(args) == 0 {
		t.logger.Debug(query)
		return
	}
	t.logger.Debug(Format(query, args))
}

func (t *Table) logError(err error) {
	if t.logger == nil {
		return
	}
	t.logger.Error(err)
}
