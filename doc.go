// Package msql provides table-bound CRUD operations for MySQL.
//
// # Overview
//
// Package msql binds a list of domain key names to the columns of one MySQL
// table and provides typed CRUD operations plus a safe transactional
// execution wrapper on top of any connection pool. Statements are built with
// "??" identifier and "?" value placeholders; rows travel as plain maps, so
// no struct definitions or tags are needed.
//
// Key features include:
//   - Declare a table once, get Find, Save, Update and Delete for free
//   - Positional key/column mapping with automatic snake_case column names
//   - Predicates as data: Eq, In, Null, NotNull and Like conditions
//   - Transactions with acquire/begin/commit/rollback/release handled in
//     one place, including panic recovery
//   - Mutations without a predicate are refused unless asked for explicitly
//   - MySQL errors classified with code, SQLSTATE and the offending SQL
//
// # Basic Usage
//
// Bind a table and perform CRUD operations:
//
//	pool, err := standard.Open(standard.Config{
//		Username: "app",
//		Password: "secret",
//		Database: "app",
//	})
//	if err != nil {
//		log.Fatalln(err)
//	}
//	defer pool.Close()
//
//	tasks, err := msql.NewTable(msql.Options{
//		Table:   "tasks",
//		Keys:    []string{"id", "name", "createdAt"},
//		AutoSet: []string{"id", "createdAt"},
//		Pool:    pool,
//	})
//	if err != nil {
//		log.Fatalln(err)
//	}
//
//	// INSERT INTO `tasks` (`id`, `name`, `created_at`) VALUES (NULL, 'shop', NULL)
//	result, err := tasks.Save(ctx, msql.Object{"name": "shop"})
//
//	// SELECT `id`, `name`, `created_at` FROM `tasks` WHERE `id` = 1 LIMIT 2
//	task, err := tasks.FindOne(ctx, msql.Predicate{"id": msql.Eq(1)})
//
//	// UPDATE `tasks` SET `name` = 'done' WHERE `id` = 1
//	result, err = tasks.Update(ctx, msql.Object{"name": "done"},
//		msql.Predicate{"id": msql.Eq(1)})
//
//	// DELETE FROM `tasks` WHERE `id` = 1
//	result, err = tasks.Delete(ctx, msql.Predicate{"id": msql.Eq(1)})
//
// # Keys and Columns
//
// Keys name record fields the way the application spells them; columns name
// the same fields the way the table spells them. The two lists pair up by
// position. Columns are derived from keys with ToUnderscore by default
// ("createdAt" becomes "created_at"); list them explicitly in Options when
// the naming is irregular. Declared key order is load-bearing: INSERT
// columns, SET assignments and WHERE clauses all follow it, so generated
// statements are deterministic.
//
// Keys in AutoSet belong to columns the database fills in itself, such as
// auto increment ids and insertion timestamps. Save inserts NULL for them
// and Update never assigns them.
//
// # Predicates
//
// A Predicate maps key names to conditions:
//
//	msql.Predicate{
//		"status":   msql.Eq("active"),
//		"role":     msql.In("admin", "editor"),
//		"deleted":  msql.Null(),
//		"name":     msql.Like("Ann%"),
//	}
//	// `status` = ? AND `role` IN (?, ?) AND `deleted` IS NULL AND `name` LIKE ?
//
// All conditions are combined with AND. An In with no values matches no
// rows at all. Find without a predicate selects the whole table, but Update
// and Delete refuse an empty predicate with ErrUnscopedMutation; UpdateAll,
// DeleteAll and their Must variants are the explicit way to touch every
// row.
//
// # Transactions
//
// Find, FindOne, First, Count, Exists, Update and Delete each run in their
// own transaction by default; Save and SaveMany always run directly on the
// connection. Run several statements atomically with Transaction:
//
//	err := tasks.Transaction(ctx, func(ctx context.Context, sess msql.Session) error {
//		if _, err := sess.Exec(ctx, "DELETE FROM ?? WHERE ?? = ?", "tasks", "name", "old"); err != nil {
//			return err
//		}
//		_, err := sess.Exec(ctx, "INSERT INTO ?? (??) VALUES (?)", "tasks", "name", "new")
//		return err
//	})
//	// BEGIN, both statements, then COMMIT; or ROLLBACK if block fails
//
// The connection is released exactly once on every path, a rollback is
// attempted at most once, and a failing rollback never replaces the error
// that caused it. Panics inside the block become ordinary errors.
//
// # Errors
//
// Failures to acquire a connection are reported as *ConnectionError;
// statement failures as *DatabaseError carrying the MySQL error number,
// SQLSTATE and the interpolated statement. Both unwrap to the driver error,
// so errors.As and helpers like IsDuplicate keep working:
//
//	if _, err := tasks.Save(ctx, set); msql.IsDuplicate(err) {
//		// unique index hit
//	}
//
// Guard errors (ErrUnscopedMutation, ErrEmptyPredicate, ErrNotFound,
// ErrMultipleFound, unknown key names) are plain sentinel values and are
// always returned, no matter how the table is configured.
//
// # Logging
//
// Pass a logger to see every statement fully interpolated, including BEGIN,
// COMMIT and ROLLBACK. Use logger.StandardLogger for Go's built-in log
// package. By default no logger is used. Quiet returns a copy of a table
// with logging off:
//
//	tasks = tasks.WithLogger(logger.StandardLogger)
//	tasks.Quiet().MustCount(ctx) // no output
//
// # Database Adapters
//
// Operations reach MySQL through the Pool, Conn, Tx and Session interfaces.
// The standard subpackage implements them with database/sql via
// github.com/jmoiron/sqlx and github.com/go-sql-driver/mysql, including
// YAML-loadable pool configuration. Any other pool can be plugged in by
// implementing the interfaces; the "??" identifier placeholders are
// expanded client-side with ExpandStatement, so an adapter only forwards
// statements and materializes rows.
package msql
