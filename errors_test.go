package msql

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestDatabaseErrorString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *DatabaseError
		want string
	}{
		{
			name: "server error",
			err: &DatabaseError{
				Code:    1062,
				State:   "23000",
				Message: "Duplicate entry 'Ann' for key 'tasks.name'",
				SQL:     "INSERT INTO `tasks` (`name`) VALUES ('Ann')",
			},
			want: "error 1062 (23000): Duplicate entry 'Ann' for key 'tasks.name' in INSERT INTO `tasks` (`name`) VALUES ('Ann')",
		},
		{
			name: "plain error",
			err:  &DatabaseError{Message: "driver: bad connection"},
			want: "driver: bad connection",
		},
		{
			name: "plain error with statement",
			err:  &DatabaseError{Message: "context canceled", SQL: "COMMIT"},
			want: "context canceled in COMMIT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	connErr := &ConnectionError{Err: cause}
	if !errors.Is(connErr, cause) {
		t.Error("ConnectionError does not unwrap to its cause")
	}
	if want := "cannot acquire connection: connection refused"; connErr.Error() != want {
		t.Errorf("Error() = %q, want %q", connErr.Error(), want)
	}

	myErr := &mysql.MySQLError{Number: 1146, Message: "Table 'app.tasks' doesn't exist"}
	dbErr := &DatabaseError{Code: 1146, Message: myErr.Message, Err: myErr}
	var got *mysql.MySQLError
	if !errors.As(dbErr, &got) || got.Number != 1146 {
		t.Error("DatabaseError does not unwrap to the driver error")
	}
}

func TestDbErrorClassification(t *testing.T) {
	t.Parallel()

	l := &testLogger{}
	table := newTestTable(t, &fakeDB{}).WithLogger(l)

	t.Run("driver error", func(t *testing.T) {
		err := table.dbError(&mysql.MySQLError{
			Number:   1062,
			SQLState: [5]byte{'2', '3', '0', '0', '0'},
			Message:  "Duplicate entry",
		}, "INSERT INTO ?? (??) VALUES (?)", []interface{}{"tasks", "name", "Ann"})

		var dbErr *DatabaseError
		if !errors.As(err, &dbErr) {
			t.Fatalf("dbError() = %T", err)
		}
		if dbErr.Code != 1062 || dbErr.State != "23000" {
			t.Errorf("Code = %d, State = %q", dbErr.Code, dbErr.State)
		}
		if want := "INSERT INTO `tasks` (`name`) VALUES ('Ann')"; dbErr.SQL != want {
			t.Errorf("SQL = %q, want %q", dbErr.SQL, want)
		}
	})

	t.Run("plain error", func(t *testing.T) {
		err := table.dbError(errors.New("driver: bad connection"), "COMMIT", nil)
		var dbErr *DatabaseError
		if !errors.As(err, &dbErr) {
			t.Fatalf("dbError() = %T", err)
		}
		if dbErr.Code != 0 {
			t.Errorf("Code = %d, want 0", dbErr.Code)
		}
		if dbErr.Message != "driver: bad connection" {
			t.Errorf("Message = %q", dbErr.Message)
		}
	})

	if len(l.errors) != 2 {
		t.Errorf("logged errors = %v, want one per classification", l.errors)
	}
}

func TestIsDuplicate(t *testing.T) {
	t.Parallel()

	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	if !IsDuplicate(dup) {
		t.Error("IsDuplicate(1062) = false")
	}
	if !IsDuplicate(&DatabaseError{Err: dup}) {
		t.Error("IsDuplicate does not see through DatabaseError")
	}
	if IsDuplicate(&mysql.MySQLError{Number: 1146}) {
		t.Error("IsDuplicate(1146) = true")
	}
	if IsDuplicate(errors.New("duplicate-ish")) {
		t.Error("IsDuplicate(plain error) = true")
	}
	if IsDuplicate(nil) {
		t.Error("IsDuplicate(nil) = true")
	}
}

func TestSilence(t *testing.T) {
	t.Parallel()

	quiet := newTestTable(t, &fakeDB{}, Behavior{SilenceErrors: true})
	loud := newTestTable(t, &fakeDB{})

	dbErr := &DatabaseError{Message: "broken"}
	if quiet.silence(dbErr) != nil {
		t.Error("silence() kept a database error")
	}
	if loud.silence(dbErr) != dbErr {
		t.Error("silence() dropped an error without SilenceErrors")
	}
	if quiet.silence(ErrNotFound) != ErrNotFound {
		t.Error("silence() dropped ErrNotFound")
	}
	if quiet.silence(ErrUnscopedMutation) != ErrUnscopedMutation {
		t.Error("silence() dropped ErrUnscopedMutation")
	}
	if quiet.silence(nil) != nil {
		t.Error("silence(nil) != nil")
	}
}
