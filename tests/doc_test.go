// Package msql_test contains integration tests for the msql package.
//
// These tests require a MySQL server to be available. The data source name
// can be configured via the DBCONNSTR environment variable.
//
// # Running Tests
//
// To run integration tests with a custom server:
//
//	DBCONNSTR="user:pass@tcp(host:3306)/dbname?parseTime=true" go test ./tests/...
//
// If DBCONNSTR is not set, tests will attempt to connect to:
//
//	root@tcp(127.0.0.1:3306)/msqltests?parseTime=true
//
// The parseTime parameter must be enabled, otherwise DATETIME columns scan
// into strings instead of time.Time.
//
// # Test Organization
//
//   - integration_test.go: CRUD operations, transactions and guard errors
//   - datatypes_test.go: column type round trips through the standard adapter
//
// Tests will skip when the server is unreachable rather than failing.
package msql_test
