// Package testdb provides helpers for integration tests that need a real
// PostgreSQL database.
//
// Tests obtain a connection with GetTestDBWithT, which skips the test when no
// database URL is configured, and isolate their changes with WithTx. The
// schema is created from the same embedded goose migrations the server runs.
//
//	db := testdb.GetTestDBWithT(t)
//	testdb.SetupTestDatabaseSchema(t, db)
//	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//		taskStore := postgres.NewPostgresTaskStore(tx, nil)
//		...
//	})
package testdb
