// Package postgres provides the PostgreSQL implementation of the storage
// interfaces defined in internal/store, along with the embedded goose
// migrations that create its schema.
//
// Stores accept a store.DBTX so the same code runs on the connection pool or
// inside a transaction obtained through WithTx.
package postgres
