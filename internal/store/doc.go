// Package store defines the persistence interfaces for tasks and the errors
// shared by their implementations. Business logic depends on these
// interfaces only, never on a concrete database.
package store
