// Package mocks provides test doubles for the storage interfaces. Each mock
// has optional function fields that override its behavior and otherwise falls
// back to a simple in-memory implementation.
package mocks
