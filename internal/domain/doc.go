// Package domain contains the core business entities of the task tracker,
// independent of any storage or transport concerns.
package domain
