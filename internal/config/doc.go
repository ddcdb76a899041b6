// Package config loads, parses and validates application settings from
// environment variables, an optional .env file and an optional config file,
// keeping configuration details separate from business logic.
package config
