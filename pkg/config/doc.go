// Package config loads typed configuration structs from environment
// variables (with optional .env file support) and caches them per type for
// the process lifetime.
package config
