// Package sqlite provides persistent conversation history storage
// using SQLite via the pure-Go modernc.org/sqlite driver. The schema
// is managed through embedded migrations.
package sqlite
