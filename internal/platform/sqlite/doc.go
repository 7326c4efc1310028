// Package sqlite implements store.KVStore on a local SQLite file using the
// pure Go modernc.org/sqlite driver. The schema is created by embedded goose
// migrations.
package sqlite
