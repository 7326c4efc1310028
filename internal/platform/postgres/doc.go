// Package postgres implements store.KVStore on a PostgreSQL table through a
// pgx connection pool. It handles the details of connecting, migrating the
// schema and mapping driver errors to store errors.
package postgres
