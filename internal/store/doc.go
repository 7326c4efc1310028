// Package store defines the persistence port used by the statistics engine.
// The port is a minimal key-value contract so that the engine stays
// independent of the backing medium: an in-process map, an SQLite file or a
// PostgreSQL table all satisfy it.
package store
