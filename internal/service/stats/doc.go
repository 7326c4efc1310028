// Package stats implements the statistics engine: one mastery record per
// tracked word, word selection biased toward words that are due, and a
// read-merge-write synchronization with a key-value store.
//
// Synchronization is optimistic. Every Sync reads the persisted snapshot,
// skips the write when it already matches memory, and otherwise writes the
// persisted entries overlaid with the in-memory ones. Several engines may
// share one store; the last writer wins per key and no locks are taken.
package stats
