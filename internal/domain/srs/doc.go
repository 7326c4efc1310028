// Package srs implements the Leitner-style spaced repetition rules used by the
// trainer: eight mastery levels, the repetition interval attached to each
// level, and the per-word record that tracks when a word was last shown.
//
// Everything here is a pure function of its inputs; the current time is
// always passed in by the caller.
package srs
