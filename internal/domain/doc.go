// Package domain contains the core entities of the emphasis trainer: words
// with their correct stress position, the answer variants derived from them,
// explanation bindings and quiz outcomes. It is independent of parsing,
// storage and any delivery mechanism.
package domain
