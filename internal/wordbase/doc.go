// Package wordbase parses the line-oriented word database into words,
// explanation bindings and per-line errors.
//
// Each line is one of:
//
//	// comment
//	> TAG: explanation text
//	слОво [detail] [: GROUP | ! GROUP] [> TAG | < inline explanation]
//
// The uppercase letter in a word marks its stressed position. Parsing never
// stops at a bad line: every line is attempted, and failures are returned
// alongside whatever parsed successfully.
package wordbase
