package wordbase

import (
	_ "embed"
)

//go:embed data.txt
var defaultData string

// Default parses the database bundled with the binary.
func Default() Result {
	return Parse(defaultData)
}

// DefaultText returns the raw text of the bundled database.
func DefaultText() string {
	return defaultData
}
