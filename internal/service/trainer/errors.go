package trainer

import "errors"

// ErrNoWords is returned by Next when the catalog is empty.
var ErrNoWords = errors.New("catalog has no words")
