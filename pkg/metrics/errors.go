package metrics

import (
	"errors"
)

// Sentinel kinds for metrics errors.
var (
	ErrUnknownLookupResult = errors.New("unknown lookup result")
)
