package collections

import "github.com/vango-dev/signaled/internal/errors"

// ErrIndexOutOfRange is returned by List operations given an invalid
// index. Compare with errors.Is.
var ErrIndexOutOfRange = errors.New(errors.CodeIndexOutOfRange)

func indexError(i, n int) error {
	return errors.New(errors.CodeIndexOutOfRange).
		WithDetailf("index %d, length %d", i, n).
		WithSuggestion("Check Len() first; Insert also accepts i == Len().")
}
