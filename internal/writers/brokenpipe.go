package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err came from a reader that went away
// early, as when stdout is piped into head.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
