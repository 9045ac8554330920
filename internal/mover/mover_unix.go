//go:build unix

package mover

import (
	"errors"

	"golang.org/x/sys/unix"
)

// isCrossDevice reports whether err is the kernel refusing to rename
// across filesystem boundaries.
func isCrossDevice(err error) bool {
	return errors.Is(err, unix.EXDEV)
}
