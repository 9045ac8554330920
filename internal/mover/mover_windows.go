//go:build windows

package mover

import (
	"errors"

	"golang.org/x/sys/windows"
)

// isCrossDevice reports whether err is Windows refusing to rename
// across volumes.
func isCrossDevice(err error) bool {
	return errors.Is(err, windows.ERROR_NOT_SAME_DEVICE)
}
