// Package mover relocates files into destination directories without
// clobbering existing entries.
package mover

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Errors returned by Move. Check with errors.Is():
//
//	if errors.Is(err, mover.ErrCreateDir) {
//	    // destination directory could not be created
//	}
var (
	// ErrCreateDir is returned when the destination directory cannot
	// be created.
	ErrCreateDir = errors.New("cannot create destination directory")

	// ErrMove is returned when a destination was resolved but the move
	// itself failed (source vanished, permissions, disk full).
	ErrMove = errors.New("move failed")
)

// ResolveDestination picks a collision-free path for name inside destDir.
// The plain name wins when free; otherwise stem_1.ext, stem_2.ext, ...
// are probed until an unused name is found.
//
// The existence check races with concurrent writers: two movers resolving
// the same name at the same instant can pick the same path. That window
// is accepted, not eliminated.
func ResolveDestination(destDir, name string) string {
	candidate := filepath.Join(destDir, name)
	if !exists(candidate) {
		return candidate
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for counter := 1; ; counter++ {
		candidate = filepath.Join(destDir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
		if !exists(candidate) {
			return candidate
		}
	}
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// Move relocates src into destDir, creating destDir (and any missing
// parents) first. The destination name is collision-resolved, so an
// existing file is never overwritten. Returns the resolved destination
// path; the caller decides how to surface it.
func Move(src, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrCreateDir, destDir, err)
	}

	dest := ResolveDestination(destDir, filepath.Base(src))
	if err := rename(src, dest); err != nil {
		return "", fmt.Errorf("%w: %s -> %s: %v", ErrMove, src, dest, err)
	}
	return dest, nil
}

// rename moves src to dest, falling back to copy+delete when the two
// paths live on different devices.
func rename(src, dest string) error {
	err := os.Rename(src, dest)
	if err == nil || !isCrossDevice(err) {
		return err
	}
	return copyAndRemove(src, dest)
}

// copyAndRemove copies src to dest bit-for-bit, then removes src. The
// copy lands in a temp file beside dest and is renamed into place, so
// an interrupted copy never leaves a partial file under the final name.
func copyAndRemove(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, info.Mode()); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Remove(src)
}
