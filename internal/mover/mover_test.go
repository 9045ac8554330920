package mover

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// TestMove_EmptyDestination verifies that moving into an empty directory
// keeps the plain file name.
func TestMove_EmptyDestination(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "photo.png")
	writeFile(t, src, "pixels")

	destDir := filepath.Join(tmpDir, "images")
	dest, err := Move(src, destDir)
	if err != nil {
		t.Fatalf("Move() failed: %v", err)
	}

	if dest != filepath.Join(destDir, "photo.png") {
		t.Errorf("Resolved destination = %s, want %s", dest, filepath.Join(destDir, "photo.png"))
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("Source should no longer exist after move")
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("Failed to read destination: %v", err)
	}
	if string(data) != "pixels" {
		t.Errorf("Destination content = %q, want %q", data, "pixels")
	}
}

// TestMove_CollisionNumbering verifies the stem_N.ext naming sequence
// for repeated moves of the same base name.
func TestMove_CollisionNumbering(t *testing.T) {
	tmpDir := t.TempDir()
	destDir := filepath.Join(tmpDir, "images")

	for i, want := range []string{"photo.png", "photo_1.png", "photo_2.png"} {
		src := filepath.Join(tmpDir, "photo.png")
		writeFile(t, src, "pixels")

		dest, err := Move(src, destDir)
		if err != nil {
			t.Fatalf("Move() #%d failed: %v", i, err)
		}
		if filepath.Base(dest) != want {
			t.Errorf("Move #%d resolved to %s, want %s", i, filepath.Base(dest), want)
		}
	}
}

// TestMove_CollisionWithoutExtension verifies collision numbering for a
// file that has no extension.
func TestMove_CollisionWithoutExtension(t *testing.T) {
	tmpDir := t.TempDir()
	destDir := filepath.Join(tmpDir, "others")

	writeFile(t, filepath.Join(tmpDir, "notes"), "first")
	if _, err := Move(filepath.Join(tmpDir, "notes"), destDir); err != nil {
		t.Fatalf("Move() failed: %v", err)
	}

	writeFile(t, filepath.Join(tmpDir, "notes"), "second")
	dest, err := Move(filepath.Join(tmpDir, "notes"), destDir)
	if err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if filepath.Base(dest) != "notes_1" {
		t.Errorf("Resolved to %s, want notes_1", filepath.Base(dest))
	}
}

// TestResolveDestination verifies resolution without performing a move.
func TestResolveDestination(t *testing.T) {
	destDir := t.TempDir()

	if got := ResolveDestination(destDir, "a.txt"); got != filepath.Join(destDir, "a.txt") {
		t.Errorf("ResolveDestination = %s, want plain name", got)
	}

	writeFile(t, filepath.Join(destDir, "a.txt"), "x")
	writeFile(t, filepath.Join(destDir, "a_1.txt"), "x")

	if got := ResolveDestination(destDir, "a.txt"); filepath.Base(got) != "a_2.txt" {
		t.Errorf("ResolveDestination = %s, want a_2.txt", filepath.Base(got))
	}
}

// TestMove_CreateDirError verifies that a destination directory blocked
// by a regular file reports ErrCreateDir.
func TestMove_CreateDirError(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "a.txt")
	writeFile(t, src, "x")

	blocker := filepath.Join(tmpDir, "documents")
	writeFile(t, blocker, "not a directory")

	_, err := Move(src, blocker)
	if err == nil {
		t.Fatal("Move() should fail when the destination directory is a file")
	}
	if !errors.Is(err, ErrCreateDir) {
		t.Errorf("Expected ErrCreateDir, got %v", err)
	}
	if _, statErr := os.Stat(src); statErr != nil {
		t.Error("Source should be untouched after a failed move")
	}
}

// TestMove_MissingSource verifies that a vanished source reports ErrMove.
func TestMove_MissingSource(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Move(filepath.Join(tmpDir, "gone.txt"), filepath.Join(tmpDir, "documents"))
	if err == nil {
		t.Fatal("Move() should fail for a missing source")
	}
	if !errors.Is(err, ErrMove) {
		t.Errorf("Expected ErrMove, got %v", err)
	}
}

// TestMove_NestedDestination verifies that missing intermediate
// directories are created.
func TestMove_NestedDestination(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "a.txt")
	writeFile(t, src, "x")

	destDir := filepath.Join(tmpDir, "sorted", "documents")
	dest, err := Move(src, destDir)
	if err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Errorf("Destination missing after move: %v", err)
	}
}

// TestMove_SequentialCollisionsPreserveContent verifies that colliding
// moves never overwrite each other and every payload survives.
//
// Name resolution has a known check-then-rename race between truly
// simultaneous movers; callers serialize moves (batch) or space them
// apart (watch settle), so this exercises the sequential contract.
func TestMove_SequentialCollisionsPreserveContent(t *testing.T) {
	tmpDir := t.TempDir()
	destDir := filepath.Join(tmpDir, "images")

	payloads := map[string]bool{"one": false, "two": false, "three": false}
	for payload := range payloads {
		src := filepath.Join(tmpDir, "shot.png")
		writeFile(t, src, payload)
		if _, err := Move(src, destDir); err != nil {
			t.Fatalf("Move() failed: %v", err)
		}
	}

	entries, err := os.ReadDir(destDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 files in destination, got %d", len(entries))
	}
	for _, entry := range entries {
		data, err := os.ReadFile(filepath.Join(destDir, entry.Name()))
		if err != nil {
			t.Fatalf("Failed to read %s: %v", entry.Name(), err)
		}
		payloads[string(data)] = true
	}
	for payload, seen := range payloads {
		if !seen {
			t.Errorf("Payload %q was lost", payload)
		}
	}
}
