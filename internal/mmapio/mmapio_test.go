package mmapio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenInputMapsContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	want := []byte("hello, mmap\n")
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatal(err)
	}

	r, size, err := OpenInput(path)
	if err != nil {
		t.Fatalf("OpenInput: %v", err)
	}
	defer r.Close()

	if size != int64(len(want)) {
		t.Fatalf("size = %d, want %d", size, len(want))
	}
	if string(r.Data()) != string(want) {
		t.Fatalf("Data() = %q, want %q", r.Data(), want)
	}
}

func TestOpenInputEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	r, size, err := OpenInput(path)
	if err != nil {
		t.Fatalf("OpenInput: %v", err)
	}
	defer r.Close()

	if size != 0 {
		t.Fatalf("size = %d, want 0", size)
	}
	if len(r.Data()) != 0 {
		t.Fatalf("Data() len = %d, want 0", len(r.Data()))
	}
}

func TestOpenInputMissingFile(t *testing.T) {
	_, _, err := OpenInput(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	if err == nil {
		t.Fatal("expected an error for a missing input file")
	}
}

func TestCreateOutputTruncatesAndMaps(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	const size = 164 * 3
	r, err := CreateOutput(path, size)
	if err != nil {
		t.Fatalf("CreateOutput: %v", err)
	}
	defer r.Close()

	if len(r.Data()) != size {
		t.Fatalf("Data() len = %d, want %d", len(r.Data()), size)
	}

	copy(r.Data(), []byte("written through the mapping"))
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != size {
		t.Fatalf("file size = %d, want %d", len(got), size)
	}
	if string(got[:len("written through the mapping")]) != "written through the mapping" {
		t.Fatalf("writes through the mapping were not persisted: %q", got[:40])
	}
}

func TestCreateOutputZeroSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out-empty.txt")

	r, err := CreateOutput(path, 0)
	if err != nil {
		t.Fatalf("CreateOutput: %v", err)
	}
	defer r.Close()

	if len(r.Data()) != 0 {
		t.Fatalf("Data() len = %d, want 0", len(r.Data()))
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Fatalf("file size = %d, want 0", info.Size())
	}
}

func TestFlushAsyncNoopOnUnmappedRegion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out-empty.txt")
	r, err := CreateOutput(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if err := r.FlushAsync(0, 100); err != nil {
		t.Fatalf("FlushAsync on an unmapped region should be a no-op, got %v", err)
	}
}

func TestFlushAsyncClampsToRegionLength(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	r, err := CreateOutput(path, 164)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if err := r.FlushAsync(0, 1<<20); err != nil {
		t.Fatalf("FlushAsync should clamp an over-long range, got %v", err)
	}
}
