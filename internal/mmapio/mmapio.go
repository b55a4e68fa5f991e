// Package mmapio provides the memory-mapped file plumbing around the
// solver: opening, sizing, mapping, and flushing the input and output
// files. None of this touches the DLX/search/pipeline core; it exists only
// so the repo is runnable end to end, built on golang.org/x/sys/unix's
// mmap/munmap/msync wrappers (stat and truncate go through os.File).
package mmapio

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Region is a memory-mapped view of a file. The zero value is not usable.
type Region struct {
	file *os.File
	data []byte
}

// Data returns the mapped bytes. It is empty (not nil-mapped) for a
// zero-length file.
func (r *Region) Data() []byte { return r.data }

// OpenInput opens path read-only and maps its entire contents. The returned
// size is the file's size even when that size is 0, in
// which case Data is an empty slice and no mapping is established (mmap of
// a zero-length region is not meaningful on most platforms).
func OpenInput(path string) (*Region, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening input file %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("stat of input file %s: %w", path, err)
	}
	size := info.Size()

	if size == 0 {
		return &Region{file: f}, 0, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("mmap of input file %s: %w", path, err)
	}
	return &Region{file: f, data: data}, size, nil
}

// CreateOutput truncates (creating if necessary) path to size bytes and
// maps it read-write. size == 0 produces an empty, unmapped region with a
// zero-length output file, for the zero-puzzle case.
func CreateOutput(path string, size int64) (*Region, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o775)
	if err != nil {
		return nil, fmt.Errorf("opening output file %s: %w", path, err)
	}

	if err := f.Truncate(size); err != nil {
		f.Close()
		return nil, fmt.Errorf("truncating output file %s: %w", path, err)
	}

	if size == 0 {
		return &Region{file: f}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap of output file %s: %w", path, err)
	}
	return &Region{file: f, data: data}, nil
}

// FlushAsync issues an asynchronous flush hint (msync MS_ASYNC) for the
// byte range [offset, offset+length) of the mapping. A failure here is
// reported, not fatal.
func (r *Region) FlushAsync(offset, length int) error {
	if length <= 0 || r.data == nil {
		return nil
	}
	end := offset + length
	if end > len(r.data) {
		end = len(r.data)
	}
	if offset >= end {
		return nil
	}
	if err := unix.Msync(r.data[offset:end], unix.MS_ASYNC); err != nil {
		return fmt.Errorf("msync: %w", err)
	}
	return nil
}

// Close unmaps the region (if mapped) and closes the underlying file. An
// unmap failure is reported but otherwise ignored — the file descriptor is
// still closed.
func (r *Region) Close() error {
	var unmapErr error
	if r.data != nil {
		if err := unix.Munmap(r.data); err != nil {
			unmapErr = fmt.Errorf("munmap: %w", err)
		}
		r.data = nil
	}
	closeErr := r.file.Close()
	if unmapErr != nil {
		return unmapErr
	}
	if closeErr != nil {
		return fmt.Errorf("closing file: %w", closeErr)
	}
	return nil
}
