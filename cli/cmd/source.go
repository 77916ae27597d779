package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
)

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// sourceFiles reads a list of named sources in order, each at most once.
type sourceFiles struct {
	files []*os.File
	r     io.Reader
}

func (s *sourceFiles) Read(p []byte) (int, error) { return s.r.Read(p) }

// Close closes every opened file.
func (s *sourceFiles) Close() error {
	var errs []error

	for _, f := range s.files {
		errs = append(errs, f.Close())
	}

	return errors.Join(errs...)
}

// fileKey uniquely identifies a file by its device and inode numbers, or by
// its resolved path where the platform does not report them.
type fileKey struct {
	path string
	dev  uint64
	ino  uint64
}

// openSources opens the named sources for reading.
//
// Duplicates are read once, comparing resolved paths and device/inode pairs,
// so symlinks and relative paths to the same file collapse. Every "-" refers
// to the input of ctx, which is read last. No names is the same as "-".
func openSources(ctx context.Context, names []string) (*sourceFiles, error) {
	if len(names) == 0 {
		names = []string{stdinSource}
	}

	var (
		srcs  sourceFiles
		stdin bool
	)

	seen := make(map[fileKey]struct{})

	for _, name := range names {
		if name == stdinSource {
			stdin = true

			continue
		}

		file, err := openUniqueFile(name, seen)
		if err != nil {
			_ = srcs.Close()

			return nil, err
		}

		if file != nil {
			srcs.files = append(srcs.files, file)
		}
	}

	readers := make([]io.Reader, 0, len(srcs.files)+1)
	for _, f := range srcs.files {
		readers = append(readers, f)
	}

	if stdin {
		readers = append(readers, inputFrom(ctx))
	}

	srcs.r = io.MultiReader(readers...)

	return &srcs, nil
}

// openUniqueFile opens the file at path unless it has been seen before, in
// which case it returns nil and no error.
func openUniqueFile(path string, seen map[fileKey]struct{}) (*os.File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, err
	}

	key := makeFileKey(resolved, info)
	if _, exists := seen[key]; exists {
		return nil, nil
	}

	seen[key] = struct{}{}

	return os.Open(resolved)
}
