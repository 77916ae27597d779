//go:build unix

package cmd

import (
	"os"
	"syscall"
)

func makeFileKey(path string, info os.FileInfo) fileKey {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return fileKey{dev: uint64(stat.Dev), ino: uint64(stat.Ino)} //nolint:unconvert
	}

	return fileKey{path: path}
}
