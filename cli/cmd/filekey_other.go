//go:build !unix

package cmd

import "os"

func makeFileKey(path string, _ os.FileInfo) fileKey {
	return fileKey{path: path}
}
