package logger

import (
	"errors"
	"os"
	"sync"

	"github.com/AvigailEhrlich/Lab-General-Logger/pkg"
)

// pathLocks serializes appends to the same file within this process.
//
//nolint:gochecknoglobals
var pathLocks sync.Map // map[string]*sync.Mutex

// appendFile appends data to the file at path with a single write, creating
// the file if needed. The file is closed before returning.
func appendFile(path string, data []byte) error {
	mu, _ := pathLocks.LoadOrStore(path, new(sync.Mutex))
	mu.(*sync.Mutex).Lock()
	defer mu.(*sync.Mutex).Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return pkg.ErrOpenLog.Wrap(err)
	}

	_, werr := f.Write(data)

	if err := errors.Join(werr, f.Close()); err != nil {
		return pkg.ErrWriteLog.Wrap(err)
	}

	return nil
}
