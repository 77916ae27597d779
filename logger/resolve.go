package logger

//go:generate go tool stringer --linecomment --type Outcome --output outcome_string.go

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/AvigailEhrlich/Lab-General-Logger/pkg"
	"github.com/AvigailEhrlich/Lab-General-Logger/settings"
)

// Outcome is the state of a Logger's resolution.
type Outcome int

const (
	Unresolved Outcome = iota // unresolved
	Resolved                  // resolved
	Degraded                  // degraded
)

// Resolution is the configuration a Logger resolved.
// Once its Outcome is not Unresolved, it never changes.
type Resolution struct {
	// Err holds the failure that degraded the resolution.
	Err error
	// Path is the log file. It may be set even when degraded.
	Path string
	// Source names the settings source used, if any.
	Source      string
	Outcome     Outcome
	InfoEnabled bool
}

// FileName returns the name of the log file for the day of t.
func FileName(t time.Time) string {
	return "Log-" + t.Format(FileNameLayout) + ".txt"
}

// CurrentUser returns the name of the user running the process, without any
// domain qualifier.
func CurrentUser() (string, error) {
	u, err := user.Current()
	if err == nil && u.Username != "" {
		name := u.Username
		if i := strings.LastIndexByte(name, '\\'); i >= 0 {
			name = name[i+1:]
		}

		return name, nil
	}

	for _, env := range []string{"USER", "USERNAME"} {
		if name := os.Getenv(env); name != "" {
			return name, nil
		}
	}

	if err == nil {
		err = errors.New("empty user name")
	}

	return "", err
}

func (c config) resolve() (res Resolution) {
	res.Outcome = Degraded
	res.InfoEnabled = settings.DefaultConfig().InfoLoggingEnabled

	defer func() {
		if r := recover(); r != nil {
			res.Outcome = Degraded
			res.Err = fmt.Errorf("resolve: panic: %v", r)
		}

		if res.Outcome == Degraded {
			c.logger().Error("log file unresolved",
				slog.String("path", res.Path),
				slog.Any("error", res.Err),
			)
		}
	}()

	cfg := c.settingsResolver().Resolve()
	res.InfoEnabled, res.Source = cfg.InfoLoggingEnabled, cfg.Source

	root := cfg.LogPath
	if root == "" {
		root = c.root
	}

	name, err := c.user()
	if err == nil && name == "" {
		err = errors.New("empty user name")
	}

	if err != nil {
		res.Err = pkg.ErrUserName.Wrap(err)

		return res
	}

	folder := filepath.Join(root, pkg.SafeFilename(name, '_'))
	res.Path = filepath.Join(folder, FileName(c.now()))

	if err := os.MkdirAll(folder, 0o755); err != nil {
		res.Err = pkg.ErrCreateLogDir.Wrap(err)

		return res
	}

	res.Outcome = Resolved

	return res
}
