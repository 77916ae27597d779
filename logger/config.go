package logger

import (
	"strings"
	"time"

	"github.com/AvigailEhrlich/Lab-General-Logger/log"
	"github.com/AvigailEhrlich/Lab-General-Logger/pkg"
	"github.com/AvigailEhrlich/Lab-General-Logger/settings"
)

// DefaultTimeLayout is the layout of the timestamp in entry headers.
const DefaultTimeLayout = "02/01/2006 15:04:05"

// FileNameLayout is the layout of the date in log file names.
const FileNameLayout = "02-01-2006"

type config struct {
	resolver settings.Resolver
	user     func() (string, error)
	now      func() time.Time
	diag     log.Logger
	root     string
	layout   string
}

// Option configures a [Logger].
type Option func(config) config

func makeConfig(opts ...Option) config {
	c := config{
		user:   CurrentUser,
		now:    time.Now,
		root:   pkg.DefaultLogRoot(),
		layout: DefaultTimeLayout,
	}

	for _, opt := range opts {
		if opt != nil {
			c = opt(c)
		}
	}

	return c
}

// WithResolver sets the source of the logger configuration.
// By default a [settings.Fallback] from [settings.New] is used.
func WithResolver(r settings.Resolver) Option {
	return func(c config) config {
		c.resolver = r

		return c
	}
}

// WithConfig injects an already resolved configuration.
func WithConfig(cfg settings.Config) Option {
	return WithResolver(settings.Static(cfg))
}

// WithUser sets the function reporting the current user name.
func WithUser(user func() (string, error)) Option {
	return func(c config) config {
		if user != nil {
			c.user = user
		}

		return c
	}
}

// WithClock sets the time source used for file names and headers.
func WithClock(now func() time.Time) Option {
	return func(c config) config {
		if now != nil {
			c.now = now
		}

		return c
	}
}

// WithDefaultRoot sets the folder used when LogPath is empty.
// An empty root restores the platform default.
func WithDefaultRoot(root string) Option {
	return func(c config) config {
		if root == "" {
			root = pkg.DefaultLogRoot()
		}

		c.root = root

		return c
	}
}

// WithTimeLayout sets the header timestamp layout. Named layouts of package
// time are accepted, and "none" omits the timestamp. An empty layout
// restores [DefaultTimeLayout].
func WithTimeLayout(layout string) Option {
	return func(c config) config {
		if strings.TrimSpace(layout) == "" {
			c.layout = DefaultTimeLayout

			return c
		}

		c.layout = pkg.TimeLayout(layout)

		return c
	}
}

// WithDiagnostics sets the logger receiving problems the Logger swallows.
// By default the package-level logger of package log is used.
func WithDiagnostics(l log.Logger) Option {
	return func(c config) config {
		c.diag = l

		return c
	}
}

func (c config) logger() log.Logger {
	if c.diag.Logger == nil {
		return log.Default()
	}

	return c.diag
}

func (c config) settingsResolver() settings.Resolver {
	if c.resolver == nil {
		return settings.New(settings.WithDiagnostics(c.diag))
	}

	return c.resolver
}
