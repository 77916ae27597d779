package settings

import (
	"errors"
	"log/slog"
	"os"

	"github.com/AvigailEhrlich/Lab-General-Logger/log"
	"github.com/AvigailEhrlich/Lab-General-Logger/pkg"
)

// Resolver produces a logger configuration.
type Resolver interface {
	Resolve() Result
}

// ResolverFunc adapts an ordinary function to [Resolver].
type ResolverFunc func() Result

// Resolve calls f.
func (f ResolverFunc) Resolve() Result { return f() }

// Static returns a [Resolver] that always yields c.
func Static(c Config) Resolver {
	return ResolverFunc(func() Result {
		return Result{Config: c, Source: "static"}
	})
}

// PrimaryFile is the default primary source: config.yaml in the user
// configuration directory.
func PrimaryFile() File {
	return File{Path: pkg.ConfigPath("config.yaml")}
}

// SidecarFile is the default sidecar source: the executable path with
// ".config" appended.
func SidecarFile() File {
	return File{Path: pkg.SidecarPath()}
}

// Fallback resolves settings from a primary source, falling back to a
// sidecar source when the primary is unreadable or empty.
type Fallback struct {
	primary Source
	sidecar Source
	diag    log.Logger
}

// Option configures a [Fallback].
type Option func(Fallback) Fallback

// New returns a [Fallback] reading [PrimaryFile] and then [SidecarFile],
// unless overridden by opts.
func New(opts ...Option) Fallback {
	f := Fallback{
		primary: PrimaryFile(),
		sidecar: SidecarFile(),
	}

	for _, opt := range opts {
		if opt != nil {
			f = opt(f)
		}
	}

	return f
}

// WithPrimary sets the primary source. A nil source is skipped.
func WithPrimary(src Source) Option {
	return func(f Fallback) Fallback {
		f.primary = src

		return f
	}
}

// WithSidecar sets the sidecar source. A nil source is skipped.
func WithSidecar(src Source) Option {
	return func(f Fallback) Fallback {
		f.sidecar = src

		return f
	}
}

// WithDiagnostics sets the logger that receives resolution problems.
// By default the package-level logger of package log is used.
func WithDiagnostics(l log.Logger) Option {
	return func(f Fallback) Fallback {
		f.diag = l

		return f
	}
}

// Resolve loads settings in order, first success wins:
//
//  1. the primary source;
//  2. the sidecar source, if the primary failed or held no settings;
//  3. an empty collection.
//
// It never panics and never fails.
func (f Fallback) Resolve() Result {
	var errs []error

	for _, src := range []Source{f.primary, f.sidecar} {
		s, err := f.load(src)
		if err != nil {
			errs = append(errs, err)

			continue
		}

		if len(s) == 0 {
			continue
		}

		f.lint(src, s)

		return Result{
			Config: s.Config(),
			Source: src.String(),
			Err:    errors.Join(errs...),
		}
	}

	return Result{Config: DefaultConfig(), Err: errors.Join(errs...)}
}

// load reads src, reporting failures to the diagnostic stream. A nil source
// yields no settings.
func (f Fallback) load(src Source) (s Settings, err error) {
	if src == nil {
		return nil, nil
	}

	defer func() {
		if r := recover(); r != nil {
			s, err = nil, pkg.ErrLoadSettings.Wrapf("%s: panic: %v", src, r)
			f.logger().Error("settings source panicked",
				slog.String("source", src.String()),
				slog.Any("panic", r),
			)
		}
	}()

	s, err = src.Load()

	switch {
	case err == nil:
		f.logger().Debug("settings loaded",
			slog.String("source", src.String()),
			slog.Int("count", len(s)),
		)

	case errors.Is(err, os.ErrNotExist):
		f.logger().Debug("settings source not found",
			slog.String("source", src.String()),
		)

	default:
		f.logger().Warn("settings source unreadable",
			slog.String("source", src.String()),
			slog.Any("error", err),
		)
	}

	return s, err
}

// lint warns about keys that look like misspellings of a recognized key.
func (f Fallback) lint(src Source, s Settings) {
	for k := range s {
		if _, known := knownKey(k); known {
			continue
		}

		if want, ok := Suggest(k); ok {
			f.logger().Warn("unrecognized app setting",
				slog.String("source", src.String()),
				slog.String("key", k),
				slog.String("suggest", want),
			)
		}
	}
}

func (f Fallback) logger() log.Logger {
	if f.diag.Logger == nil {
		return log.Default()
	}

	return f.diag
}
