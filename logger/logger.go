package logger

import (
	"context"
	"log/slog"

	"github.com/AvigailEhrlich/Lab-General-Logger/pkg"
)

// Logger writes entries for one unit of concurrent work.
//
// A Logger must not be shared between goroutines; each goroutine creates its
// own. Different Loggers may write to the same file concurrently. A nil
// *Logger drops every entry.
type Logger struct {
	config
	res Resolution
}

// New returns an unresolved Logger.
func New(opts ...Option) *Logger {
	return &Logger{config: makeConfig(opts...)}
}

// Resolve determines the log file and whether informational entries are
// enabled. Only the first call does any work; later calls return the same
// Resolution, even if it is degraded or the settings have since changed.
func (l *Logger) Resolve() Resolution {
	if l == nil {
		return Resolution{Outcome: Degraded, Err: pkg.ErrUnresolved}
	}

	if l.res.Outcome == Unresolved {
		l.res = l.resolve()
	}

	return l.res
}

// WriteInfo appends an informational entry attributed to its caller, unless
// informational logging is disabled.
func (l *Logger) WriteInfo(msg string) {
	if l == nil || !l.Resolve().InfoEnabled {
		return
	}

	l.append(CallerOrigin(1), msg)
}

// WriteException appends an entry attributed to its caller. Exceptions are
// written regardless of the informational logging setting.
func (l *Logger) WriteException(msg string) {
	if l == nil {
		return
	}

	l.append(CallerOrigin(1), msg)
}

// WriteInfoFrom is like [Logger.WriteInfo] with an explicit origin.
func (l *Logger) WriteInfoFrom(o Origin, msg string) {
	if l == nil || !l.Resolve().InfoEnabled {
		return
	}

	l.append(o, msg)
}

// WriteExceptionFrom is like [Logger.WriteException] with an explicit origin.
func (l *Logger) WriteExceptionFrom(o Origin, msg string) {
	if l == nil {
		return
	}

	l.append(o, msg)
}

func (l *Logger) append(o Origin, msg string) {
	res := l.Resolve()
	if res.Path == "" {
		l.logger().Warn("log entry dropped",
			slog.String("origin", o.String()),
			slog.Any("error", pkg.ErrUnresolved),
		)

		return
	}

	entry := Header(l.now(), l.layout, o) + "\n" + msg + "\n\n"

	if err := appendFile(res.Path, []byte(entry)); err != nil {
		l.logger().Error("log entry dropped",
			slog.String("path", res.Path),
			slog.Any("error", err),
		)
	}
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying l.
func NewContext(ctx context.Context, l *Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the Logger carried by ctx, or nil.
func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return nil
	}

	l, _ := ctx.Value(contextKey{}).(*Logger)

	return l
}

func fromContext(ctx context.Context) *Logger {
	if l := FromContext(ctx); l != nil {
		return l
	}

	return New()
}

// Info writes an informational entry attributed to its caller using the
// Logger carried by ctx. Without one, a Logger with default options is
// created for this entry alone.
func Info(ctx context.Context, msg string) {
	l := fromContext(ctx)
	if !l.Resolve().InfoEnabled {
		return
	}

	l.append(CallerOrigin(1), msg)
}

// Exception writes an entry attributed to its caller using the Logger
// carried by ctx. Without one, a Logger with default options is created for
// this entry alone.
func Exception(ctx context.Context, msg string) {
	fromContext(ctx).append(CallerOrigin(1), msg)
}
