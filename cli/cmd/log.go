package cmd

import (
	"context"
	"log/slog"
	"strings"

	"github.com/AvigailEhrlich/Lab-General-Logger/log"
	"github.com/AvigailEhrlich/Lab-General-Logger/logger"
)

// OriginFlags holds the optional explicit attribution of an entry.
type OriginFlags struct {
	Namespace string `help:"Namespace recorded in the entry header" short:"n"`
	Class     string `help:"Class recorded in the entry header"     short:"k"`
	Method    string `help:"Method recorded in the entry header"    short:"m"`
}

func (o OriginFlags) explicit() (logger.Origin, bool) {
	lo := logger.Origin{Namespace: o.Namespace, Class: o.Class, Method: o.Method}

	return lo, lo != (logger.Origin{})
}

// Info appends an informational entry to the log file.
type Info struct {
	OriginFlags `embed:""`

	Message []string `arg:"" help:"Message text" name:"message"`
}

// Run executes the info command. It always succeeds; write failures are
// reported on the diagnostic stream.
func (i *Info) Run(ctx context.Context) error {
	l := loggerFrom(ctx)
	msg := strings.Join(i.Message, " ")

	if o, ok := i.explicit(); ok {
		l.WriteInfoFrom(o, msg)
	} else {
		l.WriteInfo(msg)
	}

	logResolution(ctx, "info", l.Resolve())

	return nil
}

// Exception appends an exception entry to the log file, regardless of the
// EnableInfoLogFlag setting.
type Exception struct {
	OriginFlags `embed:""`

	Message []string `arg:"" help:"Message text" name:"message"`
}

// Run executes the exception command. It always succeeds; write failures
// are reported on the diagnostic stream.
func (e *Exception) Run(ctx context.Context) error {
	l := loggerFrom(ctx)
	msg := strings.Join(e.Message, " ")

	if o, ok := e.explicit(); ok {
		l.WriteExceptionFrom(o, msg)
	} else {
		l.WriteException(msg)
	}

	logResolution(ctx, "exception", l.Resolve())

	return nil
}

func loggerFrom(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l != nil {
		return l
	}

	return logger.New()
}

func logResolution(ctx context.Context, command string, res logger.Resolution) {
	log.DebugContext(ctx, "log entry",
		slog.String("command", command),
		slog.String("outcome", res.Outcome.String()),
		slog.String("path", res.Path),
		slog.Bool("info", res.InfoEnabled),
	)
}
