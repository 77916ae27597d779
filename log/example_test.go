package log_test

import (
	"log/slog"
	"os"

	"github.com/AvigailEhrlich/Lab-General-Logger/log"
)

func Example_basic() {
	diag := log.Make(os.Stdout, log.WithTimeLayout(""), log.WithPretty(false))
	diag.Warn("settings source unreadable", slog.String("path", "app.config"))
	// Output: level=WARN msg="settings source unreadable" path=app.config
}

func Example_levels() {
	diag := log.Make(os.Stdout,
		log.WithLevel(log.LevelWarn),
		log.WithTimeLayout("none"),
		log.WithPretty(false))

	diag.Debug("debug message")
	diag.Info("info message")
	diag.Error("write failed", slog.String("error", "disk full"))
	// Output: level=ERROR msg="write failed" error="disk full"
}
