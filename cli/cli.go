package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/AvigailEhrlich/Lab-General-Logger/cli/cmd"
	"github.com/AvigailEhrlich/Lab-General-Logger/log"
	"github.com/AvigailEhrlich/Lab-General-Logger/logger"
	"github.com/AvigailEhrlich/Lab-General-Logger/pkg"
	"github.com/AvigailEhrlich/Lab-General-Logger/settings"
)

// CLI is the top-level command-line interface for lablog.
type CLI struct {
	Config string `default:"${config}" env:"LABLOG_CONFIG" help:"Primary settings file" short:"c" type:"path"`

	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Info      cmd.Info      `cmd:"" help:"Append an informational entry to the log file"`
	Exception cmd.Exception `cmd:"" help:"Append an exception entry to the log file"`
	Encode    cmd.Encode    `cmd:"" help:"Compress and base64-encode text"`
	Decode    cmd.Decode    `cmd:"" help:"Decode a payload produced by encode"`
	Settings  cmd.Settings  `cmd:"" help:"Show the resolved log file settings"`
	Init      cmd.Init      `cmd:"" help:"Initialize configuration file"`
	Version   cmd.Version   `cmd:"" help:"Print version information"`
}

// Streams holds the standard streams used by commands.
type Streams struct {
	In  io.Reader
	Out io.Writer
}

// Run executes the lablog CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return RunWith(ctx, Streams{}, exit, args...)
}

// RunWith is like [Run] with explicit standard streams. Nil streams default
// to the process's standard input and output.
func RunWith(
	ctx context.Context,
	streams Streams,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	configFilePath := configPath()

	vars := kong.Vars{
		cmd.CacheIdentifier:   pkg.CacheDir(),
		cmd.ConfigIdentifier:  configFilePath,
		cmd.VersionIdentifier: pkg.Version(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position. TextUnmarshaler on logFormat/logLevel handles those flags
	// during normal parsing, but this early scan also catches boolean flags
	// like --log-pretty.
	cli.Log.scan(args)

	var groups []kong.Group

	for _, g := range []kong.Group{cli.Log.group(), cli.Pprof.group()} {
		if g.Key != "" {
			groups = append(groups, g)
		}
	}

	// Parse command line
	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(groups),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(load, configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	resolver := settings.New(
		settings.WithPrimary(settings.File{Path: cli.Config}),
	)

	log.DebugContext(ctx, "settings sources",
		slog.String("primary", cli.Config),
		slog.String("sidecar", settings.SidecarFile().Path),
	)

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithResolver(ctx, resolver)
	ctx = logger.NewContext(ctx, logger.New(logger.WithResolver(resolver)))

	if streams.In != nil {
		ctx = cmd.WithInput(ctx, streams.In)
	}

	if streams.Out != nil {
		ctx = cmd.WithOutput(ctx, streams.Out)
	}

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}
