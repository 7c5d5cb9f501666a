package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/quayside/shipd/internal"
)

// Represents the root command for the shipd daemon.
var RootCmd struct {
	Quiet   bool       `short:"q" help:"Suppress informational output."`
	Verbose bool       `short:"v" help:"Enable verbose output."`
	Debug   bool       `short:"d" help:"Enable debug output."`
	Socket  string     `short:"s" help:"Override the default Unix socket path." placeholder:"PATH"`
	Start   StartCmd   `cmd:"" help:"Start the daemon."`
	Build   BuildCmd   `cmd:"" help:"Build an image from a recipe."`
	Run     RunCmd     `cmd:"" help:"Launch a built archive and wait for it to exit."`
	Stop    StopCmd    `cmd:"" help:"Stop a container, or the daemon when no ID is given."`
	Exec    ExecCmd    `cmd:"" help:"Run a command inside a running container."`
	Status  StatusCmd  `cmd:"" help:"Show daemon status, or a container's state."`
	Destroy DestroyCmd `cmd:"" help:"Remove a container or an image."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("The Quayside ship daemon.\n\nBuilds single-script application images and runs them as containers."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Configures the global logger based on CLI flags.
func configureLogger() {
	logger, ok := slog.Default().Handler().(*log.Logger)
	if !ok {
		return // Not the expected handler, nothing to configure
	}

	debug := RootCmd.Debug || internal.IsDebug()
	quiet := RootCmd.Quiet || internal.IsQuiet()
	verbose := RootCmd.Verbose || internal.IsVerbose()

	// Record the final modes so code outside the CLI sees the same state
	// the logger was configured with.
	internal.SetDebug(debug)
	internal.SetQuiet(quiet)
	internal.SetVerbose(verbose)

	if debug {
		logger.SetLevel(log.DebugLevel)
	} else if quiet {
		logger.SetLevel(log.WarnLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}

	logger.SetReportCaller(verbose)
	logger.SetOutput(os.Stderr)
}
