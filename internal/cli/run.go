package cli

import (
	"context"
	"log/slog"

	"github.com/quayside/shipd/internal/client"
	"github.com/quayside/shipd/internal/protocol"
)

// Represents the 'shipd run' command.
type RunCmd struct {
	Archive string `arg:"" help:"Path to a built OCI archive." placeholder:"PATH"`
	ID      string `help:"Container ID. Derived from the archive when empty." placeholder:"ID"`
	EnvFile string `help:"Environment file to inject at launch." placeholder:"PATH"`
}

// Executes the run command.
//
// Launches a container from the archive and blocks until its process exits.
// The process exit code becomes the CLI exit code, unchanged.
func (c *RunCmd) Run(ctx context.Context) error {
	cl := client.New(RootCmd.Socket)

	launched, err := cl.Launch(ctx, &protocol.LaunchRequest{
		Archive: c.Archive,
		ID:      c.ID,
		EnvFile: c.EnvFile,
	})
	if err != nil {
		return err
	}

	slog.Info("container launched", "id", launched.ID)

	result, err := cl.Wait(ctx, launched.ID)
	if err != nil {
		return err
	}

	slog.Info("container exited", "id", launched.ID, "code", result.ExitCode)

	if result.ExitCode != 0 {
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}
