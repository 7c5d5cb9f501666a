package cli

import (
	"context"
	"log/slog"

	"github.com/quayside/shipd/internal/client"
)

// Represents the 'shipd stop' command.
type StopCmd struct {
	ID string `arg:"" optional:"" help:"Container to stop. Stops the daemon when omitted." placeholder:"ID"`
}

// Executes the stop command.
//
// With an ID, stops that container's process. Without one, asks the daemon
// itself to shut down.
func (c *StopCmd) Run(ctx context.Context) error {
	cl := client.New(RootCmd.Socket)

	if c.ID == "" {
		if err := cl.Shutdown(ctx); err != nil {
			return err
		}
		slog.Info("daemon shutdown requested")
		return nil
	}

	if err := cl.StopContainer(ctx, c.ID); err != nil {
		return err
	}

	slog.Info("container stopped", "id", c.ID)
	return nil
}
