package cli

import (
	"context"
	"log/slog"

	"github.com/quayside/shipd/internal/client"
)

// Represents the 'shipd destroy' command.
type DestroyCmd struct {
	ID    string `arg:"" optional:"" help:"Container to remove." placeholder:"ID"`
	Image string `help:"Image tag to remove, with every container created from it." placeholder:"TAG"`
}

// Executes the destroy command.
func (c *DestroyCmd) Run(ctx context.Context) error {
	cl := client.New(RootCmd.Socket)

	if c.Image != "" {
		if err := cl.DestroyImage(ctx, c.Image); err != nil {
			return err
		}
		slog.Info("image destroyed", "tag", c.Image)
		return nil
	}

	if c.ID == "" {
		return errMissingTarget
	}

	if err := cl.DestroyContainer(ctx, c.ID); err != nil {
		return err
	}

	slog.Info("container destroyed", "id", c.ID)
	return nil
}
