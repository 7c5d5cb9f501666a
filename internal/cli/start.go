package cli

import (
	"context"
	"log/slog"

	"github.com/quayside/shipd/internal/server"
)

// Represents the 'shipd start' command.
type StartCmd struct {
	ContainerdAddress   string `help:"Containerd socket address." placeholder:"PATH"`
	ContainerdNamespace string `help:"Containerd namespace for images and containers." placeholder:"NAME"`
}

// Executes the start command.
//
// Starts the server on a Unix domain socket and blocks until the context is
// cancelled (e.g. via SIGINT or SIGTERM) or a shutdown command arrives.
func (c *StartCmd) Run(ctx context.Context) error {
	srv, err := server.New(server.Config{
		SocketPath:          RootCmd.Socket,
		ContainerdAddress:   c.ContainerdAddress,
		ContainerdNamespace: c.ContainerdNamespace,
	})
	if err != nil {
		return err
	}

	if err := srv.Start(); err != nil {
		return err
	}

	slog.Info("shipd is running")

	done := make(chan struct{})
	go func() {
		srv.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down")
		return srv.Stop()
	case <-done:
		return nil
	}
}
