package cli

import (
	"context"
	"fmt"

	"github.com/quayside/shipd/internal/client"
)

// Represents the 'shipd status' command.
type StatusCmd struct {
	ID string `arg:"" optional:"" help:"Container to inspect. Reports daemon status when omitted." placeholder:"ID"`
}

// Executes the status command.
func (c *StatusCmd) Run(ctx context.Context) error {
	cl := client.New(RootCmd.Socket)

	if c.ID != "" {
		result, err := cl.ContainerStatus(ctx, c.ID)
		if err != nil {
			return err
		}
		fmt.Println(result.State)
		return nil
	}

	status, err := cl.Status(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("version:  %s\n", status.Version)
	fmt.Printf("pid:      %d\n", status.Pid)
	fmt.Printf("uptime:   %s\n", status.Uptime)
	fmt.Printf("builds:   %d\n", status.Builds)
	fmt.Printf("launches: %d\n", status.Launches)
	return nil
}
