package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/quayside/shipd/internal/client"
)

// Represents the 'shipd exec' command.
type ExecCmd struct {
	ID   string   `arg:"" help:"Container to run the command in." placeholder:"ID"`
	Args []string `arg:"" passthrough:"" help:"Command and arguments."`
}

// Executes the exec command.
//
// Runs the command inside a running container, relays its captured output,
// and exits with the command's exit code.
func (c *ExecCmd) Run(ctx context.Context) error {
	result, err := client.New(RootCmd.Socket).Exec(ctx, c.ID, c.Args)
	if err != nil {
		return err
	}

	fmt.Print(result.Stdout)
	fmt.Fprint(os.Stderr, result.Stderr)

	if result.ExitCode != 0 {
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}
