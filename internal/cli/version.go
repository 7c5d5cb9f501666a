package cli

import (
	"context"
	"fmt"

	"github.com/quayside/shipd/internal"
)

// Represents the 'shipd version' command.
type VersionCmd struct{}

// Executes the version command.
func (c *VersionCmd) Run(ctx context.Context) error {
	fmt.Println(internal.VersionString())
	return nil
}
