package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quayside/shipd/internal/client"
)

// Represents the 'shipd build' command.
type BuildCmd struct {
	File string `short:"f" default:"ship.toml" help:"Path to the recipe file." placeholder:"PATH"`
}

// Executes the build command.
//
// Sends the recipe path to the daemon and prints the path of the exported
// archive on success.
func (c *BuildCmd) Run(ctx context.Context) error {
	result, err := client.New(RootCmd.Socket).Build(ctx, c.File)
	if err != nil {
		return err
	}

	slog.Info("build complete",
		"archive", result.Archive,
		"script", result.ScriptDigest,
	)
	if result.ManifestDigest != "" {
		slog.Debug("manifest copied", "digest", result.ManifestDigest)
	}
	if result.EnvDigest != "" {
		slog.Debug("environment file baked", "digest", result.EnvDigest)
	}

	fmt.Println(result.Archive)
	return nil
}
