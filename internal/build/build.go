package build

import (
	"context"
	"log/slog"
	"os"

	"github.com/opencontainers/go-digest"

	"github.com/quayside/shipd/internal/fault"
	"github.com/quayside/shipd/internal/paths"
	"github.com/quayside/shipd/internal/recipe"
	"github.com/quayside/shipd/internal/runtime"
)

// Controls recipe execution.
type Options struct {
	Recipe   *recipe.Recipe // Recipe to execute.
	Platform string         // Target platform (e.g., "linux/amd64"). Defaults to host.
}

// Returned after successful recipe execution.
//
// The digests identify the exact bytes of each input placed into the image,
// computed from the same stream that was copied in. Comparing them against
// independently computed source digests verifies that the copy was
// byte-for-byte.
type Result struct {
	Archive        string        // Path of the exported OCI archive.
	ScriptDigest   digest.Digest // Digest of the application script.
	ManifestDigest digest.Digest // Digest of the dependency manifest, empty when the recipe has none.
	EnvDigest      digest.Digest // Digest of the baked environment file, empty unless env_mode is bake.
}

// Executes a recipe against the container runtime.
//
// The build runs as a fixed sequence of phases: the base image is pulled
// and a build container started, the working directory is created, the
// dependency manifest is installed, the input files are copied in, and the
// container is committed and exported with the entry command set. Phases
// run strictly in order; the first failure aborts the build and no archive
// is produced.
func Run(ctx context.Context, rt *runtime.Runtime, opts Options) (*Result, error) {
	if opts.Platform == "" {
		opts.Platform = runtime.DefaultPlatform()
	}

	r := opts.Recipe

	slog.Info("executing recipe",
		"name", r.Name,
		"base", r.Base,
		"script", r.Script,
		"platform", opts.Platform,
	)

	if err := os.MkdirAll(r.OutputPath(), paths.DefaultDirMode); err != nil {
		return nil, fault.Wrap(ErrFileSystemOperation, err)
	}

	p := newPipeline(rt, r, opts.Platform)
	defer p.destroy(ctx)

	if err := executePhases(ctx, p.phases()); err != nil {
		return nil, err
	}

	return &p.result, nil
}
