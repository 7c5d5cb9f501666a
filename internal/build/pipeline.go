package build

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/quayside/shipd/internal/fault"
	"github.com/quayside/shipd/internal/recipe"
	"github.com/quayside/shipd/internal/runtime"
)

// Shell used to run the install command inside the build container.
const installShell = "/bin/sh"

// One phase of the build sequence.
type phaseStep struct {
	name string
	run  func(context.Context) error
}

// Holds shared state while the phases of a build execute.
type pipeline struct {
	rt       *runtime.Runtime   // Container runtime for image and container operations.
	recipe   *recipe.Recipe     // Validated recipe driving the build.
	platform string             // Target platform.
	ctr      *runtime.Container // Build container, created by the first phase.
	result   Result             // Accumulated outputs, complete after the last phase.
}

// Creates a new [pipeline] for a recipe and platform.
func newPipeline(rt *runtime.Runtime, r *recipe.Recipe, platform string) *pipeline {
	return &pipeline{
		rt:       rt,
		recipe:   r,
		platform: platform,
	}
}

// Returns the build phases in their fixed execution order.
//
// Each phase's effect is a precondition for the next; the sequence never
// branches and never runs concurrently.
func (p *pipeline) phases() []phaseStep {
	return []phaseStep{
		{"base-selected", p.selectBase},
		{"workdir-set", p.setWorkdir},
		{"deps-installed", p.installDeps},
		{"files-copied", p.copyFiles},
		{"entrypoint-defined", p.defineEntrypoint},
	}
}

// Runs phases in order, stopping at the first failure.
func executePhases(ctx context.Context, steps []phaseStep) error {
	for _, step := range steps {
		slog.Info("build phase", "phase", step.name)
		if err := step.run(ctx); err != nil {
			return fault.Wrapf(ErrBuild, "phase %s: %w", step.name, err)
		}
	}
	return nil
}

// Pulls the pinned base image and starts the build container from it.
func (p *pipeline) selectBase(ctx context.Context) error {
	if err := p.rt.PullImage(ctx, p.recipe.Base, p.platform); err != nil {
		return err
	}

	ctr, err := p.rt.StartBuildContainer(ctx, p.recipe.Base, p.containerID(), p.platform)
	if err != nil {
		return err
	}

	p.ctr = ctr
	return nil
}

// Creates the working directory inside the container.
func (p *pipeline) setWorkdir(ctx context.Context) error {
	return p.ctr.MkdirAll(ctx, p.recipe.Workdir)
}

// Copies the dependency manifest into the container and runs the install
// command against it.
//
// A failing install aborts the build; this layer never retries. Network
// access is required while this phase runs.
func (p *pipeline) installDeps(ctx context.Context) error {
	if p.recipe.Manifest == "" {
		slog.Info("no dependency manifest, skipping install")
		return nil
	}

	dig, err := p.copyInput(ctx, p.recipe.ManifestPath())
	if err != nil {
		return err
	}

	slog.Debug("installing dependencies", "command", p.recipe.Install)

	result, err := p.ctr.Exec(ctx, installShell, p.recipe.Install, nil, p.recipe.Workdir)
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return fault.Wrapf(ErrDependencyInstall, "exit code %d: %s", result.ExitCode, result.Stderr)
	}

	p.result.ManifestDigest = dig
	return nil
}

// Copies the application script, and the environment file when the recipe
// bakes it, into the working directory without transformation.
func (p *pipeline) copyFiles(ctx context.Context) error {
	dig, err := p.copyInput(ctx, p.recipe.ScriptPath())
	if err != nil {
		return err
	}
	p.result.ScriptDigest = dig

	if p.recipe.EnvFile == "" || p.recipe.EnvMode != recipe.EnvBake {
		return nil
	}

	// The baked file persists in the image's layer history and in every
	// copy or push of the archive. The recipe opted into this.
	slog.Warn("baking environment file into image layer", "file", p.recipe.EnvFile)

	dig, err = p.copyInput(ctx, p.recipe.EnvFilePath())
	if err != nil {
		return err
	}
	p.result.EnvDigest = dig
	return nil
}

// Stops the build container and exports it as an OCI archive with the
// recipe's entry command set on the image config.
func (p *pipeline) defineEntrypoint(ctx context.Context) error {
	if err := p.ctr.Stop(ctx); err != nil {
		return err
	}

	archive := filepath.Join(p.recipe.OutputPath(), p.recipe.Name+".tar")
	if err := p.ctr.Export(ctx, archive, p.recipe.Entrypoint); err != nil {
		return err
	}

	p.result.Archive = archive
	return nil
}

// Destroys the build container, if one was started.
func (p *pipeline) destroy(ctx context.Context) {
	if p.ctr != nil {
		p.ctr.Destroy(ctx)
	}
}

// Returns the build container ID, scoped to this recipe and platform.
func (p *pipeline) containerID() string {
	return fmt.Sprintf("%s-build-%s", p.recipe.Name, platformSlug(p.platform))
}

// Converts a platform string to an identifier-safe slug.
//
// Replaces slashes with dashes (e.g., "linux/amd64" becomes "linux-amd64").
func platformSlug(platform string) string {
	return strings.ReplaceAll(platform, "/", "-")
}
