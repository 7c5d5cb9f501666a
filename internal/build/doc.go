// Package build turns a recipe into a runnable OCI archive.
//
// A build is a fixed sequence of five phases executed against a container
// started from the recipe's pinned base image: base-selected, workdir-set,
// deps-installed, files-copied, and entrypoint-defined. Each phase's effect
// is a precondition for the next, so the sequence is strictly ordered and
// the first failure aborts the build with no archive produced. In
// particular, a failing dependency install never yields an image containing
// the application script.
//
// Input files are streamed into the container as tar entries without
// transformation; the digest of each stream is recorded on the result so
// the copied bytes can be verified against their sources.
//
// Container operations are delegated to the runtime package.
//
// Example usage:
//
//	r, err := recipe.Load("ship.toml")
//	if err != nil {
//	    return err
//	}
//
//	result, err := build.Run(ctx, rt, build.Options{Recipe: r})
//	if err != nil {
//	    return err
//	}
//	slog.Info("built", "archive", result.Archive)
package build
