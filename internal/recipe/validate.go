package recipe

import (
	"os"
	"path/filepath"

	"github.com/distribution/reference"

	"github.com/quayside/shipd/internal/fault"
)

// Checks that the recipe is complete and that its inputs exist.
//
// The base reference must be pinned: builds against a floating tag would
// not be reproducible, so "latest" (explicit or implied) is rejected unless
// the reference also carries a digest. Input files are resolved against the
// recipe directory and must exist and stay inside it.
func (r *Recipe) Validate() error {
	if r.Script == "" {
		return fault.Wrapf(ErrRecipe, "script is required")
	}
	if r.Base == "" {
		return fault.Wrapf(ErrRecipe, "base is required")
	}
	if err := validateBase(r.Base); err != nil {
		return err
	}

	if !filepath.IsAbs(r.Workdir) {
		return fault.Wrapf(ErrRecipe, "workdir %q must be absolute", r.Workdir)
	}

	switch r.EnvMode {
	case EnvBake, EnvInject:
	default:
		return fault.Wrapf(ErrRecipe, "env_mode %q (want %q or %q)", r.EnvMode, EnvBake, EnvInject)
	}

	if r.Manifest != "" && r.Install == "" {
		return fault.Wrapf(ErrRecipe, "no install command known for manifest %q, set install explicitly", r.Manifest)
	}

	if len(r.Entrypoint) == 0 {
		return fault.Wrapf(ErrRecipe, "no interpreter known for script %q, set entrypoint explicitly", r.Script)
	}

	for _, input := range []string{r.Script, r.Manifest, r.EnvFile} {
		if input == "" {
			continue
		}
		if err := r.validateInput(input); err != nil {
			return err
		}
	}

	return nil
}

// Checks that an input path stays inside the recipe directory and points at
// an existing regular file.
func (r *Recipe) validateInput(name string) error {
	if filepath.IsAbs(name) || !filepath.IsLocal(name) {
		return fault.Wrapf(ErrRecipe, "input %q must be a local path inside the recipe directory", name)
	}

	info, err := os.Stat(r.hostPath(name))
	if err != nil {
		return fault.Wrapf(ErrMissingInput, "%q: %w", name, err)
	}
	if !info.Mode().IsRegular() {
		return fault.Wrapf(ErrMissingInput, "%q is not a regular file", name)
	}

	return nil
}

// Parses the base reference and rejects unpinned forms.
func validateBase(base string) error {
	ref, err := reference.ParseNormalizedNamed(base)
	if err != nil {
		return fault.Wrapf(ErrRecipe, "base %q: %w", base, err)
	}

	if _, ok := ref.(reference.Canonical); ok {
		return nil
	}
	if tagged, ok := ref.(reference.Tagged); ok && tagged.Tag() != "latest" {
		return nil
	}

	return fault.Wrapf(ErrUnpinnedBase, "%q", base)
}
