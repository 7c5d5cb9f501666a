package recipe

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/quayside/shipd/internal/fault"
)

// Default working directory inside the image.
const DefaultWorkdir = "/app"

// Default output directory for the exported archive, relative to the
// recipe directory.
const DefaultOutput = "dist"

// Controls how the environment file reaches the container process.
type EnvMode string

const (

	// Copy the environment file into the image layer. The file becomes a
	// permanent part of the distributable artifact and of its layer history.
	EnvBake EnvMode = "bake"

	// Keep the artifact configuration-free and pass the variables to the
	// process at launch time instead.
	EnvInject EnvMode = "inject"
)

// Declares the inputs of a build: the base runtime image, the dependency
// manifest, the application script, and the optional environment file.
type Recipe struct {
	Name       string   `toml:"name"`       // Resource name, used to derive container and image identifiers.
	Base       string   `toml:"base"`       // Pinned base runtime image reference.
	Workdir    string   `toml:"workdir"`    // Absolute working directory inside the image.
	Manifest   string   `toml:"manifest"`   // Dependency manifest file, relative to the recipe directory.
	Install    string   `toml:"install"`    // Shell command that installs the manifest inside the container.
	Script     string   `toml:"script"`     // Application script, relative to the recipe directory.
	EnvFile    string   `toml:"env_file"`   // Optional environment/secrets file, relative to the recipe directory.
	EnvMode    EnvMode  `toml:"env_mode"`   // How the environment file reaches the process. Defaults to inject.
	Entrypoint []string `toml:"entrypoint"` // Entry command for the image. Derived from the script when empty.
	Output     string   `toml:"output"`     // Output directory for the exported archive, relative to the recipe directory.

	dir string // Directory containing the recipe file, root for resolving input paths.
}

// Reads a recipe from a TOML file, applies defaults, and validates it.
//
// Relative paths inside the recipe resolve against the directory containing
// the file.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fault.Wrap(ErrRecipe, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fault.Wrap(ErrRecipe, err)
	}

	r := &Recipe{dir: filepath.Dir(abs)}
	if err := toml.Unmarshal(data, r); err != nil {
		return nil, fault.Wrap(ErrRecipe, err)
	}

	r.applyDefaults()

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Fills unset fields with values derived from the script and manifest.
func (r *Recipe) applyDefaults() {
	if r.Name == "" && r.Script != "" {
		base := filepath.Base(r.Script)
		r.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if r.Workdir == "" {
		r.Workdir = DefaultWorkdir
	}
	if r.Output == "" {
		r.Output = DefaultOutput
	}
	if r.EnvMode == "" {
		r.EnvMode = EnvInject
	}
	if r.Install == "" && r.Manifest != "" {
		r.Install = defaultInstall(filepath.Base(r.Manifest))
	}
	if len(r.Entrypoint) == 0 && r.Script != "" {
		if interp := interpreterFor(r.Script); interp != "" {
			r.Entrypoint = []string{interp, filepath.Join(r.Workdir, filepath.Base(r.Script))}
		}
	}
}

// Returns the conventional install command for a known manifest filename,
// or the empty string when the ecosystem is not recognized.
func defaultInstall(manifest string) string {
	switch manifest {
	case "requirements.txt":
		return "pip install --no-cache-dir -r requirements.txt"
	case "package.json":
		return "npm install --omit=dev"
	case "Gemfile":
		return "bundle install"
	}
	return ""
}

// Returns the interpreter for a script based on its extension, or the empty
// string when the extension is not recognized.
func interpreterFor(script string) string {
	switch filepath.Ext(script) {
	case ".py":
		return "python3"
	case ".js", ".mjs":
		return "node"
	case ".rb":
		return "ruby"
	case ".sh":
		return "/bin/sh"
	}
	return ""
}

// Returns the directory containing the recipe file.
func (r *Recipe) Dir() string {
	return r.dir
}

// Returns the absolute path of the application script on the host.
func (r *Recipe) ScriptPath() string {
	return r.hostPath(r.Script)
}

// Returns the absolute path of the dependency manifest on the host, or the
// empty string when the recipe declares no manifest.
func (r *Recipe) ManifestPath() string {
	return r.hostPath(r.Manifest)
}

// Returns the absolute path of the environment file on the host, or the
// empty string when the recipe declares no environment file.
func (r *Recipe) EnvFilePath() string {
	return r.hostPath(r.EnvFile)
}

// Returns the absolute path of the output directory on the host.
func (r *Recipe) OutputPath() string {
	return r.hostPath(r.Output)
}

// Resolves a recipe-relative path against the recipe directory.
func (r *Recipe) hostPath(name string) string {
	if name == "" {
		return ""
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(r.dir, name)
}
