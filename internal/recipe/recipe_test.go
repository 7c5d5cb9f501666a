package recipe

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// Writes a recipe file plus input files into a temp dir and returns the
// recipe path.
func writeRecipe(t *testing.T, recipe string, inputs ...string) string {
	t.Helper()
	dir := t.TempDir()

	for _, name := range inputs {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("content\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(dir, "ship.toml")
	if err := os.WriteFile(path, []byte(recipe), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeRecipe(t, `
base     = "docker.io/library/python:3.11-slim"
manifest = "requirements.txt"
script   = "bot.py"
env_file = ".env"
`, "requirements.txt", "bot.py", ".env")

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if r.Name != "bot" {
		t.Errorf("Name = %q, want bot", r.Name)
	}
	if r.Workdir != DefaultWorkdir {
		t.Errorf("Workdir = %q, want %q", r.Workdir, DefaultWorkdir)
	}
	if r.Install != "pip install --no-cache-dir -r requirements.txt" {
		t.Errorf("Install = %q", r.Install)
	}
	if len(r.Entrypoint) != 2 || r.Entrypoint[0] != "python3" || r.Entrypoint[1] != "/app/bot.py" {
		t.Errorf("Entrypoint = %v", r.Entrypoint)
	}
	if r.EnvMode != EnvInject {
		t.Errorf("EnvMode = %q, want %q", r.EnvMode, EnvInject)
	}
	if r.Output != DefaultOutput {
		t.Errorf("Output = %q, want %q", r.Output, DefaultOutput)
	}
}

func TestLoadExplicitFieldsKept(t *testing.T) {
	path := writeRecipe(t, `
name       = "custom"
base       = "docker.io/library/python:3.11-slim"
workdir    = "/srv/bot"
script     = "bot.py"
install    = "true"
manifest   = "deps.lock"
entrypoint = ["python3", "-u", "/srv/bot/bot.py"]
env_mode   = "bake"
env_file   = ".env"
`, "bot.py", "deps.lock", ".env")

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if r.Name != "custom" || r.Workdir != "/srv/bot" || r.Install != "true" {
		t.Errorf("explicit fields overridden: %+v", r)
	}
	if r.EnvMode != EnvBake {
		t.Errorf("EnvMode = %q, want bake", r.EnvMode)
	}
	if len(r.Entrypoint) != 3 {
		t.Errorf("Entrypoint = %v", r.Entrypoint)
	}
}

func TestValidateBase(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		wantErr error
	}{
		{
			name: "pinned tag",
			base: "docker.io/library/python:3.11-slim",
		},
		{
			name: "digest",
			base: "docker.io/library/python@sha256:aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		},
		{
			name: "short form pinned",
			base: "python:3.11-slim",
		},
		{
			name:    "no tag",
			base:    "docker.io/library/python",
			wantErr: ErrUnpinnedBase,
		},
		{
			name:    "latest",
			base:    "python:latest",
			wantErr: ErrUnpinnedBase,
		},
		{
			name:    "unparsable",
			base:    "UPPER CASE???",
			wantErr: ErrRecipe,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBase(tt.base)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingScriptFile(t *testing.T) {
	path := writeRecipe(t, `
base   = "python:3.11-slim"
script = "bot.py"
`)

	_, err := Load(path)
	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("error = %v, want ErrMissingInput", err)
	}
}

func TestLoadUnknownManifestNeedsInstall(t *testing.T) {
	path := writeRecipe(t, `
base     = "python:3.11-slim"
script   = "bot.py"
manifest = "deps.lock"
`, "bot.py", "deps.lock")

	_, err := Load(path)
	if !errors.Is(err, ErrRecipe) {
		t.Fatalf("error = %v, want ErrRecipe", err)
	}
}

func TestLoadUnknownExtensionNeedsEntrypoint(t *testing.T) {
	path := writeRecipe(t, `
base   = "python:3.11-slim"
script = "bot.weird"
`, "bot.weird")

	_, err := Load(path)
	if !errors.Is(err, ErrRecipe) {
		t.Fatalf("error = %v, want ErrRecipe", err)
	}
}

func TestLoadRejectsEscapingInput(t *testing.T) {
	path := writeRecipe(t, `
base   = "python:3.11-slim"
script = "../outside.py"
`)

	_, err := Load(path)
	if !errors.Is(err, ErrRecipe) {
		t.Fatalf("error = %v, want ErrRecipe", err)
	}
}

func TestLoadRejectsBadEnvMode(t *testing.T) {
	path := writeRecipe(t, `
base     = "python:3.11-slim"
script   = "bot.py"
env_file = ".env"
env_mode = "mount"
`, "bot.py", ".env")

	_, err := Load(path)
	if !errors.Is(err, ErrRecipe) {
		t.Fatalf("error = %v, want ErrRecipe", err)
	}
}

func TestHostPaths(t *testing.T) {
	path := writeRecipe(t, `
base     = "python:3.11-slim"
script   = "bot.py"
manifest = "requirements.txt"
`, "bot.py", "requirements.txt")

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	dir := filepath.Dir(path)
	if r.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", r.Dir(), dir)
	}
	if r.ScriptPath() != filepath.Join(dir, "bot.py") {
		t.Errorf("ScriptPath() = %q", r.ScriptPath())
	}
	if r.ManifestPath() != filepath.Join(dir, "requirements.txt") {
		t.Errorf("ManifestPath() = %q", r.ManifestPath())
	}
	if r.EnvFilePath() != "" {
		t.Errorf("EnvFilePath() = %q, want empty", r.EnvFilePath())
	}
	if r.OutputPath() != filepath.Join(dir, DefaultOutput) {
		t.Errorf("OutputPath() = %q", r.OutputPath())
	}
}

func TestInterpreterFor(t *testing.T) {
	tests := []struct {
		script string
		want   string
	}{
		{"bot.py", "python3"},
		{"index.js", "node"},
		{"app.mjs", "node"},
		{"worker.rb", "ruby"},
		{"run.sh", "/bin/sh"},
		{"binary", ""},
		{"prog.rs", ""},
	}

	for _, tt := range tests {
		if got := interpreterFor(tt.script); got != tt.want {
			t.Errorf("interpreterFor(%q) = %q, want %q", tt.script, got, tt.want)
		}
	}
}
