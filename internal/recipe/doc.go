// Package recipe defines the declarative build input.
//
// A recipe is a TOML file naming a pinned base runtime image, a dependency
// manifest, the application script, and an optional environment file. Loading
// a recipe fills derivable fields (working directory, install command,
// entrypoint, output directory) and validates that the base reference is
// pinned and that every input file exists inside the recipe directory.
//
// Example recipe:
//
//	name     = "teneo-bot"
//	base     = "docker.io/library/python:3.11-slim"
//	manifest = "requirements.txt"
//	script   = "bot.py"
//	env_file = ".env"
//
// With the defaults applied, this builds on python:3.11-slim, installs
// requirements.txt with pip under /app, copies bot.py byte-for-byte, and
// sets the entrypoint to "python3 /app/bot.py". The environment file is
// injected at launch time rather than baked into a layer.
package recipe
