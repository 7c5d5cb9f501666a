// Parses flags and dispatches subcommands for the shipd daemon and its
// clients.
//
// The daemon side is 'start'; every other subcommand connects to a running
// daemon over its Unix socket:
//
//	start     Start the daemon.
//	build     Build an image from a recipe.
//	run       Launch a built archive and wait for it to exit.
//	stop      Stop a container, or the daemon when no ID is given.
//	exec      Run a command inside a running container.
//	status    Show daemon status, or a container's state.
//	destroy   Remove a container or an image.
//	version   Show version information.
//
// Global flags override build-time defaults set via linker flags. After
// parsing, the global logger is reconfigured to reflect the final level and
// verbosity before the selected command runs.
package cli
