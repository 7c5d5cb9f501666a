package protocol

// State of a container as reported by the daemon.
type ContainerState string

const (
	ContainerNotCreated ContainerState = "not-created"
	ContainerRunning    ContainerState = "running"
	ContainerStopped    ContainerState = "stopped"
)

// Asks the daemon to execute the recipe at the given path.
type BuildRequest struct {
	RecipePath string `json:"recipe_path"`
}

// Reports a completed build.
//
// The digests identify the exact input bytes placed into the image, so the
// copied files can be verified against their sources.
type BuildResult struct {
	Archive        string `json:"archive"`                   // Path of the exported OCI archive.
	ScriptDigest   string `json:"script_digest"`             // Digest of the application script.
	ManifestDigest string `json:"manifest_digest,omitempty"` // Digest of the dependency manifest, if any.
	EnvDigest      string `json:"env_digest,omitempty"`      // Digest of the baked environment file, if any.
}

// Asks the daemon to start a container from a built archive.
//
// When EnvFile is set, its variables are merged into the process environment
// at launch time instead of living inside the image.
type LaunchRequest struct {
	Archive string `json:"archive"`            // Path of the OCI archive to launch.
	ID      string `json:"id"`                 // Container ID. Derived from the archive when empty.
	EnvFile string `json:"env_file,omitempty"` // Optional environment file to inject.
}

// Reports a launched container.
type LaunchResult struct {
	ID string `json:"id"`
}

// Asks the daemon to block until a container's process exits.
type WaitRequest struct {
	ID string `json:"id"`
}

// Reports the exit code of a container's process, unchanged.
type WaitResult struct {
	ExitCode int `json:"exit_code"`
}

// Identifies a container for stop, destroy, and status commands.
type ContainerRequest struct {
	ID string `json:"id"`
}

// Reports a container's state.
type ContainerStatusResult struct {
	State ContainerState `json:"state"`
}

// Asks the daemon to run a command inside a running container.
type ContainerExecRequest struct {
	ID   string   `json:"id"`
	Args []string `json:"args"`
}

// Reports the output of an exec command.
type ContainerExecResult struct {
	ExitCode int    `json:"exit_code"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
}

// Asks the daemon to remove an image and its containers.
type ImageDestroyRequest struct {
	Tag string `json:"tag"`
}

// Reports daemon health and counters.
type StatusResult struct {
	Running  bool   `json:"running"`
	Version  string `json:"version"`
	Pid      int    `json:"pid"`
	Uptime   string `json:"uptime"`
	Builds   int    `json:"builds"`
	Launches int    `json:"launches"`
}

// Carries an error message back to the client.
type ErrorResult struct {
	Message string `json:"message"`
}
