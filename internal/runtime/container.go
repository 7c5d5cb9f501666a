package runtime

import (
	"context"
	"log/slog"
	"syscall"

	containerd "github.com/containerd/containerd/v2/client"
	"github.com/containerd/containerd/v2/pkg/cio"
	"github.com/containerd/containerd/v2/pkg/oci"
	"github.com/containerd/errdefs"
	specs "github.com/opencontainers/runtime-spec/specs-go"

	"github.com/quayside/shipd/internal/fault"
	"github.com/quayside/shipd/internal/protocol"
)

// A container backed by containerd: either a build container with an idle
// task, or a launched application container running its image entrypoint.
type Container struct {
	client   *containerd.Client // Containerd client for managing the container.
	id       string             // Unique identifier for the container, used as the containerd container ID.
	platform string             // OCI platform (e.g., "linux/amd64").
}

// Returns the container ID.
func (c *Container) ID() string {
	return c.id
}

// Queries the current state of the container.
//
// Returns [protocol.ContainerRunning] if the task is active,
// [protocol.ContainerStopped] if the container exists but has no running
// task, or [protocol.ContainerNotCreated] if the container does not exist.
func (c *Container) Status(ctx context.Context) (protocol.ContainerState, error) {
	ctr, err := c.client.LoadContainer(ctx, c.id)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return protocol.ContainerNotCreated, nil
		}
		return "", fault.Wrap(ErrRuntime, err)
	}

	task, err := ctr.Task(ctx, nil)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return protocol.ContainerStopped, nil
		}
		return "", fault.Wrap(ErrRuntime, err)
	}

	status, err := task.Status(ctx)
	if err != nil {
		return "", fault.Wrap(ErrRuntime, err)
	}

	switch status.Status {
	case containerd.Running:
		return protocol.ContainerRunning, nil
	default:
		return protocol.ContainerStopped, nil
	}
}

// Stops the container's task.
//
// The running task is killed and deleted. The container metadata is preserved.
// Calling Stop on an already-stopped container is not an error.
func (c *Container) Stop(ctx context.Context) error {
	ctr, err := c.client.LoadContainer(ctx, c.id)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return nil
		}
		return fault.Wrap(ErrRuntime, err)
	}

	task, err := ctr.Task(ctx, nil)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return nil
		}
		return fault.Wrap(ErrRuntime, err)
	}

	task.Kill(ctx, syscall.SIGKILL)
	if _, err := task.Delete(ctx, containerd.WithProcessKill); err != nil && !errdefs.IsNotFound(err) {
		return fault.Wrap(ErrRuntime, err)
	}

	return nil
}

// Removes the container and its resources.
//
// The task is killed and the container is removed from containerd along
// with its snapshot. After destruction the handle is invalid.
func (c *Container) Destroy(ctx context.Context) {
	ctr, err := c.client.LoadContainer(ctx, c.id)
	if err != nil {
		if !errdefs.IsNotFound(err) {
			slog.Warn("failed to load container for destruction", "id", c.id, "error", err)
		}
		return
	}

	if task, err := ctr.Task(ctx, nil); err == nil {
		task.Kill(ctx, syscall.SIGKILL)
		task.Delete(ctx, containerd.WithProcessKill)
	}

	if err := ctr.Delete(ctx, containerd.WithSnapshotCleanup); err != nil && !errdefs.IsNotFound(err) {
		slog.Warn("failed to delete container during destruction", "id", c.id, "error", err)
	}
}

// Creates a build container whose primary task idles.
//
// The idle process keeps the task alive so Exec can attach build commands
// to it. Host networking and resolv.conf give dependency installation
// network access.
func (c *Container) createIdle(ctx context.Context, image containerd.Image) (containerd.Container, error) {
	return c.create(ctx, image, oci.WithProcessArgs("sleep", "infinity"))
}

// Creates an application container running its image-config entrypoint.
//
// No argument override is applied: the entry command defined on the image is
// the single process the container runs. Extra environment variables, if
// any, are merged into the process environment without touching the image.
func (c *Container) createApp(ctx context.Context, image containerd.Image, extraEnv []string) (containerd.Container, error) {
	var opts []oci.SpecOpts
	if len(extraEnv) > 0 {
		opts = append(opts, oci.WithEnv(extraEnv))
	}
	return c.create(ctx, image, opts...)
}

// Creates the containerd container with the standard configuration plus
// the given spec overrides.
func (c *Container) create(ctx context.Context, image containerd.Image, extra ...oci.SpecOpts) (containerd.Container, error) {
	specOpts := []oci.SpecOpts{
		oci.WithDefaultSpecForPlatform(c.platform),
		oci.WithImageConfig(image),
		oci.WithHostNamespace(specs.NetworkNamespace),
		oci.WithHostResolvconf,
	}
	specOpts = append(specOpts, extra...)

	return c.client.NewContainer(ctx, c.id,
		containerd.WithImage(image),
		containerd.WithSnapshotter(snapshotter),
		containerd.WithNewSnapshot(c.id, image),
		containerd.WithRuntime(ociRuntime, nil),
		containerd.WithNewSpec(specOpts...),
	)
}

// Starts the container's primary task with the given IO.
func (c *Container) startTask(ctx context.Context, ctr containerd.Container, ioCreator cio.Creator) error {
	task, err := ctr.NewTask(ctx, ioCreator)
	if err != nil {
		return err
	}
	if err := task.Start(ctx); err != nil {
		task.Delete(ctx)
		return err
	}
	return nil
}

// Removes an existing container with this ID, if one exists.
//
// Any running task is killed and the container is deleted along with its
// snapshot. This is a no-op when no container with the ID is found.
func (c *Container) remove(ctx context.Context) {
	existing, err := c.client.LoadContainer(ctx, c.id)
	if err != nil {
		return
	}
	if task, err := existing.Task(ctx, nil); err == nil {
		task.Kill(ctx, syscall.SIGKILL)
		task.Delete(ctx, containerd.WithProcessKill)
	}
	existing.Delete(ctx, containerd.WithSnapshotCleanup)
}
