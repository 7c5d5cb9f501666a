package runtime

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	containerd "github.com/containerd/containerd/v2/client"
	"github.com/containerd/containerd/v2/pkg/cio"

	"github.com/quayside/shipd/internal/fault"
)

// Starts an application container from a built OCI archive.
//
// The archive is imported, tagged, and unpacked for the host platform, and
// a container is created running the entry command defined on the image
// config. That command is the container's only process; when it exits, the
// container stops. Extra environment variables are merged into the process
// environment at start time and never touch the image content.
//
// Any stale container with the same ID is removed first. An empty ID is
// derived from the archive file name.
func (rt *Runtime) Launch(ctx context.Context, path, id string, extraEnv []string) (*Container, error) {
	if id == "" {
		id = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	platform := DefaultPlatform()

	tag, err := rt.loadArchive(ctx, path, platform)
	if err != nil {
		return nil, fault.Wrap(ErrRuntime, err)
	}

	c := &Container{
		client:   rt.client,
		id:       id,
		platform: platform,
	}

	c.remove(ctx)

	image, err := rt.resolveImage(ctx, tag, platform)
	if err != nil {
		return nil, fault.Wrap(ErrRuntime, err)
	}

	ctr, err := c.createApp(ctx, image, extraEnv)
	if err != nil {
		return nil, fault.Wrap(ErrRuntime, err)
	}

	if err := c.startTask(ctx, ctr, cio.NullIO); err != nil {
		ctr.Delete(ctx, containerd.WithSnapshotCleanup)
		return nil, fault.Wrap(ErrRuntime, err)
	}

	slog.Info("container launched", "id", id, "image", tag)

	return c, nil
}

// Blocks until the container's process exits and returns its exit code.
//
// The code is reported unchanged; this layer defines no wrapping or
// translation. Waiting on an already-exited task returns immediately.
func (c *Container) Wait(ctx context.Context) (int, error) {
	task, err := c.loadTask(ctx)
	if err != nil {
		return 0, err
	}

	statusC, err := task.Wait(ctx)
	if err != nil {
		return 0, fault.Wrap(ErrRuntime, err)
	}

	select {
	case <-ctx.Done():
		return 0, fault.Wrap(ErrRuntime, ctx.Err())
	case exitStatus := <-statusC:
		code, _, err := exitStatus.Result()
		if err != nil {
			return 0, fault.Wrap(ErrRuntime, err)
		}
		return int(code), nil
	}
}
