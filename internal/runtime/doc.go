// Package runtime manages containers backed by containerd.
//
// A [Runtime] connects to a containerd daemon and provides image pull,
// archive import, and container creation. Base images are pulled by their
// pinned reference and unpacked for the target platform; built archives
// are imported under a deterministic content-hash tag.
//
// Containers come in two flavors. Build containers run an idle primary
// task so that commands can be executed inside them and files copied in
// as tar streams; their final filesystem state is committed and exported
// as a new OCI archive with the entry command set on the image config.
// Application containers, created by [Runtime.Launch], run that entry
// command as their only process; [Container.Wait] reports its exit code
// unchanged.
//
// Example usage:
//
//	rt, err := runtime.New("/run/containerd/containerd.sock", "shipd")
//	if err != nil {
//	    return err
//	}
//	defer rt.Close()
//
//	if err := rt.PullImage(ctx, "docker.io/library/python:3.11-slim", "linux/amd64"); err != nil {
//	    return err
//	}
//
//	ctr, err := rt.StartBuildContainer(ctx, "docker.io/library/python:3.11-slim", "build-1", "linux/amd64")
//	if err != nil {
//	    return err
//	}
//	defer ctr.Destroy(ctx)
//
//	result, err := ctr.Exec(ctx, "/bin/sh", "pip install -r requirements.txt", nil, "/app")
//	if err != nil {
//	    return err
//	}
//
//	if err := ctr.Export(ctx, "dist/image.tar", []string{"python3", "/app/bot.py"}); err != nil {
//	    return err
//	}
package runtime
