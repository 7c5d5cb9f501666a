package client

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
	"path/filepath"

	"github.com/quayside/shipd/internal/fault"
	"github.com/quayside/shipd/internal/paths"
	"github.com/quayside/shipd/internal/protocol"
)

// Talks to the daemon over its Unix domain socket.
//
// Each call dials a fresh connection, sends one envelope, and reads one
// response, matching the daemon's one-exchange-per-connection contract.
type Client struct {
	socketPath string
}

// Creates a client for the daemon socket. An empty path uses the default.
func New(socketPath string) *Client {
	if socketPath == "" {
		socketPath = paths.Socket()
	}
	return &Client{socketPath: socketPath}
}

// Sends a command and returns the raw response payload.
//
// Error envelopes from the daemon are converted into errors. The context
// deadline, when set, bounds the whole exchange; commands like wait block
// until the daemon responds.
func (c *Client) Do(ctx context.Context, cmd protocol.Command, payload any) (json.RawMessage, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return nil, fault.Wrapf(ErrUnreachable, "%s: %w", c.socketPath, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	data, err := protocol.Encode(cmd, payload)
	if err != nil {
		return nil, err
	}
	data = append(data, '\n')

	if _, err := conn.Write(data); err != nil {
		return nil, fault.Wrap(ErrExchange, err)
	}

	line, err := bufio.NewReader(conn).ReadBytes('\n')
	if err != nil {
		return nil, fault.Wrap(ErrExchange, err)
	}

	env, respPayload, err := protocol.Decode(line)
	if err != nil {
		return nil, err
	}

	if env.Command == protocol.CmdError {
		res, derr := protocol.DecodePayload[protocol.ErrorResult](respPayload)
		if derr != nil {
			return nil, fault.Wrap(ErrDaemon, derr)
		}
		return nil, fault.Wrapf(ErrDaemon, "%s", res.Message)
	}

	return respPayload, nil
}

// Sends a command and decodes the response payload into T.
func do[T any](ctx context.Context, c *Client, cmd protocol.Command, payload any) (*T, error) {
	resp, err := c.Do(ctx, cmd, payload)
	if err != nil {
		return nil, err
	}
	return protocol.DecodePayload[T](resp)
}

// Resolves a client-side path to absolute form.
//
// The daemon resolves request paths against its own working directory, which
// is unrelated to the client's, so every path crossing the socket must be
// absolute. Empty paths pass through untouched.
func absPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fault.Wrap(ErrRequest, err)
	}
	return abs, nil
}

// Asks the daemon to execute the recipe at the given path.
func (c *Client) Build(ctx context.Context, recipePath string) (*protocol.BuildResult, error) {
	path, err := absPath(recipePath)
	if err != nil {
		return nil, err
	}
	return do[protocol.BuildResult](ctx, c, protocol.CmdBuild, &protocol.BuildRequest{RecipePath: path})
}

// Asks the daemon to start a container from a built archive.
func (c *Client) Launch(ctx context.Context, req *protocol.LaunchRequest) (*protocol.LaunchResult, error) {
	archive, err := absPath(req.Archive)
	if err != nil {
		return nil, err
	}
	envFile, err := absPath(req.EnvFile)
	if err != nil {
		return nil, err
	}

	r := *req
	r.Archive = archive
	r.EnvFile = envFile
	return do[protocol.LaunchResult](ctx, c, protocol.CmdLaunch, &r)
}

// Blocks until a container's process exits and returns its exit code.
func (c *Client) Wait(ctx context.Context, id string) (*protocol.WaitResult, error) {
	return do[protocol.WaitResult](ctx, c, protocol.CmdWait, &protocol.WaitRequest{ID: id})
}

// Stops a container's process, preserving the container.
func (c *Client) StopContainer(ctx context.Context, id string) error {
	_, err := c.Do(ctx, protocol.CmdContainerStop, &protocol.ContainerRequest{ID: id})
	return err
}

// Removes a container and its resources.
func (c *Client) DestroyContainer(ctx context.Context, id string) error {
	_, err := c.Do(ctx, protocol.CmdContainerDestroy, &protocol.ContainerRequest{ID: id})
	return err
}

// Queries a container's state.
func (c *Client) ContainerStatus(ctx context.Context, id string) (*protocol.ContainerStatusResult, error) {
	return do[protocol.ContainerStatusResult](ctx, c, protocol.CmdContainerStatus, &protocol.ContainerRequest{ID: id})
}

// Runs a command inside a running container.
func (c *Client) Exec(ctx context.Context, id string, args []string) (*protocol.ContainerExecResult, error) {
	return do[protocol.ContainerExecResult](ctx, c, protocol.CmdContainerExec, &protocol.ContainerExecRequest{ID: id, Args: args})
}

// Removes an image and all containers created from it.
func (c *Client) DestroyImage(ctx context.Context, tag string) error {
	_, err := c.Do(ctx, protocol.CmdImageDestroy, &protocol.ImageDestroyRequest{Tag: tag})
	return err
}

// Queries daemon health and counters.
func (c *Client) Status(ctx context.Context) (*protocol.StatusResult, error) {
	return do[protocol.StatusResult](ctx, c, protocol.CmdStatus, nil)
}

// Asks the daemon to shut down.
func (c *Client) Shutdown(ctx context.Context) error {
	_, err := c.Do(ctx, protocol.CmdShutdown, nil)
	return err
}
