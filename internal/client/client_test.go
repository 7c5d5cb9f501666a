package client

import (
	"bufio"
	"context"
	"errors"
	"net"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quayside/shipd/internal/protocol"
)

// Serves a single exchange on a throwaway socket and returns its path.
func serveOnce(t *testing.T, respond func(t *testing.T, env *protocol.Envelope) []byte) string {
	t.Helper()

	socket := filepath.Join(t.TempDir(), "shipd.sock")
	listener, err := net.Listen("unix", socket)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { listener.Close() })

	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		line, err := bufio.NewReader(conn).ReadBytes('\n')
		if err != nil {
			return
		}
		env, _, err := protocol.Decode(line)
		if err != nil {
			return
		}
		resp := respond(t, env)
		conn.Write(append(resp, '\n'))
	}()

	return socket
}

func TestBuild(t *testing.T) {
	socket := serveOnce(t, func(t *testing.T, env *protocol.Envelope) []byte {
		if env.Command != protocol.CmdBuild {
			t.Errorf("command = %q, want %q", env.Command, protocol.CmdBuild)
		}
		req, err := protocol.DecodePayload[protocol.BuildRequest](env.Payload)
		if err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		// The daemon's working directory is unrelated to the client's, so
		// a relative recipe path must arrive absolutized.
		if !filepath.IsAbs(req.RecipePath) {
			t.Errorf("recipe path %q is not absolute", req.RecipePath)
		}
		if filepath.Base(req.RecipePath) != "ship.toml" {
			t.Errorf("recipe path = %q, want base ship.toml", req.RecipePath)
		}
		data, err := protocol.Encode(protocol.CmdOK, &protocol.BuildResult{Archive: "/tmp/dist/bot.tar"})
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		return data
	})

	result, err := New(socket).Build(context.Background(), "ship.toml")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if result.Archive != "/tmp/dist/bot.tar" {
		t.Errorf("archive = %q, want %q", result.Archive, "/tmp/dist/bot.tar")
	}
}

func TestLaunchSendsAbsolutePaths(t *testing.T) {
	socket := serveOnce(t, func(t *testing.T, env *protocol.Envelope) []byte {
		req, err := protocol.DecodePayload[protocol.LaunchRequest](env.Payload)
		if err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if !filepath.IsAbs(req.Archive) {
			t.Errorf("archive path %q is not absolute", req.Archive)
		}
		if !filepath.IsAbs(req.EnvFile) {
			t.Errorf("env file path %q is not absolute", req.EnvFile)
		}
		data, err := protocol.Encode(protocol.CmdOK, &protocol.LaunchResult{ID: "bot"})
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		return data
	})

	req := &protocol.LaunchRequest{Archive: "dist/bot.tar", EnvFile: ".env"}
	if _, err := New(socket).Launch(context.Background(), req); err != nil {
		t.Fatalf("launch: %v", err)
	}

	// The caller's request must not be mutated.
	if req.Archive != "dist/bot.tar" || req.EnvFile != ".env" {
		t.Errorf("request mutated: %+v", req)
	}
}

func TestExec(t *testing.T) {
	socket := serveOnce(t, func(t *testing.T, env *protocol.Envelope) []byte {
		if env.Command != protocol.CmdContainerExec {
			t.Errorf("command = %q, want %q", env.Command, protocol.CmdContainerExec)
		}
		req, err := protocol.DecodePayload[protocol.ContainerExecRequest](env.Payload)
		if err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if req.ID != "bot-1" {
			t.Errorf("id = %q, want %q", req.ID, "bot-1")
		}
		if len(req.Args) != 2 || req.Args[0] != "cat" || req.Args[1] != "/app/bot.py" {
			t.Errorf("args = %v", req.Args)
		}
		data, err := protocol.Encode(protocol.CmdOK, &protocol.ContainerExecResult{
			ExitCode: 0,
			Stdout:   "print('hi')\n",
		})
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		return data
	})

	result, err := New(socket).Exec(context.Background(), "bot-1", []string{"cat", "/app/bot.py"})
	if err != nil {
		t.Fatalf("exec: %v", err)
	}
	if result.Stdout != "print('hi')\n" {
		t.Errorf("stdout = %q", result.Stdout)
	}
	if result.ExitCode != 0 {
		t.Errorf("exit code = %d, want 0", result.ExitCode)
	}
}

func TestWait(t *testing.T) {
	socket := serveOnce(t, func(t *testing.T, env *protocol.Envelope) []byte {
		req, err := protocol.DecodePayload[protocol.WaitRequest](env.Payload)
		if err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if req.ID != "bot-1" {
			t.Errorf("id = %q, want %q", req.ID, "bot-1")
		}
		data, err := protocol.Encode(protocol.CmdOK, &protocol.WaitResult{ExitCode: 3})
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		return data
	})

	result, err := New(socket).Wait(context.Background(), "bot-1")
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if result.ExitCode != 3 {
		t.Errorf("exit code = %d, want 3", result.ExitCode)
	}
}

func TestErrorEnvelope(t *testing.T) {
	socket := serveOnce(t, func(t *testing.T, env *protocol.Envelope) []byte {
		data, err := protocol.Encode(protocol.CmdError, &protocol.ErrorResult{Message: "no such container"})
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		return data
	})

	_, err := New(socket).ContainerStatus(context.Background(), "missing")
	if !errors.Is(err, ErrDaemon) {
		t.Fatalf("error = %v, want ErrDaemon", err)
	}
	if !strings.Contains(err.Error(), "no such container") {
		t.Errorf("error %q does not carry the daemon message", err)
	}
}

func TestUnreachable(t *testing.T) {
	socket := filepath.Join(t.TempDir(), "absent.sock")

	_, err := New(socket).Status(context.Background())
	if !errors.Is(err, ErrUnreachable) {
		t.Fatalf("error = %v, want ErrUnreachable", err)
	}
}
