package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/quayside/shipd/internal"
	"github.com/quayside/shipd/internal/build"
	"github.com/quayside/shipd/internal/protocol"
	"github.com/quayside/shipd/internal/recipe"
)

// Handles a build command.
//
// Loads the recipe from the client-supplied path and executes it against the
// container runtime. The daemon and CLI share a filesystem, so the path is
// resolved daemon-side.
func (s *Server) handleBuild(ctx context.Context, conn net.Conn, payload json.RawMessage) {
	req, err := protocol.DecodePayload[protocol.BuildRequest](payload)
	if err != nil {
		s.respond(conn, protocol.CmdError, &protocol.ErrorResult{Message: err.Error()})
		return
	}

	r, err := recipe.Load(req.RecipePath)
	if err != nil {
		s.respond(conn, protocol.CmdError, &protocol.ErrorResult{Message: err.Error()})
		return
	}

	result, err := build.Run(ctx, s.runtime, build.Options{Recipe: r})
	if err != nil {
		s.respond(conn, protocol.CmdError, &protocol.ErrorResult{Message: err.Error()})
		return
	}

	s.mu.Lock()
	s.builds++
	s.mu.Unlock()

	s.respond(conn, protocol.CmdOK, &protocol.BuildResult{
		Archive:        result.Archive,
		ScriptDigest:   result.ScriptDigest.String(),
		ManifestDigest: result.ManifestDigest.String(),
		EnvDigest:      result.EnvDigest.String(),
	})
}

// Handles a launch command.
//
// Starts a container from a built archive. When the request names an
// environment file, its variables are injected into the process environment
// at launch rather than read from the image.
func (s *Server) handleLaunch(ctx context.Context, conn net.Conn, payload json.RawMessage) {
	req, err := protocol.DecodePayload[protocol.LaunchRequest](payload)
	if err != nil {
		s.respond(conn, protocol.CmdError, &protocol.ErrorResult{Message: err.Error()})
		return
	}

	var extraEnv []string
	if req.EnvFile != "" {
		vars, err := godotenv.Read(req.EnvFile)
		if err != nil {
			s.respond(conn, protocol.CmdError, &protocol.ErrorResult{Message: err.Error()})
			return
		}
		for k, v := range vars {
			extraEnv = append(extraEnv, k+"="+v)
		}
	}

	ctr, err := s.runtime.Launch(ctx, req.Archive, req.ID, extraEnv)
	if err != nil {
		s.respond(conn, protocol.CmdError, &protocol.ErrorResult{Message: err.Error()})
		return
	}

	s.mu.Lock()
	s.launches++
	s.mu.Unlock()

	s.respond(conn, protocol.CmdOK, &protocol.LaunchResult{ID: ctr.ID()})
}

// Handles a wait command.
//
// Blocks until the container's process exits and reports its exit code. The
// connection stays open for the duration; a client disconnect cancels the
// wait through ctx.
func (s *Server) handleWait(ctx context.Context, conn net.Conn, payload json.RawMessage) {
	req, err := protocol.DecodePayload[protocol.WaitRequest](payload)
	if err != nil {
		s.respond(conn, protocol.CmdError, &protocol.ErrorResult{Message: err.Error()})
		return
	}

	code, err := s.runtime.Container(req.ID).Wait(ctx)
	if err != nil {
		s.respond(conn, protocol.CmdError, &protocol.ErrorResult{Message: err.Error()})
		return
	}

	s.respond(conn, protocol.CmdOK, &protocol.WaitResult{ExitCode: code})
}

// Handles a container stop command.
func (s *Server) handleContainerStop(ctx context.Context, conn net.Conn, payload json.RawMessage) {
	req, err := protocol.DecodePayload[protocol.ContainerRequest](payload)
	if err != nil {
		s.respond(conn, protocol.CmdError, &protocol.ErrorResult{Message: err.Error()})
		return
	}

	if err := s.runtime.Container(req.ID).Stop(ctx); err != nil {
		s.respond(conn, protocol.CmdError, &protocol.ErrorResult{Message: err.Error()})
		return
	}

	s.respond(conn, protocol.CmdOK, nil)
}

// Handles a container destroy command.
func (s *Server) handleContainerDestroy(ctx context.Context, conn net.Conn, payload json.RawMessage) {
	req, err := protocol.DecodePayload[protocol.ContainerRequest](payload)
	if err != nil {
		s.respond(conn, protocol.CmdError, &protocol.ErrorResult{Message: err.Error()})
		return
	}

	s.runtime.Container(req.ID).Destroy(ctx)

	s.respond(conn, protocol.CmdOK, nil)
}

// Handles a container status command.
func (s *Server) handleContainerStatus(ctx context.Context, conn net.Conn, payload json.RawMessage) {
	req, err := protocol.DecodePayload[protocol.ContainerRequest](payload)
	if err != nil {
		s.respond(conn, protocol.CmdError, &protocol.ErrorResult{Message: err.Error()})
		return
	}

	state, err := s.runtime.Container(req.ID).Status(ctx)
	if err != nil {
		s.respond(conn, protocol.CmdError, &protocol.ErrorResult{Message: err.Error()})
		return
	}

	s.respond(conn, protocol.CmdOK, &protocol.ContainerStatusResult{State: state})
}

// Handles a container exec command.
func (s *Server) handleContainerExec(ctx context.Context, conn net.Conn, payload json.RawMessage) {
	req, err := protocol.DecodePayload[protocol.ContainerExecRequest](payload)
	if err != nil {
		s.respond(conn, protocol.CmdError, &protocol.ErrorResult{Message: err.Error()})
		return
	}

	result, err := s.runtime.Container(req.ID).ExecArgs(ctx, req.Args)
	if err != nil {
		s.respond(conn, protocol.CmdError, &protocol.ErrorResult{Message: err.Error()})
		return
	}

	s.respond(conn, protocol.CmdOK, &protocol.ContainerExecResult{
		ExitCode: result.ExitCode,
		Stdout:   result.Stdout,
		Stderr:   result.Stderr,
	})
}

// Handles an image destroy command.
func (s *Server) handleImageDestroy(ctx context.Context, conn net.Conn, payload json.RawMessage) {
	req, err := protocol.DecodePayload[protocol.ImageDestroyRequest](payload)
	if err != nil {
		s.respond(conn, protocol.CmdError, &protocol.ErrorResult{Message: err.Error()})
		return
	}

	if err := s.runtime.DestroyImage(ctx, req.Tag); err != nil {
		s.respond(conn, protocol.CmdError, &protocol.ErrorResult{Message: err.Error()})
		return
	}

	s.respond(conn, protocol.CmdOK, nil)
}

// Handles a status command.
func (s *Server) handleStatus(conn net.Conn) {
	s.mu.Lock()
	builds := s.builds
	launches := s.launches
	s.mu.Unlock()

	uptime := time.Since(s.startedAt).Truncate(time.Second)

	s.respond(conn, protocol.CmdOK, &protocol.StatusResult{
		Running:  true,
		Version:  internal.VersionString(),
		Pid:      os.Getpid(),
		Uptime:   uptime.String(),
		Builds:   builds,
		Launches: launches,
	})
}

// Handles a shutdown command.
func (s *Server) handleShutdown(conn net.Conn) {
	s.respond(conn, protocol.CmdOK, nil)
	slog.Info("shutdown requested")

	go func() {
		s.Stop()
	}()
}
