package protocol

import (
	"encoding/json"

	"github.com/quayside/shipd/internal/fault"
)

// A command name carried in an envelope.
type Command string

// Commands sent by the client.
const (
	CmdBuild            Command = "build"
	CmdLaunch           Command = "launch"
	CmdWait             Command = "wait"
	CmdContainerStop    Command = "container-stop"
	CmdContainerDestroy Command = "container-destroy"
	CmdContainerStatus  Command = "container-status"
	CmdContainerExec    Command = "container-exec"
	CmdImageDestroy     Command = "image-destroy"
	CmdStatus           Command = "status"
	CmdShutdown         Command = "shutdown"
)

// Commands sent by the daemon in response.
const (
	CmdOK    Command = "ok"
	CmdError Command = "error"
)

// The outer message exchanged over the socket. One envelope per line.
type Envelope struct {
	Command Command         `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Serializes a command and its payload into an envelope.
//
// A nil payload produces an envelope without a payload field.
func Encode(cmd Command, payload any) ([]byte, error) {
	env := Envelope{Command: cmd}

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fault.Wrap(ErrEncode, err)
		}
		env.Payload = data
	}

	data, err := json.Marshal(env)
	if err != nil {
		return nil, fault.Wrap(ErrEncode, err)
	}
	return data, nil
}

// Parses an envelope from a single line.
//
// Returns the envelope and its raw payload for later decoding with
// [DecodePayload].
func Decode(line []byte) (*Envelope, json.RawMessage, error) {
	var env Envelope
	if err := json.Unmarshal(line, &env); err != nil {
		return nil, nil, fault.Wrap(ErrDecode, err)
	}
	if env.Command == "" {
		return nil, nil, fault.Wrapf(ErrDecode, "missing command")
	}
	return &env, env.Payload, nil
}

// Parses a raw payload into a concrete request or result type.
func DecodePayload[T any](raw json.RawMessage) (*T, error) {
	if len(raw) == 0 {
		return nil, fault.Wrapf(ErrDecode, "missing payload")
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fault.Wrap(ErrDecode, err)
	}
	return &v, nil
}
