package protocol

import (
	"errors"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	data, err := Encode(CmdBuild, &BuildRequest{RecipePath: "ship.toml"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	env, payload, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if env.Command != CmdBuild {
		t.Fatalf("command = %q, want %q", env.Command, CmdBuild)
	}

	req, err := DecodePayload[BuildRequest](payload)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if req.RecipePath != "ship.toml" {
		t.Fatalf("RecipePath = %q", req.RecipePath)
	}
}

func TestEncodeNilPayload(t *testing.T) {
	data, err := Encode(CmdShutdown, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	env, payload, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if env.Command != CmdShutdown {
		t.Fatalf("command = %q", env.Command)
	}
	if len(payload) != 0 {
		t.Fatalf("payload = %q, want empty", payload)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "not json", line: "not json"},
		{name: "empty object", line: "{}"},
		{name: "missing command", line: `{"payload":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode([]byte(tt.line))
			if !errors.Is(err, ErrDecode) {
				t.Fatalf("error = %v, want ErrDecode", err)
			}
		})
	}
}

func TestDecodePayloadErrors(t *testing.T) {
	if _, err := DecodePayload[BuildRequest](nil); !errors.Is(err, ErrDecode) {
		t.Fatalf("nil payload: error = %v, want ErrDecode", err)
	}
	if _, err := DecodePayload[BuildRequest]([]byte("[1,2]")); !errors.Is(err, ErrDecode) {
		t.Fatalf("wrong shape: error = %v, want ErrDecode", err)
	}
}

func TestEncodeUnmarshalablePayload(t *testing.T) {
	if _, err := Encode(CmdBuild, func() {}); !errors.Is(err, ErrEncode) {
		t.Fatalf("error = %v, want ErrEncode", err)
	}
}
