// Package protocol defines the wire format between the CLI and the daemon.
//
// Messages are newline-delimited JSON envelopes. Each envelope carries a
// command name and an optional payload, decoded in two phases: [Decode]
// parses the envelope and returns the raw payload, and [DecodePayload]
// parses the payload into the request or result type for the command.
//
// Example usage:
//
//	data, err := protocol.Encode(protocol.CmdBuild, &protocol.BuildRequest{
//	    RecipePath: "ship.toml",
//	})
//	if err != nil {
//	    return err
//	}
//
//	env, payload, err := protocol.Decode(line)
//	if err != nil {
//	    return err
//	}
//	req, err := protocol.DecodePayload[protocol.BuildRequest](payload)
package protocol
