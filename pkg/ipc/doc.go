// Package ipc carries log records between a sandboxed extension
// process and the controlling process.
//
// The extension side renders records locally and sends them through a
// Forwarder; the controlling side replays them through its own
// log.Dispatcher via a Bridge, preserving the remote call-site
// identity. Records travel as fixed four-element CBOR arrays inside
// length-prefixed frames.
//
// The channel is a trusted, versioned internal link. A payload that
// does not decode to exactly four fields indicates corruption or a
// version mismatch and is treated as a fatal internal error, not as
// adversarial input to be tolerated.
package ipc
