package ipc

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/larkengine/lark-log/pkg/log"
)

// Bridge replays log records received from a remote execution context
// through a local Dispatcher. The remote call-site identity is
// preserved, so verbosity filtering and formatting behave exactly as if
// the record had originated locally under that call site's group.
type Bridge struct {
	id         string
	dispatcher *log.Dispatcher
}

// NewBridge creates a Bridge replaying records through d. Each bridge
// is assigned a channel identifier used in channel diagnostics.
func NewBridge(d *log.Dispatcher) *Bridge {
	return &Bridge{
		id:         uuid.NewString(),
		dispatcher: d,
	}
}

// ChannelID returns the identifier assigned to this log channel.
func (b *Bridge) ChannelID() string {
	return b.id
}

// Receive decodes one record payload and re-emits it locally, returning
// the dispatcher's outcome. Forwarding is one-way: no response is sent.
//
// The remote message is passed through verbatim, never re-interpreted
// as a format string. The channel is a trusted internal link, so a
// payload that does not decode to exactly four fields indicates
// corruption or a protocol version mismatch and panics.
func (b *Bridge) Receive(payload []byte) log.Outcome {
	rec, err := DecodeRecord(payload)
	if err != nil {
		panic(fmt.Sprintf("ipc: log channel %s: malformed record: %v", b.id, err))
	}
	return b.dispatcher.Emit(log.Level(rec.Level), rec.Location, rec.Callsite, "%s", rec.Message)
}

// Serve reads framed records from r and replays each one until the
// channel is exhausted. A clean EOF returns a nil error.
//
// Serve returns as soon as a forwarded fatal record is emitted, handing
// OutcomeTerminate back to the caller; the host decides how to abort.
func (b *Bridge) Serve(r io.Reader) (log.Outcome, error) {
	fr := NewFrameReader(r)
	outcome := log.OutcomeSuppressed
	for {
		payload, err := fr.ReadFrame()
		if err != nil {
			if err == io.EOF {
				return outcome, nil
			}
			return outcome, fmt.Errorf("ipc: log channel %s: %w", b.id, err)
		}

		outcome = b.Receive(payload)
		if outcome == log.OutcomeTerminate {
			return outcome, nil
		}
	}
}
