package ipc

import (
	"fmt"
	"io"

	"github.com/larkengine/lark-log/pkg/log"
)

// Forwarder is the extension-process end of the log channel: records
// that would otherwise go to the local diagnostic stream are encoded
// and sent to the controlling process, where a Bridge replays them.
type Forwarder struct {
	fw *FrameWriter
}

// NewForwarder creates a Forwarder writing frames to w.
func NewForwarder(w io.Writer) *Forwarder {
	return &Forwarder{fw: NewFrameWriter(w)}
}

// Forward renders one record and sends it over the channel. Rendering
// happens on this side so the receiving process never interprets the
// message as a format string.
func (f *Forwarder) Forward(lvl log.Level, location, callsite, format string, args ...any) error {
	data, err := EncodeRecord(Record{
		Level:    int(lvl),
		Location: location,
		Callsite: callsite,
		Message:  fmt.Sprintf(format, args...),
	})
	if err != nil {
		return fmt.Errorf("ipc: encode log record: %w", err)
	}
	return f.fw.WriteFrame(data)
}
