package ipc

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder mode for log records.
// Configured for deterministic encoding.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for log records.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create log record CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create log record CBOR decoder mode: %v", err))
	}
}

// Record is one log record on the inter-process log channel.
// It is encoded as a fixed four-element CBOR array in field order:
// level, location, call-site identifier, message.
type Record struct {
	_ struct{} `cbor:",toarray"`

	// Level is the severity ordinal (log.Level).
	Level int

	// Location is the position within the call site's source.
	Location string

	// Callsite is the source identifier of the emitting call site.
	Callsite string

	// Message is the fully rendered message text.
	Message string
}

// EncodeRecord encodes a Record to CBOR bytes.
func EncodeRecord(rec Record) ([]byte, error) {
	return encMode.Marshal(rec)
}

// DecodeRecord decodes CBOR bytes into a Record. A payload whose array
// length differs from the four wire fields fails to decode.
func DecodeRecord(data []byte) (Record, error) {
	var rec Record
	if err := decMode.Unmarshal(data, &rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}
