package ipc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larkengine/lark-log/pkg/log"
)

// afterTimestamp strips the elapsed-seconds column so two lines emitted
// at different instants can be compared.
func afterTimestamp(t *testing.T, line string) string {
	t.Helper()
	_, rest, ok := strings.Cut(line, "] ")
	require.True(t, ok, "line %q has no timestamp column", line)
	return rest
}

func TestBridgeRoundTripMatchesDirectEmit(t *testing.T) {
	reg := log.NewRegistry()

	direct := &bytes.Buffer{}
	d1 := log.New(reg, direct)
	d1.Emit(log.LevelError, "42", "mod.go", "%s", "boom")

	payload, err := EncodeRecord(Record{
		Level:    int(log.LevelError),
		Location: "42",
		Callsite: "mod.go",
		Message:  "boom",
	})
	require.NoError(t, err)

	forwarded := &bytes.Buffer{}
	d2 := log.New(reg, forwarded)
	outcome := NewBridge(d2).Receive(payload)

	require.Equal(t, log.OutcomeWritten, outcome)
	assert.Equal(t,
		afterTimestamp(t, direct.String()),
		afterTimestamp(t, forwarded.String()),
		"forwarded record must render identically to a local emission")
}

func TestBridgeAppliesRemoteGroupFiltering(t *testing.T) {
	// The record is filtered under the remote call site's group, as if
	// it had originated locally.
	reg := log.NewRegistry()
	reg.Set("script/tabs", log.LevelError)

	buf := &bytes.Buffer{}
	b := NewBridge(log.New(reg, buf))

	payload, err := EncodeRecord(Record{
		Level:    int(log.LevelInfo),
		Location: "7",
		Callsite: "./tabs.lua",
		Message:  "suppressed",
	})
	require.NoError(t, err)

	assert.Equal(t, log.OutcomeSuppressed, b.Receive(payload))
	assert.Zero(t, buf.Len())
}

func TestBridgeMessageIsNotReinterpreted(t *testing.T) {
	// A remote message containing printf verbs must pass through
	// verbatim.
	buf := &bytes.Buffer{}
	b := NewBridge(log.New(log.NewRegistry(), buf))

	payload, err := EncodeRecord(Record{
		Level:    int(log.LevelInfo),
		Location: "1",
		Callsite: "mod.go",
		Message:  "100%s done %d",
	})
	require.NoError(t, err)

	b.Receive(payload)
	assert.Contains(t, buf.String(), "100%s done %d")
	assert.NotContains(t, buf.String(), "MISSING")
}

func TestBridgeMalformedPayloadPanics(t *testing.T) {
	b := NewBridge(log.New(log.NewRegistry(), &bytes.Buffer{}))

	threeFields, err := encMode.Marshal([]any{1, "42", "mod.go"})
	require.NoError(t, err)

	assert.Panics(t, func() { b.Receive(threeFields) })
	assert.Panics(t, func() { b.Receive([]byte{0xff}) })
}

func TestBridgeServeReplaysUntilEOF(t *testing.T) {
	channel := &bytes.Buffer{}
	f := NewForwarder(channel)
	require.NoError(t, f.Forward(log.LevelInfo, "1", "ext.go", "first"))
	require.NoError(t, f.Forward(log.LevelInfo, "2", "ext.go", "second %d", 2))

	buf := &bytes.Buffer{}
	b := NewBridge(log.New(log.NewRegistry(), buf))

	outcome, err := b.Serve(channel)
	require.NoError(t, err)
	assert.Equal(t, log.OutcomeWritten, outcome)

	out := buf.String()
	assert.Contains(t, out, "I: ext.go:1: first")
	assert.Contains(t, out, "I: ext.go:2: second 2")
}

func TestBridgeServeStopsOnForwardedFatal(t *testing.T) {
	channel := &bytes.Buffer{}
	f := NewForwarder(channel)
	require.NoError(t, f.Forward(log.LevelFatal, "9", "ext.go", "remote failure"))
	require.NoError(t, f.Forward(log.LevelInfo, "10", "ext.go", "never replayed"))

	buf := &bytes.Buffer{}
	b := NewBridge(log.New(log.NewRegistry(), buf))

	outcome, err := b.Serve(channel)
	require.NoError(t, err)
	assert.Equal(t, log.OutcomeTerminate, outcome)
	assert.Contains(t, buf.String(), "F: ext.go:9: remote failure")
	assert.NotContains(t, buf.String(), "never replayed")
}

func TestBridgeChannelIDsAreUnique(t *testing.T) {
	d := log.New(log.NewRegistry(), &bytes.Buffer{})
	a, b := NewBridge(d), NewBridge(d)
	assert.NotEmpty(t, a.ChannelID())
	assert.NotEqual(t, a.ChannelID(), b.ChannelID())
}

func TestForwarderRendersLocally(t *testing.T) {
	channel := &bytes.Buffer{}
	f := NewForwarder(channel)
	require.NoError(t, f.Forward(log.LevelWarn, "3", "ext.go", "value=%d", 7))

	payload, err := NewFrameReader(channel).ReadFrame()
	require.NoError(t, err)

	rec, err := DecodeRecord(payload)
	require.NoError(t, err)
	assert.Equal(t, "value=7", rec.Message, "format must be rendered before forwarding")
	assert.Equal(t, int(log.LevelWarn), rec.Level)
}
