package ipc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"
)

// Framing constants.
const (
	// lengthPrefixSize is the size of the length prefix in bytes.
	lengthPrefixSize = 4

	// MaxRecordSize is the maximum encoded record size (64 KB).
	MaxRecordSize = 65536
)

// Framing errors.
var (
	// ErrRecordTooLarge indicates the encoded record exceeds MaxRecordSize.
	ErrRecordTooLarge = errors.New("log record too large")

	// ErrRecordEmpty indicates an empty record payload.
	ErrRecordEmpty = errors.New("log record is empty")

	// ErrFrameTruncated indicates the channel closed mid-frame.
	ErrFrameTruncated = errors.New("log frame truncated")
)

// FrameWriter writes length-prefixed record payloads to the log
// channel. Thread-safe: frames from concurrent writers never interleave.
type FrameWriter struct {
	w  io.Writer
	mu sync.Mutex
}

// NewFrameWriter creates a new frame writer.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{w: w}
}

// WriteFrame writes one length-prefixed frame.
func (fw *FrameWriter) WriteFrame(data []byte) error {
	if len(data) == 0 {
		return ErrRecordEmpty
	}
	if len(data) > MaxRecordSize {
		return fmt.Errorf("%w: %d > %d", ErrRecordTooLarge, len(data), MaxRecordSize)
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	// Length prefix is 4 bytes, big-endian.
	var lengthBuf [lengthPrefixSize]byte
	binary.BigEndian.PutUint32(lengthBuf[:], uint32(len(data)))

	if _, err := fw.w.Write(lengthBuf[:]); err != nil {
		return fmt.Errorf("failed to write length prefix: %w", err)
	}
	if _, err := fw.w.Write(data); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}
	return nil
}

// FrameReader reads length-prefixed record payloads from the log
// channel.
type FrameReader struct {
	r         io.Reader
	lengthBuf [lengthPrefixSize]byte
}

// NewFrameReader creates a new frame reader.
func NewFrameReader(r io.Reader) *FrameReader {
	return &FrameReader{r: r}
}

// ReadFrame reads one frame and returns its payload (without the
// length prefix). A clean end of the channel returns io.EOF.
func (fr *FrameReader) ReadFrame() ([]byte, error) {
	if _, err := io.ReadFull(fr.r, fr.lengthBuf[:]); err != nil {
		if err == io.EOF {
			return nil, err
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrFrameTruncated
		}
		return nil, fmt.Errorf("failed to read length prefix: %w", err)
	}

	length := binary.BigEndian.Uint32(fr.lengthBuf[:])
	if length == 0 {
		return nil, ErrRecordEmpty
	}
	if length > MaxRecordSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrRecordTooLarge, length, MaxRecordSize)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(fr.r, payload); err != nil {
		if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrFrameTruncated
		}
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	return payload, nil
}
