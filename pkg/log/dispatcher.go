package log

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// Outcome reports what Emit did with a record. Termination is returned
// as a distinguished outcome rather than performed inside Emit so the
// host decides how to abort; Log applies the default policy.
type Outcome uint8

const (
	// OutcomeSuppressed indicates the record was filtered by the
	// effective verbosity threshold; nothing was written.
	OutcomeSuppressed Outcome = iota
	// OutcomeWritten indicates the record was written to the
	// diagnostic stream.
	OutcomeWritten
	// OutcomeTerminate indicates a fatal record was written and
	// flushed; the process must now exit with a non-zero status.
	OutcomeTerminate
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuppressed:
		return "SUPPRESSED"
	case OutcomeWritten:
		return "WRITTEN"
	case OutcomeTerminate:
		return "TERMINATE"
	default:
		return "UNKNOWN"
	}
}

// indent aligns continuation lines under the message column of the
// "[<elapsed>] <C>: " prefix.
const indent = "                  " // 18 spaces

// ANSI style sequences for severity coloring on capable terminals.
const (
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiBgRed  = "\x1b[41m"
	ansiReset  = "\x1b[0m"
)

// ansiEscapes matches CSI escape sequences embedded in a composed line.
var ansiEscapes = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// Dispatcher formats and writes log records to a single diagnostic
// stream, filtering each record through a Registry. Writes are atomic
// per record: two concurrent emissions never interleave their bytes.
type Dispatcher struct {
	registry *Registry

	mu       sync.Mutex
	out      io.Writer
	terminal bool
	epoch    time.Time
	now      func() time.Time
	exit     func(int)
}

// New creates a Dispatcher writing to out. When out is an *os.File
// attached to an interactive terminal, records are styled by severity;
// on any other stream ANSI escape sequences are stripped from the
// composed line before writing. The elapsed-time epoch defaults to the
// time of the call; hosts with their own startup clock should call
// SetEpoch.
func New(registry *Registry, out io.Writer) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		out:      out,
		epoch:    time.Now(),
		now:      time.Now,
		exit:     os.Exit,
	}
	if f, ok := out.(*os.File); ok {
		d.terminal = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return d
}

// SetEpoch sets the process start time used for the elapsed-seconds
// column.
func (d *Dispatcher) SetEpoch(t time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.epoch = t
}

// SetTerminal overrides terminal detection, forcing styled (true) or
// plain (false) output.
func (d *Dispatcher) SetTerminal(terminal bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.terminal = terminal
}

// SetExitFunc replaces the function Log uses to terminate the process
// after a fatal record. Intended for hosts that need to route
// termination through their own shutdown path.
func (d *Dispatcher) SetExitFunc(exit func(int)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.exit = exit
}

// Emit filters, formats and writes one record.
//
// The record's group is derived from callsite; if the record's level is
// less severe than the group's effective threshold, nothing is written.
// Otherwise format is rendered with args, embedded newlines are
// indented, and the record is written as a single line to the
// diagnostic stream.
//
// A fatal record is flushed and OutcomeTerminate is returned; Emit
// itself never exits the process.
func (d *Dispatcher) Emit(lvl Level, location, callsite, format string, args ...any) Outcome {
	group := GroupForCallsite(callsite)
	if lvl > d.registry.Get(group) {
		return OutcomeSuppressed
	}

	msg := fmt.Sprintf(format, args...)
	msg = strings.ReplaceAll(msg, "\n", "\n"+indent)

	d.mu.Lock()
	defer d.mu.Unlock()

	elapsed := d.now().Sub(d.epoch).Seconds()
	line := fmt.Sprintf("[%12.6f] %c: %s:%s: %s", elapsed, lvl.prefix(), callsite, location, msg)

	if d.terminal {
		if style := lvl.style(); style != "" {
			line = style + line + ansiReset
		}
	} else {
		line = ansiEscapes.ReplaceAllString(line, "")
	}

	// Write errors are ignored: the dispatcher is the terminal sink for
	// diagnostics and must not recursively report its own failures.
	_, _ = io.WriteString(d.out, line+"\n")

	if lvl == LevelFatal {
		d.flushLocked()
		return OutcomeTerminate
	}
	return OutcomeWritten
}

// Log is Emit plus the fatal termination policy: a fatal record exits
// the process with a non-zero status once the record is flushed.
func (d *Dispatcher) Log(lvl Level, location, callsite, format string, args ...any) {
	if d.Emit(lvl, location, callsite, format, args...) == OutcomeTerminate {
		d.mu.Lock()
		exit := d.exit
		d.mu.Unlock()
		exit(1)
	}
}

// flushLocked pushes buffered output down to the OS before a fatal
// termination. Callers must hold d.mu.
func (d *Dispatcher) flushLocked() {
	switch w := d.out.(type) {
	case interface{ Sync() error }:
		_ = w.Sync()
	case interface{ Flush() error }:
		_ = w.Flush()
	}
}
