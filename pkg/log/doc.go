// Package log implements Lark's per-group diagnostic logging.
//
// Every call site belongs to a verbosity group derived from its source
// identifier: native sources log under core/, extension scripts under
// script/. Groups form a slash-delimited hierarchy; the effective
// threshold for a group is resolved by walking up that hierarchy with
// a final fallback to the reserved "all" group.
//
// # Basic Usage
//
// A host owns one Registry and one Dispatcher for its diagnostic
// stream, and hands them to every component:
//
//	reg := log.NewRegistry()
//	reg.Set("core/session", log.LevelDebug)
//
//	d := log.New(reg, os.Stderr)
//	d.Log(log.LevelInfo, "42", "session.go", "peer %s connected", addr)
//
// Emit returns an Outcome instead of terminating the process itself;
// Log is the enforcing wrapper that exits on a fatal record. Records
// forwarded from extension processes re-enter through this same
// pipeline via the ipc package, so filtering and formatting behave as
// if the record had originated locally.
//
// # Line Format
//
// Records are written as a single line:
//
//	[<elapsed>] <C>: <callsite>:<location>: <message>
//
// where <elapsed> is fractional seconds since the dispatcher epoch and
// <C> is one of F E W I V D. Embedded newlines are indented so
// continuation lines align under the message column. On a color-capable
// terminal the line is styled by severity; on any other stream ANSI
// escape sequences are stripped.
package log
