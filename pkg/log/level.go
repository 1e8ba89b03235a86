package log

import "fmt"

// Level is the severity of a log record. Lower values are more severe:
// a record is emitted only when its level is at or above (numerically
// at or below) the effective verbosity threshold of its group.
type Level uint8

const (
	// LevelFatal reports an unrecoverable condition; emitting it
	// terminates the process after the record is written.
	LevelFatal Level = iota
	// LevelError reports a failure the process survives.
	LevelError
	// LevelWarn reports an expected but suspicious condition.
	LevelWarn
	// LevelInfo reports coarse progress. This is the default threshold.
	LevelInfo
	// LevelVerbose reports fine-grained progress.
	LevelVerbose
	// LevelDebug is the most detailed level.
	LevelDebug
)

// levelNames is the canonical name table, indexed by ordinal. ParseLevel
// accepts exactly these names, so String and ParseLevel round-trip.
var levelNames = [...]string{"fatal", "error", "warn", "info", "verbose", "debug"}

// String returns the canonical lowercase level name.
func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("level(%d)", uint8(l))
}

// ParseLevel maps a canonical level name to its Level. The match is
// exact and case-sensitive. An unrecognized name is a recoverable
// configuration error; the caller decides whether to ignore it or
// abort configuration.
func ParseLevel(name string) (Level, error) {
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("unknown log level %q", name)
}

// prefix returns the one-character severity marker for the line format.
func (l Level) prefix() byte {
	switch l {
	case LevelFatal:
		return 'F'
	case LevelError:
		return 'E'
	case LevelWarn:
		return 'W'
	case LevelInfo:
		return 'I'
	case LevelVerbose:
		return 'V'
	case LevelDebug:
		return 'D'
	default:
		panic(fmt.Sprintf("log: invalid level %d", uint8(l)))
	}
}

// style returns the ANSI style sequence used on capable terminals, or
// "" for levels that carry no styling.
func (l Level) style() string {
	switch l {
	case LevelFatal:
		return ansiBgRed
	case LevelError:
		return ansiRed
	case LevelWarn:
		return ansiYellow
	default:
		return ""
	}
}
