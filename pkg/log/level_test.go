package log

import "testing"

func TestLevelOrdering(t *testing.T) {
	// Lower ordinal = more severe.
	levels := []Level{LevelFatal, LevelError, LevelWarn, LevelInfo, LevelVerbose, LevelDebug}
	for i := 1; i < len(levels); i++ {
		if levels[i-1] >= levels[i] {
			t.Errorf("expected %v < %v", levels[i-1], levels[i])
		}
	}
}

func TestLevelNameRoundTrip(t *testing.T) {
	for _, lvl := range []Level{LevelFatal, LevelError, LevelWarn, LevelInfo, LevelVerbose, LevelDebug} {
		parsed, err := ParseLevel(lvl.String())
		if err != nil {
			t.Fatalf("ParseLevel(%q) failed: %v", lvl.String(), err)
		}
		if parsed != lvl {
			t.Errorf("ParseLevel(%q): got %v, want %v", lvl.String(), parsed, lvl)
		}
	}
}

func TestParseLevelUnknownName(t *testing.T) {
	if _, err := ParseLevel("trace"); err == nil {
		t.Error("expected error for unknown level name")
	}
}

func TestParseLevelIsCaseSensitive(t *testing.T) {
	for _, name := range []string{"Info", "INFO", "Warn ", " debug"} {
		if _, err := ParseLevel(name); err == nil {
			t.Errorf("ParseLevel(%q): expected error", name)
		}
	}
}

func TestLevelPrefixChars(t *testing.T) {
	want := map[Level]byte{
		LevelFatal:   'F',
		LevelError:   'E',
		LevelWarn:    'W',
		LevelInfo:    'I',
		LevelVerbose: 'V',
		LevelDebug:   'D',
	}
	for lvl, c := range want {
		if got := lvl.prefix(); got != c {
			t.Errorf("%v.prefix(): got %c, want %c", lvl, got, c)
		}
	}
}

func TestLevelStyles(t *testing.T) {
	if LevelFatal.style() != ansiBgRed {
		t.Error("fatal should use background red")
	}
	if LevelError.style() != ansiRed {
		t.Error("error should use red")
	}
	if LevelWarn.style() != ansiYellow {
		t.Error("warn should use yellow")
	}
	for _, lvl := range []Level{LevelInfo, LevelVerbose, LevelDebug} {
		if lvl.style() != "" {
			t.Errorf("%v should carry no styling", lvl)
		}
	}
}
