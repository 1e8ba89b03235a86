package log

import (
	"strings"
	"sync"
)

// DefaultLevel is the threshold used when neither a group, any of its
// ancestors, nor the universal group has a configured level.
const DefaultLevel = LevelInfo

// universalGroup is the reserved final-fallback key.
const universalGroup = "all"

// Registry maps verbosity groups to configured levels and resolves
// effective thresholds hierarchically. The zero value is ready to use:
// an unconfigured registry answers DefaultLevel for every group.
//
// Registry is safe for concurrent use; configuration writes and
// emission-path lookups may come from different goroutines.
type Registry struct {
	mu     sync.RWMutex
	levels map[string]Level
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Set configures the verbosity threshold for group. Overwriting an
// existing entry is silent; last write wins. Entries persist for the
// lifetime of the registry.
func (r *Registry) Set(group string, lvl Level) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.levels == nil {
		r.levels = make(map[string]Level)
	}
	r.levels[group] = lvl
}

// Get resolves the effective threshold for group: the group's own entry
// if configured, otherwise the nearest configured ancestor (truncating
// at the last '/'), otherwise the "all" entry, otherwise DefaultLevel.
//
// Each step either strictly shortens the candidate or transitions to
// the terminal "all" key exactly once, so the walk finishes in at most
// depth+1 iterations. The lookup never mutates the registry or its
// argument.
func (r *Registry) Get(group string) Level {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.levels == nil {
		return DefaultLevel
	}

	for g := group; ; {
		if lvl, ok := r.levels[g]; ok {
			return lvl
		}
		if i := strings.LastIndexByte(g, '/'); i >= 0 {
			g = g[:i]
			continue
		}
		if g == universalGroup {
			return DefaultLevel
		}
		g = universalGroup
	}
}
