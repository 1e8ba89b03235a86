package log

import (
	"fmt"
	"strings"
)

// Source kind suffixes recognized in call-site identifiers.
const (
	nativeSuffix = ".go"
	scriptSuffix = ".lua"
)

// GroupForCallsite derives the verbosity group for a call-site
// identifier. Native sources map to "core/<name>", extension scripts to
// "script/<name>" with a leading "./" stripped. The group is a pure
// function of the identifier.
//
// An identifier matching neither source-kind suffix violates the
// logging contract and panics: call sites are compiled in, so a bad
// identifier is a bug in the caller, not a runtime condition.
func GroupForCallsite(callsite string) string {
	native := strings.HasSuffix(callsite, nativeSuffix)
	script := strings.HasSuffix(callsite, scriptSuffix)
	if native == script {
		panic(fmt.Sprintf("log: call-site identifier %q has no recognized source suffix", callsite))
	}

	if native {
		return "core/" + strings.TrimSuffix(callsite, nativeSuffix)
	}

	name := strings.TrimSuffix(callsite, scriptSuffix)
	name = strings.TrimPrefix(name, "./")
	return "script/" + name
}
