package lunar

import (
	"fmt"
	"os"
)

// globalDebug enables stderr diagnostics (no sync — lunar is single-threaded).
var globalDebug bool

// SetDebug toggles debug diagnostics on stderr. Off by default.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// debugf prints a "[lunar]"-prefixed line to stderr when debug is enabled.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[lunar] "+format+"\n", args...)
}

// seenUnknownLabels tracks raw labels already warned about, so a held key
// repeating at the platform's key-repeat rate doesn't flood stderr.
var seenUnknownLabels map[string]struct{}

func warnUnknownLabel(label string) {
	if !globalDebug {
		return
	}
	if seenUnknownLabels == nil {
		seenUnknownLabels = make(map[string]struct{})
	}
	if _, ok := seenUnknownLabels[label]; ok {
		return
	}
	seenUnknownLabels[label] = struct{}{}
	debugf("unrecognized key label %q, tracking as Unknown", label)
}
