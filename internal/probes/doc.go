// Package probes contains the built-in collision probes. Each probe
// registers itself with the registry on import, so callers only need
//
//	import _ "github.com/vovakirdan/notsure/internal/probes"
//
// to make them available. Run evaluates many scenes concurrently.
package probes
