package static

import "strings"

// EffectivePath returns the path to resolve against the document root.
//
// raw is the request target exactly as received, query string included, and is
// only used for the prefix test: "/debugging/x" does not match "/debug/".
// decoded is the normalized URL path used when no rewrite applies.
// The second result reports whether the debug rewrite fired.
func EffectivePath(raw, decoded, debugPrefix string) (string, bool) {
	if debugPrefix != "" && strings.HasPrefix(raw, debugPrefix) {
		return "/", true
	}
	if decoded == "" {
		return "/", false
	}
	return decoded, false
}
