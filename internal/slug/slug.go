// Package slug derives URL slugs from display names the same way the
// SokaStore API does, so client-side previews match what the server
// will store.
package slug

import "strings"

// Make lowercases the name and replaces runs of whitespace with single
// hyphens. Characters that never appear in the API's slugs (anything
// outside a-z, 0-9 and hyphen) are dropped.
func Make(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphens
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '\t' || r == '-' || r == '_':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
