// Package seed ships read-only snapshots of every collection inside the
// binary: the last tier of the fallback chain before giving up. Stale by
// construction, but "something plausible" beats an empty portal.
package seed

import "embed"

//go:embed *.json
var files embed.FS

// Collection returns the bundled snapshot for a collection filename,
// or false when none is shipped.
func Collection(filename string) ([]byte, bool) {
	data, err := files.ReadFile(filename)
	if err != nil {
		return nil, false
	}
	return data, true
}
