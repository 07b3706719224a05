// Package format holds the shared CLI output helpers.
package format

import (
	"fmt"

	"github.com/fatih/color"

	"cryptofolio/internal/app/client"
)

var (
	warn    = color.New(color.FgYellow)
	success = color.New(color.FgGreen)
	header  = color.New(color.FgCyan, color.Bold)
)

// ProvenanceNotice prints a degraded-mode banner when data did not come
// from the portal backend. Remote data prints nothing.
func ProvenanceNotice(p client.Provenance) {
	switch p {
	case client.ProvenanceCache:
		warn.Println("⚠ offline: showing locally cached data")
	case client.ProvenanceSeed:
		warn.Println("⚠ offline: showing bundled demo data")
	case client.ProvenanceEmpty:
		warn.Println("⚠ offline: no data available")
	}
}

// Header prints a section title.
func Header(text string) {
	header.Println(text)
}

// Success prints a green confirmation line.
func Success(text string, args ...any) {
	success.Printf(text+"\n", args...)
}

// EUR renders a euro amount.
func EUR(v float64) string {
	return fmt.Sprintf("%.2f EUR", v)
}
