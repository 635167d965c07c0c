// Package display probes the attached monitors.
package display

import (
	"github.com/kbinani/screenshot"
)

// PrimaryIsPortrait reports whether the primary display is taller than it is
// wide. Headless machines report landscape.
func PrimaryIsPortrait() bool {
	if screenshot.NumActiveDisplays() < 1 {
		return false
	}
	bounds := screenshot.GetDisplayBounds(0)
	return bounds.Dy() > bounds.Dx()
}
