// Package wallpaper applies an image file as the desktop background. It is a
// thin boundary over the platform-specific mechanisms and never retries.
package wallpaper

import (
	"fmt"

	desktop "github.com/reujab/wallpaper"

	"github.com/wallfetch/wallfetch/pkg/util"
)

// Set makes localPath the desktop background on the current desktop
// environment. The returned error carries a human-readable reason.
func Set(localPath string) error {
	if localPath == "" {
		return fmt.Errorf("no image file to set as wallpaper")
	}
	if err := desktop.SetFromFile(localPath); err != nil {
		return util.WrapError(err, "failed to set wallpaper")
	}
	return nil
}

// Current returns the path or URI of the active wallpaper, when the desktop
// environment exposes it.
func Current() (string, error) {
	current, err := desktop.Get()
	if err != nil {
		return "", util.WrapError(err, "failed to read current wallpaper")
	}
	return current, nil
}
