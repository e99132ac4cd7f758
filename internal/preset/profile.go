package preset

import (
	"errors"
	"fmt"
)

// DefaultProfile is the color profile every derived preset starts with.
const DefaultProfile = "Adobe Color"

// SupportedProfiles lists the profile names accepted by Lightroom presets.
var SupportedProfiles = []string{
	"Adobe Color",
	"Adobe Standard",
	"Adobe Portrait",
	"Adobe Landscape",
	"Adobe Vivid",
	"Adobe Monochrome",
	"Camera Standard",
}

// ErrUnknownProfile is returned by ParseProfile for unsupported names.
var ErrUnknownProfile = errors.New("unsupported color profile")

// ParseProfile validates a profile name.
func ParseProfile(name string) (string, error) {
	for _, p := range SupportedProfiles {
		if p == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}
