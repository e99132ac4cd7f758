package preset

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxNameLength is the longest preset name accepted for export.
const MaxNameLength = 100

// Name validation errors.
var (
	ErrNameEmpty        = errors.New("please enter a preset name")
	ErrNameTooLong      = errors.New("preset name must be at most 100 characters")
	ErrNameInvalidChars = errors.New("use only letters, numbers, spaces, -, _, .")
)

var (
	disallowedNameChars = regexp.MustCompile(`[^A-Za-z0-9\s._-]`)
	whitespaceRun       = regexp.MustCompile(`\s+`)
)

// ValidateName checks a preset name before export.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameEmpty
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	if disallowedNameChars.MatchString(name) {
		return ErrNameInvalidChars
	}
	return nil
}

// SanitizeFilenameBase turns a preset name into a safe file name stem.
// "My Preset!!" becomes "My-Preset"; a name with nothing usable becomes
// "preset".
func SanitizeFilenameBase(name string) string {
	base := disallowedNameChars.ReplaceAllString(strings.TrimSpace(name), "")
	base = whitespaceRun.ReplaceAllString(strings.TrimSpace(base), "-")
	if base == "" {
		return "preset"
	}
	return base
}

// Filename returns the download file name for a preset.
func Filename(name string) string {
	return SanitizeFilenameBase(name) + ".xmp"
}
