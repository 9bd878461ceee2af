package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// DescriptionLimit is the number of characters shown on a collapsed card.
const DescriptionLimit = 50

// All disables the OS or category clause of a Filter.
const All = "all"

var imageSuffixes = []string{".jpg", ".png", ".jpeg", ".gif"}

// Shortcut is one catalog entry. Detailed holds either long text or an image
// reference resolved through the catalog FS.
type Shortcut struct {
	OS          string `yaml:"os" json:"os"`
	Category    string `yaml:"category" json:"category"`
	Keys        string `yaml:"keys" json:"keys"`
	Description string `yaml:"description" json:"description"`
	Detailed    string `yaml:"detailed" json:"detailed"`
}

var errMissingField = errors.New("missing required field")

func (s Shortcut) validate() error {
	switch {
	case strings.TrimSpace(s.OS) == "":
		return fmt.Errorf("%w: os", errMissingField)
	case strings.TrimSpace(s.Keys) == "":
		return fmt.Errorf("%w: keys", errMissingField)
	case strings.TrimSpace(s.Description) == "":
		return fmt.Errorf("%w: description", errMissingField)
	}
	return nil
}

// HasImage reports whether the detail panel shows an image.
func (s Shortcut) HasImage() bool { return IsImage(s.Detailed) }

// IsImage reports whether detailed ends in one of the image extensions.
// The match is case-sensitive: ".JPG" renders as text.
func IsImage(detailed string) bool {
	if detailed == "" {
		return false
	}
	for _, suf := range imageSuffixes {
		if strings.HasSuffix(detailed, suf) {
			return true
		}
	}
	return false
}

// Truncate cuts s to DescriptionLimit runes and appends "..." when it was longer.
func Truncate(s string) string {
	r := []rune(s)
	if len(r) <= DescriptionLimit {
		return s
	}
	return string(r[:DescriptionLimit]) + "..."
}
