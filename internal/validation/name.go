package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const MaxDirectoryNameLength = 100

var ErrInvalidName = errors.New("invalid directory name")

// NormalizeDirectoryName trims and NFC-normalizes name and checks that it is
// usable as a single path segment. It returns the normalized name.
func NormalizeDirectoryName(name string) (string, error) {
	normalized := norm.NFC.String(strings.TrimSpace(name))

	if normalized == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidName)
	}

	if utf8.RuneCountInString(normalized) > MaxDirectoryNameLength {
		return "", fmt.Errorf("%w: name is too long (max %d characters)", ErrInvalidName, MaxDirectoryNameLength)
	}

	err := ValidatePathSegment(normalized)
	if err != nil {
		return "", err
	}

	return normalized, nil
}

// ValidatePathSegment rejects names that would not stay a single segment
// below their parent when joined into a filesystem path.
func ValidatePathSegment(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty segment", ErrInvalidName)
	}

	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q is reserved", ErrInvalidName, name)
	}

	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: name must not contain path separators", ErrInvalidName)
	}

	for _, r := range name {
		if r == 0 || unicode.IsControl(r) {
			return fmt.Errorf("%w: name must not contain control characters", ErrInvalidName)
		}
	}

	return nil
}
