package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// hexColorRegex matches 3- or 6-digit hex colors with a leading hash.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor validates a fill or stroke color string.
// Hex colors must be #rgb or #rrggbb; the keyword "none" is also accepted.
func ValidateColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if color == "none" {
		return nil
	}
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidColor, "invalid color %q (expected #rgb, #rrggbb or \"none\")", color)
	}
	return nil
}

// dashPatternRegex matches SVG stroke-dasharray values: comma- or
// space-separated non-negative numbers.
var dashPatternRegex = regexp.MustCompile(`^\d+(\.\d+)?([, ]\s*\d+(\.\d+)?)*$`)

// ValidateDashPattern validates an SVG dash pattern string.
// An empty pattern means a solid stroke and is valid.
func ValidateDashPattern(dash string) error {
	if dash == "" {
		return nil
	}
	if !dashPatternRegex.MatchString(dash) {
		return New(ErrCodeInvalidInput, "invalid dash pattern %q", dash)
	}
	return nil
}

// ValidatePath validates a user-supplied file path for safety.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}
