package util

import (
	"fmt"
	"regexp"
	"strings"
)

// FormatSize formats a file size in bytes to a human-readable string
func FormatSize(size int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	unitIndex := 0
	floatSize := float64(size)

	for floatSize >= 1024 && unitIndex < len(units)-1 {
		floatSize /= 1024
		unitIndex++
	}

	if unitIndex == 0 {
		return fmt.Sprintf("%d %s", size, units[unitIndex])
	}

	return fmt.Sprintf("%.2f %s", floatSize, units[unitIndex])
}

var (
	nonWordChars = regexp.MustCompile(`[^\w\s-]`)
	separators   = regexp.MustCompile(`[-\s]+`)
)

// SanitizeFolderName converts a free-text project name into a safe folder
// name: lowercased, special characters stripped, spaces and dashes collapsed
// into underscores, capped at 50 characters.
func SanitizeFolderName(name string) string {
	safe := nonWordChars.ReplaceAllString(strings.ToLower(name), "")
	safe = separators.ReplaceAllString(safe, "_")
	safe = strings.Trim(safe, "_")
	if len(safe) > 50 {
		safe = safe[:50]
	}
	return safe
}
