package stringsutil

import "strings"

// SplitNonEmpty splits s by sep and returns only non-empty parts.
func SplitNonEmpty(s, sep string) []string {
	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// ShortHash truncates a hex hash to n characters. Returns fallback if hash is empty.
func ShortHash(hash string, n int, fallback string) string {
	if hash == "" {
		return fallback
	}
	if len(hash) > n {
		return hash[:n]
	}
	return hash
}

// FirstLine returns the first line of s without its line terminator.
func FirstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSuffix(line, "\r")
}
