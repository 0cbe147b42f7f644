package domain

import "strings"

// occurrences returns the start offsets of needle in s for which accept holds.
// Overlapping candidates are considered; callers resolve overlaps themselves.
func occurrences(s, needle string, accept func(start, end int) bool) []int {
	if needle == "" {
		return nil
	}

	var starts []int

	for offset := 0; offset <= len(s)-len(needle); {
		i := strings.Index(s[offset:], needle)
		if i < 0 {
			break
		}

		start := offset + i
		if accept == nil || accept(start, start+len(needle)) {
			starts = append(starts, start)
		}

		offset = start + 1
	}

	return starts
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '$' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

func isUpperByte(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}

	return false
}

// wordBoundaryBefore reports whether the byte before start cannot continue an identifier.
func wordBoundaryBefore(s string, start int) bool {
	return start == 0 || !isIdentByte(s[start-1])
}

// wordBoundaryAfter reports whether the byte at end cannot continue an identifier.
func wordBoundaryAfter(s string, end int) bool {
	return end >= len(s) || !isIdentByte(s[end])
}
