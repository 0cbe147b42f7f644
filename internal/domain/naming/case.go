// Package naming provides the case conventions used to derive screenset identifiers.
//
// The converters are total over non-empty ASCII identifier-like strings. They do not
// round-trip: PascalCase -> camelCase -> PascalCase may lose information for inputs that
// start with several capitals.
package naming

import (
	"regexp"
	"strings"
)

var (
	segmentSeparators  = regexp.MustCompile(`[-_]+`)
	lowerUpperBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	snakeSeparators    = regexp.MustCompile(`[-\s]+`)
	kebabSeparators    = regexp.MustCompile(`[_\s]+`)
)

// ToPascalCase upper-cases the first letter of every `-`/`_` separated segment and joins them.
func ToPascalCase(s string) string {
	var b strings.Builder

	for _, segment := range segmentSeparators.Split(s, -1) {
		if segment == "" {
			continue
		}

		b.WriteString(strings.ToUpper(segment[:1]))
		b.WriteString(segment[1:])
	}

	return b.String()
}

// ToCamelCase is ToPascalCase with the first letter lower-cased.
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return ""
	}

	return strings.ToLower(pascal[:1]) + pascal[1:]
}

// ToScreamingSnake converts chatCopy or chat-copy to CHAT_COPY.
func ToScreamingSnake(s string) string {
	out := lowerUpperBoundary.ReplaceAllString(s, "${1}_${2}")
	out = snakeSeparators.ReplaceAllString(out, "_")

	return strings.ToUpper(out)
}

// ToKebabCase converts chatCopy or chat_copy to chat-copy.
func ToKebabCase(s string) string {
	out := lowerUpperBoundary.ReplaceAllString(s, "${1}-${2}")
	out = kebabSeparators.ReplaceAllString(out, "-")

	return strings.ToLower(out)
}

// EscapeRegExp escapes regular expression metacharacters so s matches literally.
func EscapeRegExp(s string) string {
	return regexp.QuoteMeta(s)
}
