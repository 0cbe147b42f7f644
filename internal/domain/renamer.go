package domain

import (
	"strings"

	"github.com/beyond-event-horizon/HAI3-sub001/internal/domain/naming"
	m "github.com/beyond-event-horizon/HAI3-sub001/internal/model"
)

var fileNameSuffixes = []string{"Screenset", "Screen", "Events", "Slice"}

// RenameName maps a file or directory base name that embeds the source id to the
// target id. Names that match no rule are returned unchanged.
func RenameName(name string, source, target m.ScreensetID) string {
	camelSource := naming.ToCamelCase(string(source))
	camelTarget := naming.ToCamelCase(string(target))
	pascalSource := naming.ToPascalCase(string(source))
	pascalTarget := naming.ToPascalCase(string(target))

	switch name {
	case camelSource:
		return camelTarget
	case pascalSource:
		return pascalTarget
	}

	if camelSource == "" {
		return name
	}

	out := name
	if strings.HasPrefix(out, pascalSource) {
		out = pascalTarget + out[len(pascalSource):]
	}

	if strings.HasPrefix(out, camelSource) {
		out = camelTarget + out[len(camelSource):]
	}

	out = replaceBeforeSuffix(out, pascalSource, pascalTarget)
	out = replaceBeforeSuffix(out, camelSource, camelTarget)

	return out
}

// RenamePath applies RenameName to every element of a slash separated relative path.
func RenamePath(rel string, source, target m.ScreensetID) string {
	parts := strings.Split(rel, "/")
	for i, part := range parts {
		parts[i] = RenameName(part, source, target)
	}

	return strings.Join(parts, "/")
}

func replaceBeforeSuffix(s, needle, replacement string) string {
	accept := func(_, end int) bool {
		return hasAnyPrefix(s[end:], fileNameSuffixes)
	}

	edits := replaceAll(s, needle, replacement, accept)
	if len(edits) == 0 {
		return s
	}

	var b strings.Builder

	last := 0
	for _, e := range edits {
		if e.start < last {
			continue
		}

		b.WriteString(s[last:e.start])
		b.WriteString(e.replacement)
		last = e.end
	}

	b.WriteString(s[last:])

	return b.String()
}
