package domain

import (
	"regexp"

	m "github.com/beyond-event-horizon/HAI3-sub001/internal/model"
)

var idDeclarationPattern = regexp.MustCompile(
	`export\s+const\s+([A-Za-z_$][\w$]*)\s*=\s*(?:'([^'\r\n]*)'|"([^"\r\n]*)")\s*;`,
)

// ExtractIDs returns every `export const NAME = 'value';` declaration in file order.
// Anything that does not match the convention is skipped.
func ExtractIDs(content string) []m.IDConstant {
	ids := make([]m.IDConstant, 0)

	for _, match := range idDeclarationPattern.FindAllStringSubmatchIndex(content, -1) {
		name := content[match[2]:match[3]]

		// Exactly one of the quote groups participated.
		var value string
		if match[4] >= 0 {
			value = content[match[4]:match[5]]
		} else {
			value = content[match[6]:match[7]]
		}

		ids = append(ids, m.IDConstant{Name: name, Value: value})
	}

	return ids
}
