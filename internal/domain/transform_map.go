package domain

import (
	"strings"

	"github.com/beyond-event-horizon/HAI3-sub001/internal/domain/naming"
	m "github.com/beyond-event-horizon/HAI3-sub001/internal/model"
)

const screenIDSuffix = "_SCREEN_ID"

// DeriveCopySuffix returns the part of target that extends source ("chat" -> "chatCopy"
// gives "Copy"). When target does not start with source the PascalCase target is used.
func DeriveCopySuffix(source, target m.ScreensetID) string {
	if strings.HasPrefix(string(target), string(source)) {
		return string(target)[len(source):]
	}

	return naming.ToPascalCase(string(target))
}

// BuildTransformationMap derives the renamed constant and value for every declared id,
// preserving input order.
func BuildTransformationMap(source, target m.ScreensetID, ids []m.IDConstant) []m.IDTransformation {
	sourceScreaming := naming.ToScreamingSnake(string(source))
	targetScreaming := naming.ToScreamingSnake(string(target))
	suffix := DeriveCopySuffix(source, target)

	transformations := make([]m.IDTransformation, 0, len(ids))

	for _, id := range ids {
		transformations = append(transformations, m.IDTransformation{
			OriginalConstName: id.Name,
			NewConstName:      renameConstant(id.Name, sourceScreaming, targetScreaming),
			OriginalValue:     id.Value,
			NewValue:          transformValue(id, source, target, suffix),
		})
	}

	return transformations
}

func renameConstant(name, sourceScreaming, targetScreaming string) string {
	if sourceScreaming == "" || len(name) < len(sourceScreaming) {
		return name
	}

	if !strings.EqualFold(name[:len(sourceScreaming)], sourceScreaming) {
		return name
	}

	return targetScreaming + name[len(sourceScreaming):]
}

func transformValue(id m.IDConstant, source, target m.ScreensetID, suffix string) string {
	switch {
	case id.Value == string(source):
		return string(target)
	case source != "" && strings.HasPrefix(id.Value, string(source)):
		return string(target) + id.Value[len(source):]
	case strings.HasSuffix(id.Name, screenIDSuffix):
		// Screen ids do not embed the screenset id but routes must stay unique.
		return id.Value + suffix
	default:
		return id.Value
	}
}
