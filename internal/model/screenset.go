package model

import "regexp"

// ScreensetID is the namespace key of a screenset (e.g. "chat").
type ScreensetID string

var screensetIDPattern = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)

// Valid reports whether the ID is a camelCase identifier starting with a lowercase letter.
func (id ScreensetID) Valid() bool {
	return screensetIDPattern.MatchString(string(id))
}

// String returns the raw identifier.
func (id ScreensetID) String() string {
	return string(id)
}

// Category is the lifecycle bucket a screenset is registered under.
type Category string

const (
	// CategoryDrafts holds work-in-progress screensets.
	CategoryDrafts Category = "drafts"
	// CategoryMockups holds design mockups.
	CategoryMockups Category = "mockups"
	// CategoryProduction holds shipped screensets.
	CategoryProduction Category = "production"
)

// Categories lists every known category in display order.
var Categories = []Category{CategoryDrafts, CategoryMockups, CategoryProduction}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

// IDConstant is one `export const NAME = 'value';` declaration.
type IDConstant struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// IDTransformation is the before/after pair for one declared identifier.
type IDTransformation struct {
	OriginalConstName string `yaml:"original_const_name"`
	NewConstName      string `yaml:"new_const_name"`
	OriginalValue     string `yaml:"original_value"`
	NewValue          string `yaml:"new_value"`
}

// NameChanged reports whether the constant is renamed.
func (t IDTransformation) NameChanged() bool {
	return t.OriginalConstName != t.NewConstName
}

// ValueChanged reports whether the constant value is rewritten.
func (t IDTransformation) ValueChanged() bool {
	return t.OriginalValue != t.NewValue
}
