// Package model defines the data structures for screenset copy operations.
package model

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// File represents a file inside a screenset tree.
type File struct {
	// FullPath is the absolute (or root-joined) path on disk.
	FullPath Path `yaml:"full_path"`
	// ShortPath is the path relative to the screenset directory.
	ShortPath Path `yaml:"short_path"`
}
