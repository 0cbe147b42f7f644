package domain

import "errors"

// Sentinel errors returned by the copy workflow. They are wrapped with context, so
// callers should match them with errors.Is.
var (
	ErrScreensetNotFound  = errors.New("screenset not found")
	ErrTargetExists       = errors.New("target screenset already exists")
	ErrIDsFileNotFound    = errors.New("ids file not found")
	ErrInvalidScreensetID = errors.New("invalid screenset id")
	ErrInvalidCategory    = errors.New("invalid screenset category")
)
