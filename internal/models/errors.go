package models

import (
	"errors"
)

// Registry errors
var (
	// ErrProjectNotFound is returned when a project id is unknown to the registry
	ErrProjectNotFound = errors.New("project not found")

	// ErrCorruptIndex is returned when the index document exists but cannot be parsed
	ErrCorruptIndex = errors.New("corrupt projects index")

	// ErrScaffold is returned when the on-disk project tree could not be created
	ErrScaffold = errors.New("project scaffolding failed")
)
