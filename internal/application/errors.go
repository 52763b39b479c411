package application

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFolderCount is returned when fewer than one folder is requested.
	ErrInvalidFolderCount = errors.New("folder count must be greater than 0")
	// ErrInvalidDiskSize is returned for a negative disk-size budget.
	ErrInvalidDiskSize = errors.New("disk size must not be negative")
)

// ErrorKind classifies the filesystem failures that abort a run.
type ErrorKind int

const (
	WorkingDirectoryUnresolvable ErrorKind = iota + 1
	DirectoryCreateFailed
	FileWriteFailed
	MetadataReadFailed
)

func (k ErrorKind) String() string {
	switch k {
	case WorkingDirectoryUnresolvable:
		return "working directory unresolvable"
	case DirectoryCreateFailed:
		return "directory create failed"
	case FileWriteFailed:
		return "file write failed"
	case MetadataReadFailed:
		return "metadata read failed"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// GenerationError is the fatal error a run stops on.
type GenerationError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *GenerationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s for %s: %v", e.Kind, e.Path, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a GenerationError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr) && genErr.Kind == kind
}
