package ports

// Filesystem is the port for the directory and metadata primitives the
// generator relies on. File content itself goes through FileGenerator.
type Filesystem interface {
	// WorkingDir returns the absolute directory output paths are resolved against.
	WorkingDir() (string, error)
	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error
	// Size returns the on-disk byte length of the file at path.
	Size(path string) (int64, error)
}
