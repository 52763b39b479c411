package ports

// FileGenerator is the port for anything that can produce a file.
type FileGenerator interface {
	// Generate writes a file at outPath of approximately sizeBytes, replacing
	// any existing content. The result is not guaranteed to match sizeBytes.
	Generate(outPath string, sizeBytes int64) error
}
