package ports

// Progress is a snapshot of a run's counters.
type Progress struct {
	FilesCount     uint64
	FoldersCreated int
	DiskSize       int64
	BytesWritten   int64
}

// ProgressReporter renders run progress. Implementations must not affect
// control flow; they only display.
type ProgressReporter interface {
	// Start announces the resolved output directory before anything is written.
	Start(outputDir string)
	// Update is called after every file is created.
	Update(p Progress)
	// Finish is called once when the run ends, successfully or not.
	Finish(p Progress)
}
