package application

const (
	// MinFileSize and MaxFileSize bound the random target size of each file.
	MinFileSize = 2048
	MaxFileSize = 16384
)

// FolderPlan is the per-folder budget derived from a request.
type FolderPlan struct {
	AvgFolderSize  int64
	FilesPerFolder int64
	// Clamped is set when the file-count divisor floored to zero and was
	// clamped to one. FilesPerFolder then equals AvgFolderSize and the
	// per-folder byte budget is what ends each folder.
	Clamped bool
}

// Plan splits diskSize evenly over numFolders and derives how many files a
// folder should hold from the [MinFileSize, MaxFileSize] band.
// Every step uses integer division.
func Plan(numFolders int, diskSize int64) (FolderPlan, error) {
	if numFolders <= 0 {
		return FolderPlan{}, ErrInvalidFolderCount
	}
	if diskSize < 0 {
		return FolderPlan{}, ErrInvalidDiskSize
	}

	avgFolderSize := diskSize / int64(numFolders)
	maxFileSize := avgFolderSize / MaxFileSize
	minFileSize := avgFolderSize / MinFileSize

	plan := FolderPlan{AvgFolderSize: avgFolderSize}
	divisor := (maxFileSize + minFileSize) / 2
	if divisor == 0 {
		divisor = 1
		plan.Clamped = true
	}
	plan.FilesPerFolder = avgFolderSize / divisor
	return plan, nil
}
