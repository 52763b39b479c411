package application

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/hailam/filecraft/internal/ports"
)

// GenerationRequest is what a run is asked to produce.
type GenerationRequest struct {
	NumFolders int
	DiskSize   int64
	RootFolder string
}

// RunCounters accumulate a run's progress. They are owned by a single Run call.
type RunCounters struct {
	FilesCount         uint64
	BytesWritten       int64
	CompleteFolderSize int64
	FoldersCreated     int
}

// FileSpec describes one file about to be written.
type FileSpec struct {
	Path       string
	TargetSize int64
}

// GenerationService fills a root folder with generated folders and files
// until the requested disk size is approximately consumed.
type GenerationService struct {
	generator ports.FileGenerator
	text      ports.TextGenerator
	fs        ports.Filesystem
	reporter  ports.ProgressReporter
	logger    *slog.Logger
	rng       *rand.Rand
}

// NewGenerationService wires the driver to its collaborators. A nil logger
// discards log output and a nil rng is seeded randomly.
func NewGenerationService(
	generator ports.FileGenerator,
	text ports.TextGenerator,
	fs ports.Filesystem,
	reporter ports.ProgressReporter,
	logger *slog.Logger,
	rng *rand.Rand,
) *GenerationService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &GenerationService{
		generator: generator,
		text:      text,
		fs:        fs,
		reporter:  reporter,
		logger:    logger,
		rng:       rng,
	}
}

// Run plans the request and generates folders and files under
// <working dir>/<RootFolder>. The first filesystem failure stops the run;
// the returned counters always reflect what was written before that.
func (s *GenerationService) Run(req GenerationRequest) (RunCounters, error) {
	var counters RunCounters
	log := s.logger.With("run_id", uuid.NewString())

	plan, err := Plan(req.NumFolders, req.DiskSize)
	if err != nil {
		return counters, err
	}
	log.Info("planned run",
		"folders", req.NumFolders,
		"disk_size", req.DiskSize,
		"avg_folder_size", plan.AvgFolderSize,
		"files_per_folder", plan.FilesPerFolder)
	if plan.Clamped {
		log.Warn("average folder size is below the file size band, file count limited by folder budget",
			"avg_folder_size", plan.AvgFolderSize)
	}

	wd, err := s.fs.WorkingDir()
	if err != nil {
		log.Error("cannot resolve working directory", "error", err)
		return counters, &GenerationError{Kind: WorkingDirectoryUnresolvable, Err: err}
	}
	outputDir := filepath.Join(wd, req.RootFolder)
	s.reporter.Start(outputDir)
	defer func() {
		s.reporter.Finish(progressOf(&counters, req.DiskSize))
	}()

	usedNames := make(map[string]int)
	for range req.NumFolders {
		// The previous folder may overshoot; only further folders are skipped.
		if counters.CompleteFolderSize > req.DiskSize {
			log.Debug("disk size budget exceeded, stopping",
				"complete_folder_size", counters.CompleteFolderSize)
			break
		}

		folderPath := filepath.Join(outputDir, uniqueName(usedNames, s.text.FolderName()))
		if err := s.fs.MkdirAll(folderPath); err != nil {
			log.Error("failed to create folder", "path", folderPath, "error", err)
			return counters, &GenerationError{Kind: DirectoryCreateFailed, Path: folderPath, Err: err}
		}
		counters.FoldersCreated++
		log.Debug("created folder", "path", folderPath)

		var currentFolderSize int64
		for fileIndex := range plan.FilesPerFolder {
			if currentFolderSize >= plan.AvgFolderSize {
				break
			}
			spec := FileSpec{
				Path:       filepath.Join(folderPath, fmt.Sprintf("%d-%s", fileIndex, s.text.FileName())),
				TargetSize: s.randomFileSize(),
			}
			size, err := s.createFile(spec, &counters, req.DiskSize)
			if err != nil {
				log.Error("failed to create file", "path", spec.Path, "error", err)
				counters.CompleteFolderSize += currentFolderSize
				return counters, err
			}
			currentFolderSize += size
		}
		counters.CompleteFolderSize += currentFolderSize
	}

	log.Info("run complete",
		"folders", counters.FoldersCreated,
		"files", counters.FilesCount,
		"bytes_written", counters.BytesWritten)
	return counters, nil
}

// createFile writes one file, reads back its real size and records it.
func (s *GenerationService) createFile(spec FileSpec, counters *RunCounters, diskSize int64) (int64, error) {
	if err := s.generator.Generate(spec.Path, spec.TargetSize); err != nil {
		return 0, &GenerationError{Kind: FileWriteFailed, Path: spec.Path, Err: err}
	}
	size, err := s.fs.Size(spec.Path)
	if err != nil {
		return 0, &GenerationError{Kind: MetadataReadFailed, Path: spec.Path, Err: err}
	}

	counters.FilesCount++
	counters.BytesWritten += size
	s.reporter.Update(progressOf(counters, diskSize))
	return size, nil
}

// randomFileSize draws uniformly from [MinFileSize, MaxFileSize].
func (s *GenerationService) randomFileSize() int64 {
	return MinFileSize + s.rng.Int64N(MaxFileSize-MinFileSize+1)
}

// uniqueName returns name, or name_<n> when name was already handed out.
func uniqueName(used map[string]int, name string) string {
	n := used[name]
	used[name] = n + 1
	if n == 0 {
		return name
	}
	candidate := fmt.Sprintf("%s_%d", name, n)
	for used[candidate] > 0 {
		n++
		candidate = fmt.Sprintf("%s_%d", name, n)
	}
	used[candidate] = 1
	used[name] = n + 1
	return candidate
}

func progressOf(c *RunCounters, diskSize int64) ports.Progress {
	return ports.Progress{
		FilesCount:     c.FilesCount,
		FoldersCreated: c.FoldersCreated,
		DiskSize:       diskSize,
		BytesWritten:   c.BytesWritten,
	}
}
