// Package localfs implements ports.Filesystem on the host filesystem.
package localfs

import (
	"fmt"
	"os"

	"github.com/hailam/filecraft/internal/ports"
)

const dirPerm = 0o755

type LocalFS struct{}

func New() ports.Filesystem {
	return &LocalFS{}
}

func (LocalFS) WorkingDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}

func (LocalFS) MkdirAll(path string) error {
	return os.MkdirAll(path, dirPerm)
}

// Size stats path and rejects anything that is not a regular file.
func (LocalFS) Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("%s is not a regular file", path)
	}
	return info.Size(), nil
}
