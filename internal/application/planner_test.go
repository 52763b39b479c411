package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name       string
		numFolders int
		diskSize   int64
		want       FolderPlan
	}{
		{
			// max 0, min 5, divisor 2
			name:       "small budget",
			numFolders: 4,
			diskSize:   40960,
			want:       FolderPlan{AvgFolderSize: 10240, FilesPerFolder: 5120},
		},
		{
			// max 61, min 488, divisor 274
			name:       "two megabyte budget",
			numFolders: 2,
			diskSize:   2_000_000,
			want:       FolderPlan{AvgFolderSize: 1_000_000, FilesPerFolder: 3649},
		},
		{
			name:       "one gigabyte in one folder",
			numFolders: 1,
			diskSize:   1 << 30,
			want:       FolderPlan{AvgFolderSize: 1 << 30, FilesPerFolder: 3640},
		},
		{
			// max 0, min 1, divisor floors to 0
			name:       "divisor clamped",
			numFolders: 4,
			diskSize:   8192,
			want:       FolderPlan{AvgFolderSize: 2048, FilesPerFolder: 2048, Clamped: true},
		},
		{
			name:       "below one file per folder",
			numFolders: 1,
			diskSize:   1000,
			want:       FolderPlan{AvgFolderSize: 1000, FilesPerFolder: 1000, Clamped: true},
		},
		{
			name:       "zero disk size",
			numFolders: 3,
			diskSize:   0,
			want:       FolderPlan{Clamped: true},
		},
		{
			name:       "fewer bytes than folders",
			numFolders: 10,
			diskSize:   5,
			want:       FolderPlan{Clamped: true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Plan(tc.numFolders, tc.diskSize)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPlan_InvalidInput(t *testing.T) {
	_, err := Plan(0, 1024)
	assert.ErrorIs(t, err, ErrInvalidFolderCount)

	_, err = Plan(-3, 1024)
	assert.ErrorIs(t, err, ErrInvalidFolderCount)

	_, err = Plan(2, -1)
	assert.ErrorIs(t, err, ErrInvalidDiskSize)
}

func TestPlan_Deterministic(t *testing.T) {
	for _, in := range []struct {
		folders int
		size    int64
	}{{1, 0}, {2, 2_000_000}, {7, 123_456_789}, {100, 204800}} {
		first, err := Plan(in.folders, in.size)
		require.NoError(t, err)
		second, err := Plan(in.folders, in.size)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, in.size/int64(in.folders), first.AvgFolderSize)
	}
}
