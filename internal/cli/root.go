// Package cli defines the filecraft command line.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hailam/filecraft/internal/application"
	"github.com/hailam/filecraft/internal/ports"
)

// Runner executes a validated generation request.
type Runner interface {
	Run(req application.GenerationRequest) (application.RunCounters, error)
}

// NewRootCmd builds the filecraft command. Input problems are reported on
// stdout and end the command without an error; only generation failures
// are returned.
func NewRootCmd(runner Runner, parser ports.SizeParser) *cobra.Command {
	return &cobra.Command{
		Use:   "filecraft <folder_count> <disk_size_bytes> <root_folder_name>",
		Short: "Fills a folder with generated subfolders and text files up to a disk size.",
		Long: `filecraft creates <folder_count> folders under <root_folder_name>, each holding
randomly named text files of 2KB to 16KB, until roughly <disk_size_bytes> have been
written. Sizes may be plain byte counts or use K, M or G suffixes.`,
		Example:      "  filecraft 100 204800 data_repo",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return cmd.Usage()
			}

			numFolders, err := strconv.Atoi(args[0])
			if err != nil || numFolders <= 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Invalid number of folders")
				return nil
			}
			diskSize, err := parser.Parse(args[1])
			if err != nil || diskSize < 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Invalid disk size")
				return nil
			}

			_, err = runner.Run(application.GenerationRequest{
				NumFolders: numFolders,
				DiskSize:   diskSize,
				RootFolder: args[2],
			})
			return err
		},
	}
}
