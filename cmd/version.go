package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	errUtils "github.com/cloudposse/detect-changes/errors"
	"github.com/cloudposse/detect-changes/pkg/version"
)

func newVersionCmd() *cobra.Command {
	var format string

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Display the version of detect-changes",
		Example: "detect-changes version --format json",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()

			switch format {
			case "", "text":
				fmt.Fprintln(cmd.OutOrStdout(), info.String())
			case "json":
				encoded, err := info.JSON()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), encoded)
			default:
				return errUtils.Build(errUtils.ErrInvalidFormat).
					WithContext("format", format).
					WithHint("Supported formats are text and json").
					WithExitCode(errUtils.ExitCodeUsage).
					Err()
			}
			return nil
		},
	}

	versionCmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or json")

	return versionCmd
}
