package command

import (
	"fmt"

	"github.com/harness/github-deploy/cmd/cmdutils"
	"github.com/harness/github-deploy/internal/style"

	"github.com/spf13/cobra"
)

// NewDeleteCmd creates a new cobra.Command that deletes one download by file name.
// command example: github-deploy downloads delete widget-1.0.jar
func NewDeleteCmd(f *cmdutils.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <file_name>",
		Short: "Delete an existing download",
		Long:  "Delete the download with the given file name from the repository's downloads page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.LoadConfig()
			if err != nil {
				return err
			}
			deployer, err := f.Deployer(cfg)
			if err != nil {
				return err
			}

			if err := deployer.Delete(cmd.Context(), f.Options(cfg), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted %s\n", style.SuccessIcon(), args[0])
			return nil
		},
	}
	return cmd
}
