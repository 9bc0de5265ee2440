package downloads

import (
	"github.com/harness/github-deploy/cmd/cmdutils"
	"github.com/harness/github-deploy/cmd/downloads/command"

	"github.com/spf13/cobra"
)

func GetRootCmd(f *cmdutils.Factory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "downloads",
		Aliases: []string{"dl"},
		Short:   "Manage repository downloads",
		Long:    `Commands to deploy, list and delete files on a repository's downloads page`,
	}
	rootCmd.AddCommand(command.NewDeployCmd(f))
	rootCmd.AddCommand(command.NewListCmd(f))
	rootCmd.AddCommand(command.NewDeleteCmd(f))

	return rootCmd
}
