package command

import (
	"strconv"

	"github.com/harness/github-deploy/cmd/cmdutils"
	"github.com/harness/github-deploy/config"
	"github.com/harness/github-deploy/util/common/printer"

	"github.com/spf13/cobra"
)

// NewListCmd creates a new cobra.Command that prints the existing downloads.
func NewListCmd(f *cmdutils.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List existing downloads",
		Long:  "List the files currently on the repository's downloads page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.LoadConfig()
			if err != nil {
				return err
			}
			deployer, err := f.Deployer(cfg)
			if err != nil {
				return err
			}

			existing, err := deployer.List(cmd.Context(), f.Options(cfg))
			if err != nil {
				return err
			}

			assets := existing.Assets()
			if config.Global.Format == "json" {
				return printer.PrintJson(cmd.OutOrStdout(), assets)
			}

			rows := make([][]string, 0, len(assets))
			for _, a := range assets {
				rows = append(rows, []string{strconv.FormatInt(a.ID, 10), a.FileName, a.Name, a.URL})
			}
			return printer.PrintTable(cmd.OutOrStdout(), []string{"ID", "File", "Name", "URL"}, rows)
		},
	}
	return cmd
}
