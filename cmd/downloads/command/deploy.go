package command

import (
	"fmt"
	"strings"

	"github.com/harness/github-deploy/cmd/cmdutils"
	"github.com/harness/github-deploy/config"
	"github.com/harness/github-deploy/internal/style"
	"github.com/harness/github-deploy/module/deploy"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

// NewDeployCmd creates a new cobra.Command that uploads the project's
// artifacts to the repository downloads page.
// command example: github-deploy downloads deploy target/widget-1.0.jar
func NewDeployCmd(f *cmdutils.Factory) *cobra.Command {
	var (
		artifactType string
		parser       string
		attached     []string
		ignoreTypes  []string
		replace      bool
		skip         bool
	)
	cmd := &cobra.Command{
		Use:   "deploy [artifact_path]",
		Short: "Deploy artifacts to the downloads page",
		Long: heredoc.Doc(`
			Upload the packaged artifact, and any attached artifacts, to the
			repository's downloads page.

			The target repository is taken from the project file, or inferred from
			an SCM URL of the form scm:git:git@github.com:OWNER/NAME.git, or from the
			origin remote of the enclosing git repository.

			Existing downloads with the same file name make the deployment fail
			unless --replace-existing is given, in which case they are deleted first.
		`),
		Example: heredoc.Doc(`
			# Deploy the artifact configured in .github-deploy.yaml
			github-deploy downloads deploy

			# Deploy a jar with its sources, replacing earlier uploads
			github-deploy downloads deploy target/widget-1.0.jar \
			  --attach java-source=target/widget-1.0-sources.jar --replace-existing
		`),
		Args: cobra.MaximumNArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			config.Global.Deploy.ReplaceExisting = replace
			config.Global.Deploy.Skip = skip
			config.Global.Deploy.Parser = parser
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.LoadConfig()
			if err != nil {
				return err
			}
			opts := f.Options(cfg)

			if len(args) == 1 {
				opts.Artifact = deploy.Artifact{Path: args[0], Type: artifactType}
			} else if artifactType != "" {
				opts.Artifact.Type = artifactType
			}
			for _, a := range attached {
				opts.Attached = append(opts.Attached, parseAttached(a))
			}
			opts.IgnoreTypes = append(opts.IgnoreTypes, ignoreTypes...)

			deployer, err := f.Deployer(cfg)
			if err != nil {
				return err
			}

			result, err := deployer.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if result.Skipped {
				return nil
			}

			out := cmd.OutOrStdout()
			for _, name := range result.Deleted {
				fmt.Fprintf(out, "%s Deleted existing download %s\n", style.WarningIcon(), name)
			}
			for _, name := range result.Deployed {
				fmt.Fprintf(out, "%s Deployed %s\n", style.SuccessIcon(), name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&artifactType, "type", "", "type of the primary artifact, matched against --ignore-type")
	cmd.Flags().StringArrayVar(&attached, "attach", nil,
		"attached artifact as [type=]path; may be repeated")
	cmd.Flags().StringSliceVar(&ignoreTypes, "ignore-type", nil, "artifact type patterns to skip")
	cmd.Flags().BoolVar(&replace, "replace-existing", false, "delete existing downloads with the same file name")
	cmd.Flags().BoolVar(&skip, "skip", false, "skip deployment")
	cmd.Flags().StringVar(&parser, "parser", "", "downloads page parser: regex or html")

	return cmd
}

func parseAttached(value string) deploy.Artifact {
	if typ, path, ok := strings.Cut(value, "="); ok {
		return deploy.Artifact{Path: path, Type: typ}
	}
	return deploy.Artifact{Path: value}
}
