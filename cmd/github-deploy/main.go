package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/harness/github-deploy/cmd/cmdutils"
	"github.com/harness/github-deploy/cmd/downloads"
	"github.com/harness/github-deploy/config"
	internalconfig "github.com/harness/github-deploy/internal/config"
	"github.com/harness/github-deploy/internal/style"
	"github.com/harness/github-deploy/internal/terminal"
	"github.com/harness/github-deploy/module/deploy/github"

	"github.com/MakeNowJust/heredoc"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	factory := cmdutils.NewFactory()
	rootCmd := newRootCmd(factory)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorIcon()+" "+style.Error.Render(err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(factory *cmdutils.Factory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "github-deploy",
		Short:         "Deploy build artifacts to GitHub downloads",
		SilenceUsage:  true,
		SilenceErrors: true, //prevent duplicate printing of errors
		Long: heredoc.Doc(`
			github-deploy uploads packaged build artifacts to a repository's
			downloads page, replacing earlier uploads of the same file on request.

			Project settings are read from .github-deploy.yaml in the working
			directory; flags and GITHUB_DEPLOY_* environment variables override them.
		`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			termInfo := terminal.Detect(config.Global.NoColor)
			style.Init(termInfo.ColorEnabled)
			factory.ShowProgress = termInfo.ProgressEnabled

			level := zerolog.InfoLevel
			if config.Global.Verbose {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "15:04:05",
				NoColor:    !termInfo.StderrIsTerminal || config.Global.NoColor,
			})

			return initProfiling()
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return flushProfiling()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&config.Global.ConfigPath, "config", internalconfig.DefaultPath, "Path of the project file")
	flags.StringVar(&config.Global.BaseURL, "base-url", github.DefaultBaseURL, "Base URL of the downloads site")
	flags.StringVar(&config.Global.StorageURL, "storage-url", github.DefaultStorageURL, "URL of the upload storage endpoint")
	flags.StringVar(&config.Global.Login, "login", "", "GitHub login (overrides the project file)")
	flags.StringVar(&config.Global.Token, "token", "", "GitHub API token (overrides the project file)")
	flags.BoolVar(&config.Global.Offline, "offline", false, "Fail instead of contacting the network")
	flags.StringVar(&config.Global.Format, "format", "table", "Format of the result: table or json")
	flags.BoolVarP(&config.Global.Verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&config.Global.NoColor, "no-color", false, "Disable colour output (also respects NO_COLOR env)")
	addProfilingFlags(flags)

	// Environment variables seed the defaults; explicit flags still win.
	applyEnv(rootCmd)

	rootCmd.AddCommand(downloads.GetRootCmd(factory))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

var envFlags = map[string]string{
	"GITHUB_DEPLOY_LOGIN":    "login",
	"GITHUB_DEPLOY_TOKEN":    "token",
	"GITHUB_DEPLOY_BASE_URL": "base-url",
}

func applyEnv(rootCmd *cobra.Command) {
	for env, name := range envFlags {
		val := os.Getenv(env)
		if val == "" {
			continue
		}
		flag := rootCmd.PersistentFlags().Lookup(name)
		if err := flag.Value.Set(val); err != nil {
			log.Warn().Err(err).Str("env", env).Msg("Ignoring environment override")
			continue
		}
		flag.DefValue = val
	}
}

// versionCmd returns the version command
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of github-deploy",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "github-deploy version %s\n", cmdutils.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "Built with %s\n", runtime.Version())
		},
	}
}
