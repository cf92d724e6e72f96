package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/adapters/out/envlookup"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/common"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/server"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/pkg/logger"
)

func newServeCommand(opts *rootOptions, versionInfo common.VersionInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the status page server",
		Long:  `Start the HTTP server. It runs until it receives SIGINT or SIGTERM.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts, versionInfo)
		},
	}
}

func runServe(cmd *cobra.Command, opts *rootOptions, versionInfo common.VersionInfo) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	runEnv := cfg.Build.RunEnv
	cfg.Build = versionInfo.BuildConfig()
	cfg.Build.RunEnv = runEnv

	log := logger.GetLogger()
	log.SetLogLevel(cfg.General.LogLevel)
	if cfg.IsDevEnvironment() {
		log.SetLogLevel("debug")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := server.NewServerApp(cfg, envlookup.NewProcess(), log)
	return a.Run(ctx)
}
