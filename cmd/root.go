package cmd

import (
	"github.com/spf13/cobra"

	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/adapters/out/envlookup"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/common"
)

type rootOptions struct {
	configFile string
	host       string
	port       int
	renderMode string
}

// NewRootCommand builds the webapp command tree. Running it without a
// subcommand starts the server.
func NewRootCommand(versionInfo common.VersionInfo) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "webapp",
		Short: "Deployment status page server",
		Long: `webapp serves a single HTML page listing the deployment metadata of the
instance it runs on: private IP, hostname, instance ID and type, availability
zone and region, read from the process environment on every request.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts, versionInfo)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default is ./"+common.ConfigFileName+" or $XDG_CONFIG_HOME/webapp/config.yml)")
	flags.StringVar(&opts.host, "host", "", "interface to bind (default 0.0.0.0)")
	flags.IntVar(&opts.port, "port", 0, "port to listen on (default 5000)")
	flags.StringVar(&opts.renderMode, "render-mode", "", "value rendering: verbatim or sanitize")

	rootCmd.AddCommand(newServeCommand(opts, versionInfo))
	rootCmd.AddCommand(newRenderCommand(opts))
	rootCmd.AddCommand(newVersionCommand(versionInfo))

	return rootCmd
}

// loadConfig resolves file, environment and flag settings, flags winning.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*common.Config, error) {
	cfg, err := common.LoadConfig(opts.configFile, envlookup.NewProcess())
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Http.Host = opts.host
	}
	if flags.Changed("port") {
		cfg.Http.Port = opts.port
	}
	if flags.Changed("render-mode") {
		cfg.Render.Mode = opts.renderMode
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
