package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/adapters/out/envlookup"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/boundaries/out"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/templating/render"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/usecase/status"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/pkg/logger"
)

func newRenderCommand(opts *rootOptions) *cobra.Command {
	var envFiles []string

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Print the status page to stdout",
		Long: `Render the status page once and print it. By default values come from the
process environment; with --env-file they come only from the given dotenv files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			var env out.EnvLookup = envlookup.NewProcess()
			if len(envFiles) > 0 {
				env, err = envlookup.NewSnapshotFromFiles(envFiles...)
				if err != nil {
					return err
				}
			}

			info := status.NewService(env, logger.GetLogger()).Collect(cmd.Context())
			_, err = io.WriteString(cmd.OutOrStdout(), render.StatusPageHTML(info, cfg.RenderMode()))
			return err
		},
	}

	renderCmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "read variables from dotenv file(s) instead of the environment")
	return renderCmd
}
