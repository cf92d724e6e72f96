package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/common"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

func init() {
	cobra.OnInitialize(func() {
		logger.GetLogger().ConfigureFromEnv()
	})
}

// ExecuteCLI runs the command line with the ldflags-provided build info and
// exits non-zero on any error, including a listener that fails to bind.
func ExecuteCLI(build, commit, date string) {
	versionInfo := common.GetVersionInfo(build, commit, date)

	if err := NewRootCommand(versionInfo).ExecuteContext(context.Background()); err != nil {
		logger.Error("webapp exited with error", "error", err)
		os.Exit(1)
	}
}
