package commands

import (
	"forj/internal/archive"
	"forj/internal/config"
	"forj/internal/gitops"
	"forj/internal/registry"
	"forj/internal/scaffold"

	"github.com/spf13/cobra"
)

var globalConfig *config.Config

var basePathFlag string

var rootCmd = &cobra.Command{
	Use:   "forj",
	Short: "forj - scaffold and track software-delivery projects",
	Long: `forj scaffolds on-disk project workspaces for software-delivery engagements
and tracks their lifecycle: status transitions, activity history, involved
teams, and GitHub links. All state lives in a JSON index under the projects
base path.`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute(cfg *config.Config) error {
	globalConfig = cfg
	return rootCmd.Execute()
}

// basePath resolves the projects root: --base flag first, then global config
func basePath() string {
	if basePathFlag != "" {
		return basePathFlag
	}
	return globalConfig.BasePath
}

// openRegistry constructs the registry for the resolved base path,
// loading the index and reconciling it against the trees on disk
func openRegistry() (*registry.Registry, error) {
	base := basePath()
	return registry.New(base, scaffold.New(base),
		registry.WithGitPreparer(gitops.New()),
		registry.WithPackager(archive.New()),
	)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&basePathFlag, "base", "", "projects base path (overrides config)")
}
