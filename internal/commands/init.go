package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"forj/internal/config"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a projects base path",
	Long: `Initialize a projects base path and record it in the global config.
With no argument the current directory is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base := "."
		if len(args) == 1 {
			base = args[0]
		}

		abs, err := filepath.Abs(base)
		if err != nil {
			fmt.Println("error resolving base path:", err)
			return nil
		}

		if err := os.MkdirAll(abs, 0755); err != nil {
			fmt.Println("error creating base path:", err)
			return nil
		}

		globalConfig.BasePath = abs

		configPath, err := config.Path()
		if err != nil {
			fmt.Println("error locating config file:", err)
			return nil
		}
		if err := globalConfig.Save(configPath); err != nil {
			fmt.Println("error saving config:", err)
			return nil
		}

		fmt.Println("Initialized forj projects base path at", abs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
