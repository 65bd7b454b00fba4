package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var packageCmd = &cobra.Command{
	Use:   "package <project-id>",
	Short: "Package a project for delivery",
	Long:  "Archive a project tree as zip or tar.gz under the projects base path.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if format == "" {
			format = globalConfig.DefaultArchiveFormat
		}

		reg, err := openRegistry()
		if err != nil {
			fmt.Println("error opening registry:", err)
			return nil
		}

		archivePath, err := reg.Package(args[0], format)
		if err != nil {
			fmt.Println("error packaging project:", err)
			return nil
		}

		fmt.Println("Project packaged at", archivePath)
		return nil
	},
}

func init() {
	packageCmd.Flags().StringP("format", "f", "", "archive format: zip or tar.gz")
	rootCmd.AddCommand(packageCmd)
}
