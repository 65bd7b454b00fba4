package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var githubCmd = &cobra.Command{
	Use:   "github <project-id>",
	Short: "Prepare a project for GitHub",
	Long:  "Initialize a git repository with an initial commit inside the project tree.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			fmt.Println("error opening registry:", err)
			return nil
		}

		path, err := reg.PrepareForGitHub(args[0])
		if err != nil {
			fmt.Println("error preparing project:", err)
			return nil
		}

		fmt.Println("Project prepared for GitHub at", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(githubCmd)
}
