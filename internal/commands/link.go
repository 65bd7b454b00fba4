package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var linkCmd = &cobra.Command{
	Use:   "link <project-id> <github-url>",
	Short: "Link a project to a GitHub repository",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, url := args[0], args[1]

		reg, err := openRegistry()
		if err != nil {
			fmt.Println("error opening registry:", err)
			return nil
		}

		if err := reg.LinkGitHub(id, url); err != nil {
			fmt.Println("error linking project:", err)
			return nil
		}

		fmt.Printf("Linked %s to %s\n", id, url)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(linkCmd)
}
