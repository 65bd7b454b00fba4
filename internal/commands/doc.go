package commands

import (
	"fmt"
	"os"

	"forj/internal/scaffold"

	"github.com/spf13/cobra"
)

var docCmd = &cobra.Command{
	Use:   "doc <project-id> <doc-type> <content-file>",
	Short: "Update a project document",
	Long: `Replace one of a project's template documents (requirements, project_plan,
architecture) with the content of a file, and record the update in the
project's activity history.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, docType, contentFile := args[0], args[1], args[2]
		team, _ := cmd.Flags().GetString("team")

		content, err := os.ReadFile(contentFile)
		if err != nil {
			fmt.Println("error reading content file:", err)
			return nil
		}

		reg, err := openRegistry()
		if err != nil {
			fmt.Println("error opening registry:", err)
			return nil
		}

		project, err := reg.Get(id)
		if err != nil {
			fmt.Println("error loading project:", err)
			return nil
		}

		sc := scaffold.New(basePath())
		if err := sc.UpdateDocument(project.Path, docType, string(content)); err != nil {
			fmt.Println("error updating document:", err)
			return nil
		}

		details := fmt.Sprintf("Document %s updated", docType)
		if err := reg.AddActivity(id, "doc_updated", team, details); err != nil {
			fmt.Println("error recording activity:", err)
			return nil
		}

		fmt.Printf("Updated %s on %s\n", docType, id)
		return nil
	},
}

func init() {
	docCmd.Flags().StringP("team", "t", "", "team that produced the content")
	rootCmd.AddCommand(docCmd)
}
