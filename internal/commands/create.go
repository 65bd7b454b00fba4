package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"forj/internal/models"

	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new project",
	Long:  "Scaffold a new project workspace and register it with status initiated.",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		description, _ := cmd.Flags().GetString("description")
		kindStr, _ := cmd.Flags().GetString("kind")

		// If name wasn't provided via flag, prompt for it
		if name == "" {
			fmt.Print("Project name: ")
			scanner := bufio.NewScanner(os.Stdin)
			if scanner.Scan() {
				name = strings.TrimSpace(scanner.Text())
			}

			if name == "" {
				fmt.Println("Error: project name is required")
				return nil
			}
		}

		if description == "" {
			fmt.Print("Project description (client request): ")
			scanner := bufio.NewScanner(os.Stdin)
			if scanner.Scan() {
				description = strings.TrimSpace(scanner.Text())
			}
		}

		kind, err := models.ParseKind(kindStr)
		if err != nil {
			fmt.Println("Error:", err)
			fmt.Println("Valid kinds:", kindList())
			return nil
		}

		reg, err := openRegistry()
		if err != nil {
			fmt.Println("error opening registry:", err)
			return nil
		}

		project, err := reg.CreateProject(name, description, kind)
		if err != nil {
			fmt.Println("error creating project:", err)
			return nil
		}

		fmt.Println("Project created successfully!")
		fmt.Printf("ID:     %s\n", project.ID)
		fmt.Printf("Name:   %s\n", project.Name)
		fmt.Printf("Kind:   %s\n", project.Kind)
		fmt.Printf("Status: %s\n", project.Status)
		fmt.Printf("Path:   %s\n", project.Path)

		return nil
	},
}

func kindList() string {
	kinds := make([]string, len(models.AllKinds))
	for i, k := range models.AllKinds {
		kinds[i] = string(k)
	}
	return strings.Join(kinds, ", ")
}

func init() {
	createCmd.Flags().StringP("name", "n", "", "project name")
	createCmd.Flags().StringP("description", "d", "", "project description / client request")
	createCmd.Flags().StringP("kind", "k", "fullstack", "project kind")
	rootCmd.AddCommand(createCmd)
}
