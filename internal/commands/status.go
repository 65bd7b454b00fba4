package commands

import (
	"fmt"

	"forj/internal/models"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status <project-id> <new-status>",
	Short: "Update a project's status",
	Long: `Move a project to a new lifecycle status. The change is recorded in the
project's activity history with the old and new values.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		details, _ := cmd.Flags().GetString("details")

		newStatus, err := models.ParseStatus(args[1])
		if err != nil {
			fmt.Println("Error:", err)
			return nil
		}

		reg, err := openRegistry()
		if err != nil {
			fmt.Println("error opening registry:", err)
			return nil
		}

		if err := reg.UpdateStatus(id, newStatus, details); err != nil {
			fmt.Println("error updating status:", err)
			return nil
		}

		statusColor(newStatus).Printf("[%s]", newStatus)
		fmt.Printf(" %s\n", id)
		return nil
	},
}

func init() {
	statusCmd.Flags().StringP("details", "m", "", "details recorded with the change")
	rootCmd.AddCommand(statusCmd)
}
