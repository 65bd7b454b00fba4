package commands

import (
	"fmt"

	"forj/internal/models"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show registry-wide project counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			fmt.Println("error opening registry:", err)
			return nil
		}

		summary := reg.Summary()

		fmt.Printf("Total:     %d\n", summary.Total)
		fmt.Printf("Active:    %d\n", summary.Active)
		fmt.Printf("Completed: %d\n", summary.Completed)
		fmt.Println()
		for _, status := range models.AllStatuses {
			count := summary.ByStatus[status]
			if count == 0 {
				fmt.Printf("  %-12s %d\n", status, count)
				continue
			}
			statusColor(status).Printf("  %-12s", status)
			fmt.Printf(" %d\n", count)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
