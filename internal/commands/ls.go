package commands

import (
	"fmt"

	"forj/internal/models"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List projects",
	Long:  "List registered projects, most recently created first, optionally filtered by status.",
	RunE: func(cmd *cobra.Command, args []string) error {
		statusStr, _ := cmd.Flags().GetString("status")

		var filter *models.Status
		if statusStr != "" {
			status, err := models.ParseStatus(statusStr)
			if err != nil {
				fmt.Println("Error:", err)
				return nil
			}
			filter = &status
		}

		reg, err := openRegistry()
		if err != nil {
			fmt.Println("error opening registry:", err)
			return nil
		}

		summaries := reg.List(filter)
		if len(summaries) == 0 {
			fmt.Println("No projects found")
			return nil
		}

		for _, s := range summaries {
			statusColor(s.Status).Printf("[%s]", s.Status)
			fmt.Printf(" %s  %s (%s)\n", s.ID, s.Name, s.Kind)
			if s.Description != "" {
				fmt.Printf("\t%s\n", s.Description)
			}
			if len(s.Teams) > 0 {
				fmt.Printf("\tteams: %v\n", s.Teams)
			}
			if s.GitHubURL != "" {
				fmt.Printf("\tgithub: %s\n", s.GitHubURL)
			}
		}

		return nil
	},
}

// statusColor maps a lifecycle status to the color used in listings
func statusColor(status models.Status) *color.Color {
	switch status {
	case models.StatusCompleted, models.StatusDelivered:
		return color.New(color.FgGreen)
	case models.StatusCancelled:
		return color.New(color.FgRed)
	case models.StatusInitiated:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgYellow)
	}
}

func init() {
	lsCmd.Flags().StringP("status", "s", "", "filter by status")
	rootCmd.AddCommand(lsCmd)
}
