package commands

import (
	"fmt"
	"time"

	"forj/internal/util"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <project-id>",
	Short: "Show full project details",
	Long:  "Show a project's full record, its activity history, and a live listing of its files.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			fmt.Println("error opening registry:", err)
			return nil
		}

		details, err := reg.Details(args[0])
		if err != nil {
			fmt.Println("error loading project:", err)
			return nil
		}

		statusColor(details.Status).Printf("[%s]", details.Status)
		fmt.Printf(" %s\n", details.Name)
		fmt.Printf("ID:          %s\n", details.ID)
		fmt.Printf("Kind:        %s\n", details.Kind)
		fmt.Printf("Path:        %s\n", details.Path)
		fmt.Printf("Created:     %s\n", details.CreatedAt.Format(time.RFC3339))
		fmt.Printf("Updated:     %s\n", details.UpdatedAt.Format(time.RFC3339))
		if details.Description != "" {
			fmt.Printf("Description: %s\n", details.Description)
		}
		if len(details.Teams) > 0 {
			fmt.Printf("Teams:       %v\n", details.Teams)
		}
		if details.GitHubURL != "" {
			fmt.Printf("GitHub:      %s\n", details.GitHubURL)
		}

		if len(details.Activities) > 0 {
			fmt.Println()
			fmt.Println("Activity:")
			for _, act := range details.Activities {
				line := fmt.Sprintf("  %s  %-14s", act.Timestamp.Format("2006-01-02 15:04:05"), act.Action)
				if act.Team != "" {
					line += fmt.Sprintf(" [%s]", act.Team)
				}
				if act.Details != "" {
					line += " " + act.Details
				}
				fmt.Println(line)
			}
		}

		fmt.Println()
		fmt.Printf("Files (%d):\n", details.FilesCount)
		for _, f := range details.Files {
			fmt.Printf("  %-10s %s\n", util.FormatSize(f.Size), f.Path)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
