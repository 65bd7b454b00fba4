package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var activityCmd = &cobra.Command{
	Use:   "activity <project-id> <action>",
	Short: "Record an activity on a project",
	Long: `Append an entry to a project's activity history. When a team is given it
is added to the project's involved teams if not already present.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, action := args[0], args[1]
		team, _ := cmd.Flags().GetString("team")
		details, _ := cmd.Flags().GetString("details")

		reg, err := openRegistry()
		if err != nil {
			fmt.Println("error opening registry:", err)
			return nil
		}

		if err := reg.AddActivity(id, action, team, details); err != nil {
			fmt.Println("error recording activity:", err)
			return nil
		}

		fmt.Printf("Recorded %s on %s\n", action, id)
		return nil
	},
}

func init() {
	activityCmd.Flags().StringP("team", "t", "", "team responsible for the activity")
	activityCmd.Flags().StringP("details", "m", "", "free-text details")
	rootCmd.AddCommand(activityCmd)
}
