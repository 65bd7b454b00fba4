package commands

import (
	"fmt"

	"forj/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse projects interactively",
	Long:  "Open an interactive view of all registered projects.",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			fmt.Println("error opening registry:", err)
			return nil
		}

		program := tea.NewProgram(ui.NewModel(reg, basePath()), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			fmt.Println("error running UI:", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
