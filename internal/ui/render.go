package ui

import (
	"fmt"

	"forj/internal/models"

	"github.com/charmbracelet/lipgloss"
)

var statusColors = map[models.Status]lipgloss.Color{
	models.StatusInitiated:  lipgloss.Color("14"),
	models.StatusAnalyzing:  lipgloss.Color("11"),
	models.StatusPlanning:   lipgloss.Color("11"),
	models.StatusGenerating: lipgloss.Color("11"),
	models.StatusInProgress: lipgloss.Color("11"),
	models.StatusReview:     lipgloss.Color("13"),
	models.StatusCompleted:  lipgloss.Color("10"),
	models.StatusDelivered:  lipgloss.Color("10"),
	models.StatusCancelled:  lipgloss.Color("9"),
}

func renderProjects(projects []models.ProjectSummary) string {
	if len(projects) == 0 {
		return "No projects found. Use 'forj create' to scaffold one."
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		Render(fmt.Sprintf("Projects (%d):\n", len(projects)))

	var sections []string
	sections = append(sections, header)

	for _, p := range projects {
		statusStyle := lipgloss.NewStyle().Foreground(statusColors[p.Status])

		line := fmt.Sprintf("  %s %s  %s (%s)\n",
			statusStyle.Render(fmt.Sprintf("[%s]", p.Status)),
			p.ID,
			p.Name,
			p.Kind,
		)
		if p.Description != "" {
			line += lipgloss.NewStyle().
				Foreground(lipgloss.Color("8")).
				Render(fmt.Sprintf("      %s", p.Description)) + "\n"
		}
		sections = append(sections, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
