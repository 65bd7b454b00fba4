package ui

import (
	"fmt"

	"forj/internal/models"
	"forj/internal/registry"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model represents the UI model
type Model struct {
	Viewport      viewport.Model
	Spinner       spinner.Model
	IsLoading     bool
	StatusMessage string
	ErrorMessage  string
	Registry      *registry.Registry
	BasePath      string
	Projects      []models.ProjectSummary
	Width         int
	Height        int
	Ready         bool
}

// NewModel creates a new UI model
func NewModel(reg *registry.Registry, basePath string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		Spinner:       s,
		IsLoading:     true,
		StatusMessage: "Loading projects...",
		Registry:      reg,
		BasePath:      basePath,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Spinner.Tick, loadProjects(m.Registry))
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.IsLoading = true
			m.StatusMessage = "Refreshing projects..."
			return m, loadProjects(m.Registry)
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		if !m.Ready {
			// First time initializing
			m.Viewport = viewport.New(msg.Width, msg.Height-6)
			m.Viewport.YPosition = 3
			m.Ready = true
			m.Viewport.SetContent(renderProjects(m.Projects))
		} else {
			m.Viewport.Width = msg.Width
			m.Viewport.Height = msg.Height - 6
		}

		return m, nil

	case spinner.TickMsg:
		var spinnerCmd tea.Cmd
		m.Spinner, spinnerCmd = m.Spinner.Update(msg)
		cmds = append(cmds, spinnerCmd)

	case projectsLoadedMsg:
		m.IsLoading = false
		m.StatusMessage = fmt.Sprintf("Loaded %d projects", len(msg))
		m.Projects = msg
		if m.Ready {
			m.Viewport.SetContent(renderProjects(msg))
		}
		return m, nil

	case errorMsg:
		m.IsLoading = false
		m.ErrorMessage = string(msg)
		m.StatusMessage = "Error"
		return m, nil
	}

	if m.Ready {
		var viewportCmd tea.Cmd
		m.Viewport, viewportCmd = m.Viewport.Update(msg)
		cmds = append(cmds, viewportCmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m Model) View() string {
	if !m.Ready {
		return "Initializing..."
	}

	var status string
	if m.IsLoading {
		status = fmt.Sprintf("%s %s", m.Spinner.View(), m.StatusMessage)
	} else {
		status = m.StatusMessage
	}

	statusBar := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1).
		Render(status)

	titleBar := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		Padding(0, 1).
		Render(fmt.Sprintf("forj - %s", m.BasePath))

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1).
		Render("Press q to quit, r to refresh")

	errorView := ""
	if m.ErrorMessage != "" {
		errorView = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			Padding(0, 1).
			Render(m.ErrorMessage)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		statusBar,
		m.Viewport.View(),
		errorView,
		help,
	)
}

// Messages
type projectsLoadedMsg []models.ProjectSummary
type errorMsg string

// Commands
func loadProjects(reg *registry.Registry) tea.Cmd {
	return func() tea.Msg {
		return projectsLoadedMsg(reg.List(nil))
	}
}
