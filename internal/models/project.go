package models

import (
	"time"
)

// descriptionPreviewLen bounds the description shown in listings.
const descriptionPreviewLen = 100

// Activity is one immutable audit-log entry attached to a project
type Activity struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Team      string    `json:"team,omitempty"`
	Details   string    `json:"details"`
}

// Project represents a tracked delivery project
type Project struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Kind        Kind       `json:"kind"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Path        string     `json:"path"`
	Teams       []string   `json:"teams_involved"`
	Activities  []Activity `json:"activities"`
	GitHubURL   string     `json:"github_url,omitempty"`
}

// Clone returns a deep copy so callers cannot mutate registry state
func (p *Project) Clone() *Project {
	cp := *p
	cp.Teams = append([]string(nil), p.Teams...)
	cp.Activities = append([]Activity(nil), p.Activities...)
	return &cp
}

// HasTeam reports whether the team is already recorded on the project
func (p *Project) HasTeam(team string) bool {
	for _, t := range p.Teams {
		if t == team {
			return true
		}
	}
	return false
}

// Summarize produces the listing row for the project
func (p *Project) Summarize() ProjectSummary {
	return ProjectSummary{
		ID:          p.ID,
		Name:        p.Name,
		Description: previewDescription(p.Description),
		Kind:        p.Kind,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Teams:       append([]string(nil), p.Teams...),
		GitHubURL:   p.GitHubURL,
	}
}

// ProjectSummary is the reduced view returned by listings
type ProjectSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Kind        Kind      `json:"kind"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Teams       []string  `json:"teams_involved"`
	GitHubURL   string    `json:"github_url,omitempty"`
}

// Summary holds registry-wide counts
type Summary struct {
	Total     int            `json:"total"`
	ByStatus  map[Status]int `json:"by_status"`
	Active    int            `json:"active"`
	Completed int            `json:"completed"`
}

// Details combines the full record with a live file listing of its tree
type Details struct {
	Project
	Files      []FileInfo `json:"files"`
	FilesCount int        `json:"files_count"`
}

func previewDescription(desc string) string {
	runes := []rune(desc)
	if len(runes) <= descriptionPreviewLen {
		return desc
	}
	return string(runes[:descriptionPreviewLen]) + "..."
}
