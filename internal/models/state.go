package models

import "time"

// ProjectState is the per-project state document written by the scaffolder
// into the project tree (.forj/project.json). It is the source used to
// rediscover projects that exist on disk but are missing from the index.
type ProjectState struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      Kind      `json:"kind"`
	Status    Status    `json:"status"`
	Request   string    `json:"client_request"`
	CreatedAt time.Time `json:"created_at"`
	Path      string    `json:"path"`
}
