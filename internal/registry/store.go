// Package registry tracks delivery projects: identity, status transitions,
// activity history, and persistence of the index document on disk.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"forj/internal/models"
	"forj/internal/util"
)

// IndexFileName is the index document kept under the registry base path.
const IndexFileName = "projects_index.json"

// Store holds the in-memory project mapping and persists it as a single
// JSON document, written atomically.
type Store struct {
	BasePath string

	projects map[string]*models.Project
}

// NewStore creates an empty store rooted at basePath
func NewStore(basePath string) *Store {
	return &Store{
		BasePath: basePath,
		projects: make(map[string]*models.Project),
	}
}

// IndexPath returns the path of the index document
func (s *Store) IndexPath() string {
	return filepath.Join(s.BasePath, IndexFileName)
}

// Load reads the index document into memory. A missing file yields an empty
// mapping; an unparseable one fails with models.ErrCorruptIndex. Re-running
// Load on an unchanged file produces the same mapping.
func (s *Store) Load() error {
	s.projects = make(map[string]*models.Project)

	data, err := os.ReadFile(s.IndexPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: reading %s: %w", models.ErrCorruptIndex, IndexFileName, err)
	}

	var index map[string]*models.Project
	if err := json.Unmarshal(data, &index); err != nil {
		return fmt.Errorf("%w: invalid json in %s: %w", models.ErrCorruptIndex, IndexFileName, err)
	}

	for id, p := range index {
		if p == nil || p.ID == "" {
			return fmt.Errorf("%w: entry %q has no project id", models.ErrCorruptIndex, id)
		}
		s.projects[id] = p
	}

	return nil
}

// Reconcile merges projects discovered on disk into the index. Disk is only
// a source of missing entries: existing index entries are never overwritten.
// Returns the number of entries added.
func (s *Store) Reconcile(discovered []models.ProjectState) int {
	added := 0
	for _, state := range discovered {
		if _, exists := s.projects[state.ID]; exists {
			continue
		}
		s.projects[state.ID] = &models.Project{
			ID:          state.ID,
			Name:        state.Name,
			Description: state.Request,
			Kind:        state.Kind,
			Status:      state.Status,
			CreatedAt:   state.CreatedAt,
			UpdatedAt:   state.CreatedAt,
			Path:        state.Path,
			Teams:       []string{},
			Activities:  []models.Activity{},
		}
		added++
	}
	return added
}

// Save writes the full mapping atomically, overwriting the index document
func (s *Store) Save() error {
	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("creating registry base path: %w", err)
	}

	data, err := json.MarshalIndent(s.projects, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", IndexFileName, err)
	}
	data = append(data, '\n')

	if err := util.WriteFileAtomic(s.IndexPath(), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", IndexFileName, err)
	}
	return nil
}

// Get returns the project with the given id, if present
func (s *Store) Get(id string) (*models.Project, bool) {
	p, ok := s.projects[id]
	return p, ok
}

// Put inserts or replaces a project record
func (s *Store) Put(p *models.Project) {
	s.projects[p.ID] = p
}

// All returns every project record in the mapping
func (s *Store) All() []*models.Project {
	projects := make([]*models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		projects = append(projects, p)
	}
	return projects
}

// Len returns the number of indexed projects
func (s *Store) Len() int {
	return len(s.projects)
}
