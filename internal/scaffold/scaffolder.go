package scaffold

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"forj/internal/models"
	"forj/internal/util"
)

// StateDirName is the metadata directory created inside every project tree.
const StateDirName = ".forj"

// StateFileName is the per-project state document inside StateDirName.
const StateFileName = "project.json"

// commonFolders are created for every project regardless of kind.
var commonFolders = []string{
	"docs",
	"docs/specs",
}

// kindFolders maps each project kind to its tree layout.
var kindFolders = map[models.Kind][]string{
	models.KindWebApp: {
		"src/frontend",
		"src/backend",
		"src/shared",
		"tests/unit",
		"tests/integration",
		"infra/docker",
	},
	models.KindAPIOnly: {
		"src/api",
		"src/models",
		"src/services",
		"src/utils",
		"tests/unit",
		"tests/integration",
		"infra/docker",
	},
	models.KindDataPipeline: {
		"src/pipelines",
		"src/transformations",
		"src/loaders",
		"src/extractors",
		"src/quality",
		"tests",
		"dags",
		"infra/docker",
		"infra/terraform",
	},
	models.KindMLProject: {
		"src/data",
		"src/features",
		"src/models",
		"src/training",
		"src/serving",
		"notebooks",
		"tests",
		"infra/docker",
	},
	models.KindMobileApp: {
		"src/app",
		"src/components",
		"src/screens",
		"src/services",
		"src/navigation",
		"tests",
		"assets",
	},
	models.KindFullstack: {
		"src/frontend/components",
		"src/frontend/pages",
		"src/frontend/styles",
		"src/backend/api",
		"src/backend/models",
		"src/backend/services",
		"src/database/migrations",
		"src/database/seeds",
		"tests/frontend",
		"tests/backend",
		"tests/e2e",
		"infra/docker",
		"infra/kubernetes",
	},
	models.KindMicroservices: {
		"services",
		"shared/libs",
		"shared/proto",
		"gateway",
		"infra/docker",
		"infra/kubernetes",
		"infra/terraform",
	},
}

// DirScaffolder materializes project trees under a base path
type DirScaffolder struct {
	BasePath string
	Now      func() time.Time // injectable clock for deterministic tests
}

// New creates a DirScaffolder rooted at basePath
func New(basePath string) *DirScaffolder {
	return &DirScaffolder{
		BasePath: basePath,
		Now:      time.Now,
	}
}

// Create materializes the directory tree and template documents for a new
// project and writes its state document. Returns the project root path.
func (s *DirScaffolder) Create(id, name string, kind models.Kind, description string) (string, error) {
	folderName := id
	if safe := util.SanitizeFolderName(name); safe != "" {
		folderName = id + "_" + safe
	}
	root := filepath.Join(s.BasePath, folderName)

	folders := append([]string{StateDirName}, commonFolders...)
	folders = append(folders, kindFolders[kind]...)
	for _, folder := range folders {
		if err := os.MkdirAll(filepath.Join(root, folder), 0755); err != nil {
			return "", fmt.Errorf("creating %s: %w", folder, err)
		}
	}

	now := s.Now()
	for _, doc := range baseDocuments(id, name, description, kind, now) {
		path := filepath.Join(root, filepath.FromSlash(doc.Path))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return "", fmt.Errorf("creating parent of %s: %w", doc.Path, err)
		}
		if err := os.WriteFile(path, []byte(doc.Content), 0644); err != nil {
			return "", fmt.Errorf("writing %s: %w", doc.Path, err)
		}
	}

	state := models.ProjectState{
		ID:        id,
		Name:      name,
		Kind:      kind,
		Status:    models.StatusGenerating,
		Request:   description,
		CreatedAt: now,
		Path:      root,
	}
	if err := s.writeState(root, state); err != nil {
		return "", err
	}

	return root, nil
}

// ListExisting scans the base path for project trees carrying a state
// document. Directories without one, or with a malformed one, are skipped.
func (s *DirScaffolder) ListExisting() ([]models.ProjectState, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var states []models.ProjectState
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		root := filepath.Join(s.BasePath, entry.Name())
		statePath := filepath.Join(root, StateDirName, StateFileName)

		data, err := os.ReadFile(statePath)
		if err != nil {
			continue
		}

		var state models.ProjectState
		if err := json.Unmarshal(data, &state); err != nil || state.ID == "" {
			continue
		}
		// The recorded path may be stale if the tree was moved
		state.Path = root
		states = append(states, state)
	}

	return states, nil
}

// UpdateDocument rewrites one of the template documents with team-produced
// content. docType must be one of requirements, project_plan, architecture.
func (s *DirScaffolder) UpdateDocument(root, docType, content string) error {
	relPath, ok := documentPaths[docType]
	if !ok {
		return fmt.Errorf("unknown document type: %q", docType)
	}

	path := filepath.Join(root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

func (s *DirScaffolder) writeState(root string, state models.ProjectState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	path := filepath.Join(root, StateDirName, StateFileName)
	return util.WriteFileAtomic(path, data, 0644)
}
