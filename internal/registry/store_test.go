package registry_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"forj/internal/models"
	"forj/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProject(id string) *models.Project {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return &models.Project{
		ID:         id,
		Name:       "Sample",
		Kind:       models.KindWebApp,
		Status:     models.StatusInitiated,
		CreatedAt:  now,
		UpdatedAt:  now,
		Path:       "/tmp/sample",
		Teams:      []string{},
		Activities: []models.Activity{{Timestamp: now, Action: "project_created", Details: "x"}},
	}
}

func TestStoreLoad(t *testing.T) {
	t.Run("missing index yields empty mapping", func(t *testing.T) {
		store := registry.NewStore(t.TempDir())
		require.NoError(t, store.Load())
		assert.Equal(t, 0, store.Len())
	})

	t.Run("load is idempotent on unchanged disk", func(t *testing.T) {
		store := registry.NewStore(t.TempDir())
		store.Put(sampleProject("proj_1"))
		require.NoError(t, store.Save())

		require.NoError(t, store.Load())
		require.NoError(t, store.Load())
		assert.Equal(t, 1, store.Len())
	})

	t.Run("invalid json fails with corrupt index", func(t *testing.T) {
		base := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(base, registry.IndexFileName), []byte("garbage"), 0644))

		store := registry.NewStore(base)
		require.ErrorIs(t, store.Load(), models.ErrCorruptIndex)
	})

	t.Run("entry without id fails with corrupt index", func(t *testing.T) {
		base := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(base, registry.IndexFileName), []byte(`{"proj_1": {}}`), 0644))

		store := registry.NewStore(base)
		require.ErrorIs(t, store.Load(), models.ErrCorruptIndex)
	})
}

func TestStoreSave(t *testing.T) {
	t.Run("creates the base path", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "nested", "projects")
		store := registry.NewStore(base)
		store.Put(sampleProject("proj_1"))
		require.NoError(t, store.Save())
		assert.FileExists(t, store.IndexPath())
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		base := t.TempDir()
		store := registry.NewStore(base)
		store.Put(sampleProject("proj_1"))
		require.NoError(t, store.Save())

		entries, err := os.ReadDir(base)
		require.NoError(t, err)
		for _, entry := range entries {
			assert.False(t, strings.HasPrefix(entry.Name(), ".forj-tmp-"), "leftover temp file %s", entry.Name())
		}
	})

	t.Run("round-trips records losslessly", func(t *testing.T) {
		base := t.TempDir()
		store := registry.NewStore(base)

		p := sampleProject("proj_1")
		p.Teams = []string{"PO", "ARCH"}
		p.GitHubURL = "https://github.com/acme/sample"
		p.Activities = append(p.Activities, models.Activity{
			Timestamp: p.CreatedAt.Add(time.Minute),
			Action:    "doc_updated",
			Team:      "PO",
			Details:   "requirements filled",
		})
		store.Put(p)
		require.NoError(t, store.Save())

		fresh := registry.NewStore(base)
		require.NoError(t, fresh.Load())

		got, ok := fresh.Get("proj_1")
		require.True(t, ok)
		assert.Equal(t, p.Teams, got.Teams)
		assert.Equal(t, p.GitHubURL, got.GitHubURL)
		require.Len(t, got.Activities, 2)
		assert.Equal(t, "doc_updated", got.Activities[1].Action)
		assert.Equal(t, "PO", got.Activities[1].Team)
	})
}

func TestStoreReconcile(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	discovered := []models.ProjectState{{
		ID:        "proj_disk",
		Name:      "Disk Project",
		Kind:      models.KindMLProject,
		Status:    models.StatusGenerating,
		Request:   "found on disk",
		CreatedAt: now,
		Path:      "/tmp/disk",
	}}

	t.Run("adds missing entries with empty history", func(t *testing.T) {
		store := registry.NewStore(t.TempDir())
		assert.Equal(t, 1, store.Reconcile(discovered))

		got, ok := store.Get("proj_disk")
		require.True(t, ok)
		assert.Empty(t, got.Activities)
		assert.Empty(t, got.Teams)
		assert.Equal(t, models.StatusGenerating, got.Status)
		assert.Equal(t, got.CreatedAt, got.UpdatedAt)
	})

	t.Run("never overwrites existing entries", func(t *testing.T) {
		store := registry.NewStore(t.TempDir())
		existing := sampleProject("proj_disk")
		existing.Status = models.StatusReview
		store.Put(existing)

		assert.Equal(t, 0, store.Reconcile(discovered))

		got, ok := store.Get("proj_disk")
		require.True(t, ok)
		assert.Equal(t, models.StatusReview, got.Status)
		assert.Len(t, got.Activities, 1)
	})

	t.Run("repeat runs add nothing", func(t *testing.T) {
		store := registry.NewStore(t.TempDir())
		assert.Equal(t, 1, store.Reconcile(discovered))
		assert.Equal(t, 0, store.Reconcile(discovered))
		assert.Equal(t, 1, store.Len())
	})
}
