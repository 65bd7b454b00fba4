package scaffold_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"forj/internal/models"
	"forj/internal/scaffold"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
}

func newScaffolder(t *testing.T) (*scaffold.DirScaffolder, string) {
	t.Helper()
	base := t.TempDir()
	sc := scaffold.New(base)
	sc.Now = fixedClock
	return sc, base
}

func TestCreate(t *testing.T) {
	sc, base := newScaffolder(t)

	root, err := sc.Create("proj_x", "Sistema de Vendas!", models.KindFullstack, "loja com dashboard")
	require.NoError(t, err)

	t.Run("folder name combines id and sanitized name", func(t *testing.T) {
		assert.Equal(t, filepath.Join(base, "proj_x_sistema_de_vendas"), root)
	})

	t.Run("kind-specific folders exist", func(t *testing.T) {
		for _, dir := range []string{
			"docs/specs",
			"src/frontend/components",
			"src/backend/api",
			"src/database/migrations",
			"tests/e2e",
			"infra/kubernetes",
		} {
			info, err := os.Stat(filepath.Join(root, filepath.FromSlash(dir)))
			require.NoError(t, err, dir)
			assert.True(t, info.IsDir(), dir)
		}
	})

	t.Run("template documents are written", func(t *testing.T) {
		readme, err := os.ReadFile(filepath.Join(root, "README.md"))
		require.NoError(t, err)
		assert.Contains(t, string(readme), "Sistema de Vendas!")
		assert.Contains(t, string(readme), "fullstack")

		reqs, err := os.ReadFile(filepath.Join(root, "docs", "requirements.md"))
		require.NoError(t, err)
		assert.Contains(t, string(reqs), "loja com dashboard")

		assert.FileExists(t, filepath.Join(root, ".gitignore"))
		assert.FileExists(t, filepath.Join(root, "docs", "project_plan.md"))
		assert.FileExists(t, filepath.Join(root, "docs", "architecture.md"))
	})

	t.Run("state document describes the project", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(root, scaffold.StateDirName, scaffold.StateFileName))
		require.NoError(t, err)

		var state models.ProjectState
		require.NoError(t, json.Unmarshal(data, &state))
		assert.Equal(t, "proj_x", state.ID)
		assert.Equal(t, "Sistema de Vendas!", state.Name)
		assert.Equal(t, models.KindFullstack, state.Kind)
		assert.Equal(t, models.StatusGenerating, state.Status)
		assert.Equal(t, root, state.Path)
	})
}

func TestListExisting(t *testing.T) {
	sc, base := newScaffolder(t)

	_, err := sc.Create("proj_a", "Alpha", models.KindAPIOnly, "a")
	require.NoError(t, err)
	_, err = sc.Create("proj_b", "Beta", models.KindWebApp, "b")
	require.NoError(t, err)

	// Directories without a state doc, malformed state docs, and loose
	// files must all be ignored
	require.NoError(t, os.MkdirAll(filepath.Join(base, "not_a_project"), 0755))
	brokenDir := filepath.Join(base, "broken", scaffold.StateDirName)
	require.NoError(t, os.MkdirAll(brokenDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(brokenDir, scaffold.StateFileName), []byte("oops"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "stray.txt"), []byte("x"), 0644))

	states, err := sc.ListExisting()
	require.NoError(t, err)
	require.Len(t, states, 2)

	ids := map[string]bool{}
	for _, state := range states {
		ids[state.ID] = true
	}
	assert.True(t, ids["proj_a"])
	assert.True(t, ids["proj_b"])
}

func TestListExistingMissingBase(t *testing.T) {
	sc := scaffold.New(filepath.Join(t.TempDir(), "does-not-exist"))
	states, err := sc.ListExisting()
	require.NoError(t, err)
	assert.Empty(t, states)
}

func TestUpdateDocument(t *testing.T) {
	sc, _ := newScaffolder(t)

	root, err := sc.Create("proj_doc", "Doc", models.KindAPIOnly, "d")
	require.NoError(t, err)

	require.NoError(t, sc.UpdateDocument(root, "requirements", "# Final requirements\n"))

	data, err := os.ReadFile(filepath.Join(root, "docs", "requirements.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Final requirements\n", string(data))

	require.Error(t, sc.UpdateDocument(root, "budget", "x"))
}
