package models_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"forj/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, status := range models.AllStatuses {
		parsed, err := models.ParseStatus(string(status))
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := models.ParseStatus("done")
	require.Error(t, err)
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, models.StatusDelivered.Terminal())
	assert.True(t, models.StatusCancelled.Terminal())
	assert.False(t, models.StatusInitiated.Terminal())
	assert.False(t, models.StatusCompleted.Terminal())
}

func TestParseKind(t *testing.T) {
	for _, kind := range models.AllKinds {
		parsed, err := models.ParseKind(string(kind))
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := models.ParseKind("desktop_app")
	require.Error(t, err)
}

func TestSummarize(t *testing.T) {
	t.Run("short descriptions pass through", func(t *testing.T) {
		p := &models.Project{ID: "p", Description: "short"}
		assert.Equal(t, "short", p.Summarize().Description)
	})

	t.Run("long descriptions get a bounded preview", func(t *testing.T) {
		p := &models.Project{ID: "p", Description: strings.Repeat("a", 150)}
		preview := p.Summarize().Description
		assert.Len(t, preview, 103)
		assert.True(t, strings.HasSuffix(preview, "..."))
	})

	t.Run("exactly at the bound is untouched", func(t *testing.T) {
		p := &models.Project{ID: "p", Description: strings.Repeat("a", 100)}
		assert.Len(t, p.Summarize().Description, 100)
	})
}

func TestClone(t *testing.T) {
	p := &models.Project{
		ID:         "p",
		Teams:      []string{"PO"},
		Activities: []models.Activity{{Action: "project_created"}},
	}

	cp := p.Clone()
	cp.Teams[0] = "QA"
	cp.Activities[0].Action = "tampered"
	cp.Activities = append(cp.Activities, models.Activity{Action: "extra"})

	assert.Equal(t, []string{"PO"}, p.Teams)
	assert.Equal(t, "project_created", p.Activities[0].Action)
	assert.Len(t, p.Activities, 1)
}

func TestListFiles(t *testing.T) {
	root := t.TempDir()

	write := func(rel string) {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("content"), 0644))
	}

	write("README.md")
	write("src/main.go")
	write(".hidden")
	write(".git/config")
	write("node_modules/pkg/index.js")
	write("__pycache__/mod.pyc")
	write("docs/specs/api.md")

	files, err := models.ListFiles(root)
	require.NoError(t, err)

	paths := make(map[string]int64, len(files))
	for _, f := range files {
		paths[f.Path] = f.Size
	}

	assert.Len(t, files, 3)
	assert.Contains(t, paths, "README.md")
	assert.Contains(t, paths, "src/main.go")
	assert.Contains(t, paths, "docs/specs/api.md")
	assert.Equal(t, int64(7), paths["README.md"])
}

func TestListFilesMissingRoot(t *testing.T) {
	files, err := models.ListFiles(filepath.Join(t.TempDir(), "gone"))
	require.NoError(t, err)
	assert.Empty(t, files)
}
