package config_test

import (
	"path/filepath"
	"testing"

	"forj/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBaseDirName, cfg.BasePath)
	assert.Equal(t, "zip", cfg.DefaultArchiveFormat)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := &config.Config{BasePath: "/srv/projects", DefaultArchiveFormat: "tar.gz"}
	require.NoError(t, cfg.Save(path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/projects", loaded.BasePath)
	assert.Equal(t, "tar.gz", loaded.DefaultArchiveFormat)
}
