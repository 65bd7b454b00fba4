package gitops_test

import (
	"os"
	"path/filepath"
	"testing"

	"forj/internal/gitops"

	"github.com/stretchr/testify/require"
)

func TestPrepareSkipsExistingRepo(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0755))

	// An already-initialized tree is left untouched
	require.NoError(t, gitops.New().Prepare(root))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
