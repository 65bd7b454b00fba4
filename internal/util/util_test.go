package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"forj/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", util.FormatSize(512))
	assert.Equal(t, "1.00 KB", util.FormatSize(1024))
	assert.Equal(t, "1.50 MB", util.FormatSize(1572864))
}

func TestSanitizeFolderName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases and joins words", "Sistema de Vendas", "sistema_de_vendas"},
		{"strips special characters", "Loja! Virtual?", "loja_virtual"},
		{"collapses dashes and spaces", "a - b  c", "a_b_c"},
		{"caps at fifty characters", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"},
		{"empty stays empty", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, util.SanitizeFolderName(tt.in))
		})
	}
}

func TestWriteFileAtomic(t *testing.T) {
	t.Run("writes new files", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		require.NoError(t, util.WriteFileAtomic(path, []byte("{}"), 0644))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{}", string(data))
	})

	t.Run("replaces existing content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		require.NoError(t, util.WriteFileAtomic(path, []byte("old"), 0644))
		require.NoError(t, util.WriteFileAtomic(path, []byte("new"), 0644))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("leaves no temp files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, util.WriteFileAtomic(filepath.Join(dir, "out.json"), []byte("x"), 0644))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}
