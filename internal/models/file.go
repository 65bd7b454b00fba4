package models

import (
	"os"
	"path/filepath"
)

// FileInfo describes one file inside a scaffolded project tree
type FileInfo struct {
	Path string `json:"path"` // Relative path from the project root
	Size int64  `json:"size"` // File size in bytes
}

// cacheDirs are dependency/build directories excluded from listings by name.
var cacheDirs = map[string]bool{
	"node_modules": true,
	"__pycache__":  true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"target":       true,
}

// ListFiles walks the project tree rooted at root and returns every
// non-hidden file, skipping hidden directories and dependency caches.
// Paths use forward slashes relative to root.
func ListFiles(root string) ([]FileInfo, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var files []FileInfo
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Skip entries that can't be accessed instead of stopping the walk
			return nil
		}
		if info == nil {
			return nil
		}

		name := info.Name()
		if info.IsDir() {
			if path == root {
				return nil
			}
			if name[0] == '.' || cacheDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if name[0] == '.' {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		files = append(files, FileInfo{
			Path: filepath.ToSlash(relPath),
			Size: info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
