// Package archive packages project trees for delivery.
package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Packager writes zip or tar.gz archives of project trees
type Packager struct{}

// New returns a Packager
func New() *Packager {
	return &Packager{}
}

// Package archives the tree at root into destDir as baseName plus the
// format's extension. Supported formats: "zip", "tar.gz".
func (p *Packager) Package(root, destDir, baseName, format string) (string, error) {
	switch format {
	case "zip":
		dest := filepath.Join(destDir, baseName+".zip")
		return dest, writeZip(root, dest)
	case "tar.gz":
		dest := filepath.Join(destDir, baseName+".tar.gz")
		return dest, writeTarGz(root, dest)
	default:
		return "", fmt.Errorf("unsupported archive format: %q", format)
	}
}

func writeZip(root, dest string) error {
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	err = walkTree(root, func(relPath, fullPath string, info os.FileInfo) error {
		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = relPath
		header.Method = zip.Deflate

		w, err := zw.CreateHeader(header)
		if err != nil {
			return err
		}
		return copyFile(w, fullPath)
	})
	if err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

func writeTarGz(root, dest string) error {
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	gw := gzip.NewWriter(out)
	tw := tar.NewWriter(gw)

	err = walkTree(root, func(relPath, fullPath string, info os.FileInfo) error {
		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		header.Name = relPath

		if err := tw.WriteHeader(header); err != nil {
			return err
		}
		return copyFile(tw, fullPath)
	})
	if err != nil {
		tw.Close()
		gw.Close()
		return err
	}
	if err := tw.Close(); err != nil {
		gw.Close()
		return err
	}
	return gw.Close()
}

func walkTree(root string, fn func(relPath, fullPath string, info os.FileInfo) error) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		return fn(filepath.ToSlash(relPath), path, info)
	})
}

func copyFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(w, f)
	return err
}
