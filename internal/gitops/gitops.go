// Package gitops bootstraps version control inside scaffolded project trees.
package gitops

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Preparer runs git against a project tree
type Preparer struct{}

// New returns a git Preparer
func New() *Preparer {
	return &Preparer{}
}

// Prepare initializes a git repository in root if none exists, writes a
// default .gitignore when absent, and creates an initial commit. A tree
// that already has a .git directory is left untouched.
func (p *Preparer) Prepare(root string) error {
	if _, err := os.Stat(filepath.Join(root, ".git")); err == nil {
		return nil
	}

	if err := run(root, "init"); err != nil {
		return err
	}

	gitignorePath := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(gitignorePath); os.IsNotExist(err) {
		if err := os.WriteFile(gitignorePath, []byte(defaultGitignore), 0644); err != nil {
			return fmt.Errorf("writing .gitignore: %w", err)
		}
	}

	if err := run(root, "add", "."); err != nil {
		return err
	}
	return run(root, "commit", "-m", "Initial commit")
}

func run(dir string, args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git %s: %w: %s", args[0], err, out)
	}
	return nil
}

const defaultGitignore = `# Dependencies
node_modules/
venv/
.venv/
__pycache__/
*.pyc

# Environment
.env
.env.local

# IDE
.vscode/
.idea/

# Build
dist/
build/

# Logs
*.log

# OS
.DS_Store
`
