package scaffold

import (
	"fmt"
	"time"

	"forj/internal/models"
)

// document is one boilerplate file materialized at project creation
type document struct {
	Path    string
	Content string
}

// documentPaths maps updatable document types to their location in the tree.
var documentPaths = map[string]string{
	"requirements": "docs/requirements.md",
	"project_plan": "docs/project_plan.md",
	"architecture": "docs/architecture.md",
}

func baseDocuments(id, name, description string, kind models.Kind, now time.Time) []document {
	return []document{
		{
			Path: "README.md",
			Content: fmt.Sprintf(`# %s

## Description

%s

## Project Kind

**%s**

## Layout

`+"```"+`
%s/
├── docs/           # Project documentation
├── src/            # Source code
├── tests/          # Automated tests
├── infra/          # Infrastructure (Docker, Terraform, ...)
└── .forj/          # Workspace metadata
`+"```"+`

## Created

%s
`, name, description, kind, id, now.Format(time.RFC3339)),
		},
		{
			Path:    ".gitignore",
			Content: gitignoreTemplate,
		},
		{
			Path: documentPaths["requirements"],
			Content: fmt.Sprintf(`# Requirements

## Original Client Request

%s

## Functional Requirements

*To be filled in by the product team*

## Non-Functional Requirements

*To be filled in by the product team*

## User Stories

*To be filled in by the product team*
`, description),
		},
		{
			Path: documentPaths["project_plan"],
			Content: `# Project Plan

## Schedule

*To be filled in by the project management team*

## Milestones

*To be filled in by the project management team*

## Risks

*To be filled in by the project management team*

## Resources

*To be filled in by the project management team*
`,
		},
		{
			Path: documentPaths["architecture"],
			Content: `# Architecture

## Overview

*To be filled in by the architecture team*

## Diagram

` + "```" + `
[to be generated]
` + "```" + `

## Technology Choices

*To be filled in by the architecture team*

## Architecture Decision Records

*To be filled in by the architecture team*
`,
		},
	}
}

const gitignoreTemplate = `# Dependencies
node_modules/
venv/
.venv/
__pycache__/
*.pyc

# Environment
.env
.env.local
*.env

# IDE
.vscode/
.idea/
*.swp

# Build
dist/
build/
*.egg-info/

# Logs
*.log
logs/

# OS
.DS_Store
Thumbs.db
`
