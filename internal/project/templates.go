// SPDX-License-Identifier: MPL-2.0

package project

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

//go:embed all:template
var templateFS embed.FS

// TemplateFiles is the set of packaging templates copied into a project
// before a build: the image recipe, the build context filter, and the image
// efficiency rules consumed by the dive command.
var TemplateFiles = []string{"Dockerfile", ".dockerignore", ".dive-ci"}

// CopyTemplates copies the named embedded templates into the project root.
// Files already present are left untouched so user edits survive rebuilds;
// each skip is logged at debug level.
func (p *Project) CopyTemplates(logger *log.Logger, names ...string) error {
	for _, name := range names {
		dest := filepath.Join(p.Path, name)

		if _, err := os.Stat(dest); err == nil {
			logger.Debug("template already exists, skipping", "file", name)
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to check for existing %s: %w", name, err)
		}

		content, err := templateFS.ReadFile("template/" + name)
		if err != nil {
			return fmt.Errorf("failed to read embedded template %s: %w", name, err)
		}

		if err := os.WriteFile(dest, content, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", dest, err)
		}
		logger.Info("created template file", "file", name)
	}
	return nil
}
