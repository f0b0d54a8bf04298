// SPDX-License-Identifier: MPL-2.0

package project

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestCopyTemplates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p := &Project{Path: dir}

	if err := p.CopyTemplates(log.New(io.Discard), TemplateFiles...); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range TemplateFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to be created: %v", name, err)
		}
	}

	content, err := os.ReadFile(filepath.Join(dir, "Dockerfile"))
	if err != nil {
		t.Fatalf("failed to read Dockerfile: %v", err)
	}
	if !strings.Contains(string(content), "ARG TRELLIS_UID") {
		t.Error("Dockerfile template should declare the TRELLIS_UID build arg")
	}
}

func TestCopyTemplates_SkipsExistingFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p := &Project{Path: dir}

	existing := filepath.Join(dir, "Dockerfile")
	if err := os.WriteFile(existing, []byte("FROM scratch\n"), 0o644); err != nil {
		t.Fatalf("failed to seed Dockerfile: %v", err)
	}

	if err := p.CopyTemplates(log.New(io.Discard), "Dockerfile"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(existing)
	if err != nil {
		t.Fatalf("failed to read Dockerfile: %v", err)
	}
	if string(content) != "FROM scratch\n" {
		t.Errorf("existing Dockerfile was overwritten: %q", string(content))
	}
}

func TestCopyTemplates_UnknownTemplate(t *testing.T) {
	t.Parallel()

	p := &Project{Path: t.TempDir()}
	if err := p.CopyTemplates(log.New(io.Discard), "no-such-template"); err == nil {
		t.Fatal("expected error for unknown template name")
	}
}
