// SPDX-License-Identifier: MPL-2.0

package project

import (
	"path/filepath"
	"slices"
	"testing"
)

func TestProjectName(t *testing.T) {
	t.Parallel()

	p := &Project{Path: filepath.Join("/home", "user", "spaceflights")}
	if p.Name() != "spaceflights" {
		t.Errorf("name = %q, want spaceflights", p.Name())
	}
	if p.DefaultImage() != "spaceflights" {
		t.Errorf("default image = %q, want spaceflights", p.DefaultImage())
	}
}

func TestProjectMounts(t *testing.T) {
	t.Parallel()

	p := &Project{Path: "/home/user/spaceflights"}
	mounts := p.Mounts("/home/trellis", []string{"data", "logs"})

	if mounts.HostRoot != p.Path {
		t.Errorf("host root = %q", mounts.HostRoot)
	}
	if mounts.ContainerRoot != "/home/trellis" {
		t.Errorf("container root = %q", mounts.ContainerRoot)
	}
	if !slices.Equal(mounts.SubPaths, []string{"data", "logs"}) {
		t.Errorf("sub paths = %v", mounts.SubPaths)
	}
}

func TestDiscover(t *testing.T) {
	p, err := Discover()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(p.Path) {
		t.Errorf("project path should be absolute, got %q", p.Path)
	}
}
