// SPDX-License-Identifier: MPL-2.0

// Package project locates the pipeline project on the host filesystem and
// provides the host-side inputs for containerizing it: the project root,
// the default image name, packaging templates and user identity defaults.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"trellis-docker/internal/container"
)

// DefaultVolumes are the project directories mounted into run containers so
// pipeline inputs and outputs live on the host, not in the container layer.
var DefaultVolumes = []string{
	"conf/local",
	"data",
	"logs",
	"notebooks",
	"references",
	"results",
}

// Project is a pipeline project rooted at a host directory.
type Project struct {
	// Path is the absolute project root.
	Path string
}

// Discover resolves the project from the current working directory.
func Discover() (*Project, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to locate project directory: %w", err)
	}
	return &Project{Path: wd}, nil
}

// Name returns the project name (the base name of the project directory).
func (p *Project) Name() string {
	return filepath.Base(p.Path)
}

// DefaultImage returns the default image tag for the project.
func (p *Project) DefaultImage() string {
	return p.Name()
}

// Mounts assembles the bind mount spec for run containers: the project root
// on the host side, the in-container project home on the container side.
func (p *Project) Mounts(containerRoot string, volumes []string) container.MountSpec {
	return container.MountSpec{
		HostRoot:      p.Path,
		ContainerRoot: containerRoot,
		SubPaths:      volumes,
	}
}
