// SPDX-License-Identifier: MPL-2.0

// Package container provides an abstraction layer for container runtimes
// (Docker/Podman) together with the argument composition rules used to build
// their command lines.
package container

import (
	"context"
	"fmt"
	"io"
)

// Engine defines the interface for container runtime operations.
type Engine interface {
	// Name returns the engine name (docker or podman)
	Name() string
	// Available checks if the engine is available on the system
	Available() bool
	// Version returns the engine version
	Version(ctx context.Context) (string, error)

	// Build builds an image from the project Dockerfile
	Build(ctx context.Context, opts BuildOptions) error
	// Run runs a command in a container
	Run(ctx context.Context, opts RunOptions) (*RunResult, error)
	// ImageExists checks if an image exists locally
	ImageExists(ctx context.Context, image string) (bool, error)
	// ListImages returns the repository:tag names of local images
	ListImages(ctx context.Context) ([]string, error)
	// Kill force-stops a running container by name
	Kill(ctx context.Context, containerName string) error
	// Prune removes stopped containers and dangling images
	Prune(ctx context.Context) error
}

// BuildOptions contains options for building a project image.
type BuildOptions struct {
	// ContextDir is the build context directory (the project root)
	ContextDir string
	// Image is the image tag, applied unless the user supplied their own -t
	Image string
	// UID is the numeric user id baked into the image for file ownership
	UID int
	// GID is the numeric group id baked into the image for file ownership
	GID int
	// ExtraArgs are raw user-supplied tokens forwarded to the build command
	ExtraArgs []string
	// Stdout is where to write build output
	Stdout io.Writer
	// Stderr is where to write build errors
	Stderr io.Writer
}

// RunOptions contains options for running a container.
type RunOptions struct {
	// Image is the image to run
	Image string
	// Command is the in-container command, appended after the image
	Command []string
	// Required flags are always emitted (e.g. port publishing)
	Required []ArgPair
	// Optional flags are emitted unless overridden in ExtraArgs
	Optional []ArgPair
	// Mounts are the project directories to bind mount
	Mounts MountSpec
	// ExtraArgs are raw user-supplied tokens forwarded to the run command
	ExtraArgs []string
	// Stdin is the standard input
	Stdin io.Reader
	// Stdout is where to write standard output
	Stdout io.Writer
	// Stderr is where to write standard error
	Stderr io.Writer
}

// RunResult contains the result of running a container.
type RunResult struct {
	// ExitCode is the child's exit code, relayed verbatim
	ExitCode int
	// Error contains any infrastructure error (binary missing, etc.)
	Error error
}

// EngineType identifies the container engine type.
type EngineType string

const (
	EngineTypeDocker EngineType = "docker"
	EngineTypePodman EngineType = "podman"
)

// ErrEngineNotAvailable is returned when a container engine is not available.
type ErrEngineNotAvailable struct {
	Engine string
	Reason string
}

func (e *ErrEngineNotAvailable) Error() string {
	return fmt.Sprintf("cannot connect to the %s daemon: %s", e.Engine, e.Reason)
}

// NewEngine creates a new container engine based on preference, falling back
// to the other runtime when the preferred one is not available.
func NewEngine(preferredType EngineType) (Engine, error) {
	switch preferredType {
	case EngineTypeDocker:
		engine := NewDockerEngine()
		if engine.Available() {
			return engine, nil
		}
		// Fall back to Podman
		podmanEngine := NewPodmanEngine()
		if podmanEngine.Available() {
			return podmanEngine, nil
		}
		return nil, &ErrEngineNotAvailable{
			Engine: "docker",
			Reason: "docker is not installed or not running, and podman fallback is also not available",
		}

	case EngineTypePodman:
		engine := NewPodmanEngine()
		if engine.Available() {
			return engine, nil
		}
		// Fall back to Docker
		dockerEngine := NewDockerEngine()
		if dockerEngine.Available() {
			return dockerEngine, nil
		}
		return nil, &ErrEngineNotAvailable{
			Engine: "podman",
			Reason: "podman is not installed or not accessible, and docker fallback is also not available",
		}

	default:
		return nil, fmt.Errorf("unknown container engine type: %s", preferredType)
	}
}

// AutoDetectEngine tries to find an available container engine, preferring
// Docker (the runtime the packaging templates target).
func AutoDetectEngine() (Engine, error) {
	docker := NewDockerEngine()
	if docker.Available() {
		return docker, nil
	}

	podman := NewPodmanEngine()
	if podman.Available() {
		return podman, nil
	}

	return nil, &ErrEngineNotAvailable{
		Engine: "container",
		Reason: "no container engine (docker or podman) is available on this system",
	}
}
