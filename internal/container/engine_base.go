// SPDX-License-Identifier: MPL-2.0

package container

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"trellis-docker/internal/issue"
)

type (
	// ExecCommandFunc is the function signature for creating exec.Cmd.
	// This allows injection of mock implementations for testing.
	ExecCommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

	// BaseCLIEngineOption configures a BaseCLIEngine.
	BaseCLIEngineOption func(*BaseCLIEngine)

	// BaseCLIEngine provides common implementation for CLI-based container
	// engines. Docker and Podman engines embed this struct. Methods that are
	// identical across all CLI engines (Build, Run, ImageExists, ListImages,
	// Kill, Prune, and the arg builders) are implemented here; engine-specific
	// methods (Name, Available, Version) remain on the concrete types.
	BaseCLIEngine struct {
		name        string // Engine name for error messages (e.g., "docker", "podman")
		binaryPath  string // Resolved at construction via exec.LookPath
		execCommand ExecCommandFunc
	}
)

// --- Option Functions ---

// WithName sets the engine name used in error messages.
func WithName(name string) BaseCLIEngineOption {
	return func(e *BaseCLIEngine) {
		e.name = name
	}
}

// WithExecCommand sets a custom exec command function for testing.
func WithExecCommand(fn ExecCommandFunc) BaseCLIEngineOption {
	return func(e *BaseCLIEngine) {
		e.execCommand = fn
	}
}

// --- Constructor ---

// NewBaseCLIEngine creates a new base engine with the given binary path.
func NewBaseCLIEngine(binaryPath string, opts ...BaseCLIEngineOption) *BaseCLIEngine {
	e := &BaseCLIEngine{
		binaryPath:  binaryPath,
		execCommand: exec.CommandContext,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// --- Accessor Methods ---

// BinaryPath returns the path to the container engine binary.
func (e *BaseCLIEngine) BinaryPath() string {
	return e.binaryPath
}

// --- Argument Builders ---

// BuildArgs constructs arguments for a container build command.
//
// Generated command: <binary> build [options] <context>
//
// The uid/gid build args are required flags (always emitted), the image tag is
// optional (a user-supplied -t wins), and ExtraArgs come last. This mirrors
// ComposeRunArgs ordering so users can override any generated default.
func (e *BaseCLIEngine) BuildArgs(opts BuildOptions) ([]string, error) {
	required := []ArgPair{
		{Flag: "--build-arg", Value: fmt.Sprintf("TRELLIS_UID=%d", opts.UID)},
		{Flag: "--build-arg", Value: fmt.Sprintf("TRELLIS_GID=%d", opts.GID)},
	}

	var optional []ArgPair
	if opts.Image != "" {
		optional = append(optional, ArgPair{Flag: "-t", Value: opts.Image})
	}

	composed, err := ComposeRunArgs(required, optional, MountSpec{}, opts.ExtraArgs)
	if err != nil {
		return nil, err
	}

	args := append([]string{"build"}, composed...)
	args = append(args, opts.ContextDir)
	return args, nil
}

// RunArgs constructs arguments for a container run command.
//
// Generated command: <binary> run [options] <image> [command...]
func (e *BaseCLIEngine) RunArgs(opts RunOptions) ([]string, error) {
	composed, err := ComposeRunArgs(opts.Required, opts.Optional, opts.Mounts, opts.ExtraArgs)
	if err != nil {
		return nil, err
	}

	args := append([]string{"run"}, composed...)
	args = append(args, opts.Image)
	args = append(args, opts.Command...)
	return args, nil
}

// KillArgs constructs arguments for a container kill command.
func (e *BaseCLIEngine) KillArgs(containerName string) []string {
	return []string{"kill", containerName}
}

// --- Command Execution ---

// CreateCommand creates an exec.Cmd for the given arguments.
// This is useful when the caller needs to customize stdin/stdout/stderr.
func (e *BaseCLIEngine) CreateCommand(ctx context.Context, args ...string) *exec.Cmd {
	return e.execCommand(ctx, e.binaryPath, args...)
}

// RunCommandStatus executes a command and returns only the error status.
func (e *BaseCLIEngine) RunCommandStatus(ctx context.Context, args ...string) error {
	cmd := e.CreateCommand(ctx, args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %s %v failed: %w", e.binaryPath, args, err)
	}
	return nil
}

// RunCommandWithOutput executes a command with stdout captured to a buffer.
func (e *BaseCLIEngine) RunCommandWithOutput(ctx context.Context, args ...string) (string, error) {
	cmd := e.CreateCommand(ctx, args...)
	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("command %s %v failed: %w", e.binaryPath, args, err)
	}

	return out.String(), nil
}

// --- Promoted Engine Methods (shared by Docker and Podman) ---

// Build builds the project image. Build output streams to opts.Stdout/Stderr
// so the user sees the runtime's own progress reporting.
func (e *BaseCLIEngine) Build(ctx context.Context, opts BuildOptions) error {
	args, err := e.BuildArgs(opts)
	if err != nil {
		return err
	}

	cmd := e.CreateCommand(ctx, args...)
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	if err := cmd.Run(); err != nil {
		return buildContainerError(e.name, opts, err)
	}

	return nil
}

// Run runs a command in a container and returns the result.
// A non-zero exit code is captured in RunResult.ExitCode (not returned as
// error) so callers can relay it verbatim. Only infrastructure failures
// (binary not found, etc.) set RunResult.Error.
func (e *BaseCLIEngine) Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	args, err := e.RunArgs(opts)
	if err != nil {
		return nil, err
	}

	cmd := e.CreateCommand(ctx, args...)
	cmd.Stdin = opts.Stdin
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	runErr := cmd.Run()

	result := &RunResult{}
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = 1
			result.Error = runErr
		}
	}

	return result, nil
}

// ImageExists checks if an image exists locally by listing matching image IDs.
func (e *BaseCLIEngine) ImageExists(ctx context.Context, image string) (bool, error) {
	out, err := e.RunCommandWithOutput(ctx, "images", "-q", image)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// ListImages returns the repository:tag names of local images.
func (e *BaseCLIEngine) ListImages(ctx context.Context) ([]string, error) {
	out, err := e.RunCommandWithOutput(ctx, "images", "--format", "{{.Repository}}:{{.Tag}}")
	if err != nil {
		return nil, err
	}

	var images []string
	for line := range strings.Lines(out) {
		if name := strings.TrimSpace(line); name != "" {
			images = append(images, name)
		}
	}
	return images, nil
}

// Kill force-stops a running container by name.
func (e *BaseCLIEngine) Kill(ctx context.Context, containerName string) error {
	return e.RunCommandStatus(ctx, e.KillArgs(containerName)...)
}

// Prune removes stopped containers and dangling images.
func (e *BaseCLIEngine) Prune(ctx context.Context) error {
	if err := e.RunCommandStatus(ctx, "container", "prune", "-f"); err != nil {
		return err
	}
	return e.RunCommandStatus(ctx, "image", "prune", "-f")
}

// --- Actionable Error Helpers ---

// buildContainerError creates an actionable error for image build failures.
func buildContainerError(engine string, opts BuildOptions, cause error) error {
	ctx := issue.NewErrorContext().
		WithOperation("build project image")

	switch {
	case opts.Image != "":
		ctx.WithResource(opts.Image)
	case opts.ContextDir != "":
		ctx.WithResource(opts.ContextDir + "/Dockerfile")
	}

	ctx.WithSuggestion("Check the generated Dockerfile for syntax errors")
	ctx.WithSuggestion("Ensure base images are available (try: " + engine + " pull <base-image>)")
	ctx.WithSuggestion("Re-run with --verbose to see the full error chain")

	return ctx.Wrap(cause).BuildError()
}

// MissingImageError creates an actionable error for a locally absent image.
// When the local image list is known, it is included so the user can spot a
// typo'd tag without another round trip.
func MissingImageError(engine, image string, available []string) error {
	ctx := issue.NewErrorContext().
		WithOperation("find image `" + image + "` locally").
		WithResource(image).
		WithSuggestion("Build the image first: trellis-docker build").
		WithSuggestion("Or pull it: " + engine + " pull " + image)

	if len(available) > 0 {
		ctx.WithSuggestion("Local images: " + strings.Join(available, ", "))
	}

	return ctx.BuildError()
}
