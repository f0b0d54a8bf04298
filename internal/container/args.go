// SPDX-License-Identifier: MPL-2.0

package container

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

var (
	// ErrIncompleteMountSpec is the sentinel error wrapped by IncompleteMountSpecError.
	ErrIncompleteMountSpec = errors.New("incomplete mount spec")

	containerNameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]+`)
)

type (
	// ArgPair is a single command line flag with an optional value.
	// A pair with an empty Value renders as a bare boolean switch.
	ArgPair struct {
		Flag  string
		Value string
	}

	// MountSpec describes project directories to bind mount into a container.
	// Each SubPath is rendered as one "-v HostRoot/sub:ContainerRoot/sub"
	// binding, in the order given.
	MountSpec struct {
		HostRoot      string
		ContainerRoot string
		SubPaths      []string
	}

	// IncompleteMountSpecError is returned when a MountSpec requests sub-paths
	// but is missing its host root and/or container root.
	IncompleteMountSpecError struct {
		Value MountSpec
	}
)

// Error implements the error interface.
func (e *IncompleteMountSpecError) Error() string {
	return fmt.Sprintf("both host root and container root must be set when %d mount volume(s) are requested",
		len(e.Value.SubPaths))
}

// Unwrap returns ErrIncompleteMountSpec so callers can use errors.Is for programmatic detection.
func (e *IncompleteMountSpecError) Unwrap() error { return ErrIncompleteMountSpec }

// Tokens renders the pair as command line tokens.
func (p ArgPair) Tokens() []string {
	if p.Value == "" {
		return []string{p.Flag}
	}
	return []string{p.Flag, p.Value}
}

// Validate returns an error if sub-paths are requested without both roots set.
// An empty MountSpec is valid and renders no bindings.
func (m MountSpec) Validate() error {
	if len(m.SubPaths) == 0 {
		return nil
	}
	if m.HostRoot == "" || m.ContainerRoot == "" {
		return &IncompleteMountSpecError{Value: m}
	}
	return nil
}

// Bindings renders the mount spec as a flat list of "-v host:container" token
// pairs. The host side uses native path separators; the container side is
// always POSIX.
func (m MountSpec) Bindings() ([]string, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	bindings := make([]string, 0, 2*len(m.SubPaths))
	for _, sub := range m.SubPaths {
		host := filepath.Join(m.HostRoot, filepath.FromSlash(sub))
		target := path.Join(m.ContainerRoot, sub)
		bindings = append(bindings, "-v", host+":"+target)
	}
	return bindings, nil
}

// ComposeRunArgs merges required flags, volume mount bindings, optional flags
// and raw user-supplied tokens into the final ordered argument list for a
// container runtime invocation, in exactly that order.
//
// Required pairs are emitted verbatim; deduplicating them against user input is
// the caller's responsibility. An optional pair is dropped when the user
// already supplied its flag, either as an exact token or in "--flag=value"
// form. Mounts with sub-paths but a missing root fail with
// IncompleteMountSpecError.
//
// The function is pure: it performs no I/O and leaves its inputs untouched.
func ComposeRunArgs(required, optional []ArgPair, mounts MountSpec, userArgs []string) ([]string, error) {
	bindings, err := mounts.Bindings()
	if err != nil {
		return nil, err
	}

	args := make([]string, 0, 2*(len(required)+len(optional))+len(bindings)+len(userArgs))
	for _, p := range required {
		args = append(args, p.Tokens()...)
	}
	args = append(args, bindings...)
	for _, p := range optional {
		if hasFlag(userArgs, p.Flag) {
			continue
		}
		args = append(args, p.Tokens()...)
	}
	args = append(args, userArgs...)
	return args, nil
}

// AppendNotebookArgs appends the notebook server defaults ("--ip 0.0.0.0" and
// "--no-browser") to the in-container command arguments, unless the user
// already supplied them. Uses the same override rule as ComposeRunArgs: only
// exact and "=" style matches suppress a default, so "--no-browser=bar" does
// not suppress a bare "--no-browser".
func AppendNotebookArgs(args []string) []string {
	defaults := []ArgPair{
		{Flag: "--ip", Value: "0.0.0.0"},
		{Flag: "--no-browser"},
	}

	out := slices.Clone(args)
	for _, p := range defaults {
		if hasFlag(args, p.Flag) {
			continue
		}
		out = append(out, p.Tokens()...)
	}
	return out
}

// MakeContainerName joins the given parts into a valid container name:
// parts are joined with a hyphen and every run of non-alphanumeric characters
// collapses to a single hyphen.
func MakeContainerName(parts ...string) string {
	joined := strings.Join(parts, "-")
	return strings.Trim(containerNameSanitizer.ReplaceAllString(joined, "-"), "-")
}

// hasFlag reports whether tokens contains flag, either as an exact token or
// as a "flag=value" prefix match.
func hasFlag(tokens []string, flag string) bool {
	for _, tok := range tokens {
		if tok == flag || strings.HasPrefix(tok, flag+"=") {
			return true
		}
	}
	return false
}
