// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/shell"
)

// addImageFlag registers the shared --image override on a command.
func addImageFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "image", "", "image tag (default is the project directory name)")
}

// addDockerArgsFlag registers the shared --docker-args passthrough on a command.
func addDockerArgsFlag(cmd *cobra.Command, target *string, runtimeCommand string) {
	cmd.Flags().StringVar(target, "docker-args", "",
		fmt.Sprintf("optional arguments passed to the `%s` command", runtimeCommand))
}

// splitDockerArgs shell-splits the raw --docker-args value into tokens,
// honoring quoting so values with spaces survive (e.g. --docker-args '-e "A=b c"').
// Environment references are expanded from the host environment, as a POSIX
// shell would.
func splitDockerArgs(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	fields, err := shell.Fields(raw, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to parse --docker-args value %q: %w", raw, err)
	}
	return fields, nil
}
