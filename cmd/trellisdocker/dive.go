// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"trellis-docker/internal/container"
)

// DiveImage is the analyzer image used by the dive command.
const DiveImage = "wagoodman/dive:latest"

var (
	diveImage      string
	diveDockerArgs string
	diveCI         bool
	diveCIConfig   string

	// diveCmd analyzes the efficiency of the project image
	diveCmd = &cobra.Command{
		Use:   "dive",
		Short: "Run the Dive analyzer against the project image",
		Long: `Run the Dive analyzer against the project image.

In CI mode (the default) Dive evaluates the image against the rules in the
.dive-ci config file and exits non-zero when they fail. With --ci=false an
interactive layer explorer is started instead.`,
		Args: cobra.NoArgs,
		RunE: runDive,
	}
)

func init() {
	addImageFlag(diveCmd, &diveImage)
	addDockerArgsFlag(diveCmd, &diveDockerArgs, "run")
	diveCmd.Flags().BoolVar(&diveCI, "ci", true, "run Dive in non-interactive mode")
	diveCmd.Flags().StringVarP(&diveCIConfig, "ci-config-path", "c", ".dive-ci", "path to the .dive-ci config file")
}

func runDive(cmd *cobra.Command, args []string) error {
	a := app

	image := a.resolveImage(diveImage)
	if err := a.requireImage(cmd, image); err != nil {
		return err
	}

	extraArgs, err := splitDockerArgs(diveDockerArgs)
	if err != nil {
		return err
	}

	// Dive inspects images through the runtime socket, so the socket is
	// mounted into the analyzer container.
	required := []container.ArgPair{
		{Flag: "-v", Value: "/var/run/docker.sock:/var/run/docker.sock"},
	}
	optional := []container.ArgPair{
		{Flag: "--rm"},
		{Flag: "--name", Value: container.MakeContainerName(image, "dive")},
	}

	if diveCI {
		ciConfig, absErr := filepath.Abs(diveCIConfig)
		if absErr != nil {
			return fmt.Errorf("failed to resolve --ci-config-path: %w", absErr)
		}
		if info, statErr := os.Stat(ciConfig); statErr == nil && !info.IsDir() {
			required = append(required, container.ArgPair{Flag: "-v", Value: ciConfig + ":/.dive-ci"})
		} else {
			fmt.Fprintln(os.Stderr, WarningStyle.Render(
				fmt.Sprintf("`%s` file not found, using default CI config", ciConfig)))
		}
		required = append(required, container.ArgPair{Flag: "-e", Value: "CI=true"})
	} else {
		optional = append(optional, container.ArgPair{Flag: "-it"})
	}

	return a.runContainer(cmd, container.RunOptions{
		Image:     DiveImage,
		Command:   []string{image},
		Required:  required,
		Optional:  optional,
		ExtraArgs: extraArgs,
	})
}
