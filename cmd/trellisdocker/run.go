// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"trellis-docker/internal/container"
)

var (
	runImage      string
	runDockerArgs string

	// runCmd runs the pipeline inside the project container
	runCmd = &cobra.Command{
		Use:   "run [flags] [-- trellis-run-args...]",
		Short: "Run the pipeline in a container",
		Long: `Run the pipeline in a container.

The project's data directories are mounted from the host so pipeline inputs
and outputs live outside the container. Any trailing arguments are passed to
the 'trellis run' command inside the container as is.`,
		Args: cobra.ArbitraryArgs,
		RunE: runRun,
	}
)

func init() {
	addImageFlag(runCmd, &runImage)
	addDockerArgsFlag(runCmd, &runDockerArgs, "run")
	runCmd.Flags().SetInterspersed(false)
}

func runRun(cmd *cobra.Command, args []string) error {
	a := app

	image := a.resolveImage(runImage)
	if err := a.requireImage(cmd, image); err != nil {
		return err
	}

	extraArgs, err := splitDockerArgs(runDockerArgs)
	if err != nil {
		return err
	}

	containerName := container.MakeContainerName(image, "run")
	return a.runContainer(cmd, container.RunOptions{
		Image:   image,
		Command: append([]string{"trellis", "run"}, args...),
		Optional: []container.ArgPair{
			{Flag: "--rm"},
			{Flag: "--name", Value: containerName},
		},
		Mounts:    a.Project.Mounts(a.Config.ContainerRoot, a.Config.Volumes),
		ExtraArgs: extraArgs,
	})
}
