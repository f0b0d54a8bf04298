// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"trellis-docker/internal/container"
)

var (
	cmdImage      string
	cmdDockerArgs string

	// cmdCmd runs an arbitrary command inside the project container
	cmdCmd = &cobra.Command{
		Use:   "cmd [flags] [-- command...]",
		Short: "Run an arbitrary command in a container",
		Long: `Run an arbitrary command in a container.

If no command is given, the image's default command is used (the packaging
Dockerfile defaults it to 'trellis run').`,
		Args: cobra.ArbitraryArgs,
		RunE: runCmdCommand,
	}
)

func init() {
	addImageFlag(cmdCmd, &cmdImage)
	addDockerArgsFlag(cmdCmd, &cmdDockerArgs, "run")
	cmdCmd.Flags().SetInterspersed(false)
}

func runCmdCommand(cmd *cobra.Command, args []string) error {
	a := app

	image := a.resolveImage(cmdImage)
	if err := a.requireImage(cmd, image); err != nil {
		return err
	}

	extraArgs, err := splitDockerArgs(cmdDockerArgs)
	if err != nil {
		return err
	}

	containerName := container.MakeContainerName(image, "cmd")
	return a.runContainer(cmd, container.RunOptions{
		Image:   image,
		Command: args,
		Optional: []container.ArgPair{
			{Flag: "--rm"},
			{Flag: "--name", Value: containerName},
		},
		Mounts:    a.Project.Mounts(a.Config.ContainerRoot, a.Config.Volumes),
		ExtraArgs: extraArgs,
	})
}
