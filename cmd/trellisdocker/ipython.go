// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"trellis-docker/internal/container"
)

var (
	ipythonImage      string
	ipythonDockerArgs string

	// ipythonCmd runs an interactive shell session inside the project container
	ipythonCmd = &cobra.Command{
		Use:   "ipython [flags] [-- ipython-args...]",
		Short: "Run an IPython session in a container",
		Long: `Run an IPython session in a container.

The session is interactive (-it) and has the project's data directories
mounted from the host. Any trailing arguments are passed to the
'trellis ipython' command inside the container as is.`,
		Args: cobra.ArbitraryArgs,
		RunE: runIPython,
	}
)

func init() {
	addImageFlag(ipythonCmd, &ipythonImage)
	addDockerArgsFlag(ipythonCmd, &ipythonDockerArgs, "run")
	ipythonCmd.Flags().SetInterspersed(false)
}

func runIPython(cmd *cobra.Command, args []string) error {
	a := app

	image := a.resolveImage(ipythonImage)
	if err := a.requireImage(cmd, image); err != nil {
		return err
	}

	extraArgs, err := splitDockerArgs(ipythonDockerArgs)
	if err != nil {
		return err
	}

	containerName := container.MakeContainerName(image, "ipython")
	return a.runContainer(cmd, container.RunOptions{
		Image:   image,
		Command: append([]string{"trellis", "ipython"}, args...),
		Optional: []container.ArgPair{
			{Flag: "--rm"},
			{Flag: "-it"},
			{Flag: "--name", Value: containerName},
		},
		Mounts:    a.Project.Mounts(a.Config.ContainerRoot, a.Config.Volumes),
		ExtraArgs: extraArgs,
	})
}
