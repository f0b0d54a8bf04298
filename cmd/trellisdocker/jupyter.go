// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"trellis-docker/internal/config"
	"trellis-docker/internal/container"
	"trellis-docker/internal/issue"
	"trellis-docker/internal/project"
)

// Notebook servers always listen on 8888 inside the container (the port the
// packaging Dockerfile exposes); only the host side is configurable.
const notebookContainerPort = 8888

var (
	jupyterImage      string
	jupyterPort       int
	jupyterDockerArgs string

	// jupyterCmd groups the notebook server commands
	jupyterCmd = &cobra.Command{
		Use:   "jupyter",
		Short: "Run a Jupyter notebook or lab server in a container",
	}

	jupyterNotebookCmd = &cobra.Command{
		Use:   "notebook [flags] [-- notebook-args...]",
		Short: "Run a Jupyter notebook server in a container",
		Long: `Run a Jupyter notebook server in a container.

Any trailing arguments are passed to the 'trellis jupyter notebook' command
inside the container as is.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJupyter(cmd, args, "notebook")
		},
	}

	jupyterLabCmd = &cobra.Command{
		Use:   "lab [flags] [-- lab-args...]",
		Short: "Run a Jupyter lab server in a container",
		Long: `Run a Jupyter lab server in a container.

Any trailing arguments are passed to the 'trellis jupyter lab' command
inside the container as is.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJupyter(cmd, args, "lab")
		},
	}
)

func init() {
	for _, sub := range []*cobra.Command{jupyterNotebookCmd, jupyterLabCmd} {
		addImageFlag(sub, &jupyterImage)
		addDockerArgsFlag(sub, &jupyterDockerArgs, "run")
		sub.Flags().IntVar(&jupyterPort, "port", 0,
			fmt.Sprintf("host port to publish to (default %d)", config.DefaultNotebookPort))
		sub.Flags().SetInterspersed(false)
		jupyterCmd.AddCommand(sub)
	}
}

func runJupyter(cmd *cobra.Command, args []string, flavor string) error {
	a := app

	image := a.resolveImage(jupyterImage)
	if err := a.requireImage(cmd, image); err != nil {
		return err
	}

	port := jupyterPort
	if port == 0 {
		port = a.Config.NotebookPort
	}
	if project.PortInUse(port) {
		return a.reportError(issue.NewErrorContext().
			WithOperation("publish notebook server port").
			WithResource(fmt.Sprintf("%d", port)).
			WithSuggestion("Specify an alternative port number with --port").
			BuildError())
	}

	extraArgs, err := splitDockerArgs(jupyterDockerArgs)
	if err != nil {
		return err
	}

	containerName := container.MakeContainerName(image, "jupyter-"+flavor)
	return a.runContainer(cmd, container.RunOptions{
		Image:   image,
		Command: append([]string{"trellis", "jupyter", flavor}, container.AppendNotebookArgs(args)...),
		Required: []container.ArgPair{
			{Flag: "-p", Value: fmt.Sprintf("%d:%d", port, notebookContainerPort)},
		},
		Optional: []container.ArgPair{
			{Flag: "--rm"},
			{Flag: "-it"},
			{Flag: "--name", Value: containerName},
		},
		Mounts:    a.Project.Mounts(a.Config.ContainerRoot, a.Config.Volumes),
		ExtraArgs: extraArgs,
	})
}
