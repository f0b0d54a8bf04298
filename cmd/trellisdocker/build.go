// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"trellis-docker/internal/container"
	"trellis-docker/internal/project"
)

var (
	buildUID        int
	buildGID        int
	buildImage      string
	buildDockerArgs string

	// buildCmd builds a container image for the project
	buildCmd = &cobra.Command{
		Use:   "build",
		Short: "Build a container image for the project",
		Long: `Build a container image for the project.

Copies the packaging templates (Dockerfile, .dockerignore, .dive-ci) into the
project root if they are not already present, then builds the image with the
project as the build context. The trellis user inside the container is created
with the host uid/gid so files written to mounted volumes stay owned by you.`,
		Args: cobra.NoArgs,
		RunE: runBuild,
	}
)

func init() {
	buildCmd.Flags().IntVar(&buildUID, "uid", project.UnsetID,
		"user id for the trellis user inside the container (default is the current user's uid)")
	buildCmd.Flags().IntVar(&buildGID, "gid", project.UnsetID,
		"group id for the trellis user inside the container (default is the current user's gid)")
	addImageFlag(buildCmd, &buildImage)
	addDockerArgsFlag(buildCmd, &buildDockerArgs, "build")
}

func runBuild(cmd *cobra.Command, args []string) error {
	a := app

	uid, gid, err := project.ResolveUIDGID(buildUID, buildGID)
	if err != nil {
		return err
	}

	if err := a.Project.CopyTemplates(a.Logger, project.TemplateFiles...); err != nil {
		return err
	}

	extraArgs, err := splitDockerArgs(buildDockerArgs)
	if err != nil {
		return err
	}

	image := a.resolveImage(buildImage)
	a.Logger.Debug("building image", "image", image, "uid", uid, "gid", gid)

	buildErr := a.Engine.Build(cmd.Context(), container.BuildOptions{
		ContextDir: a.Project.Path,
		Image:      image,
		UID:        uid,
		GID:        gid,
		ExtraArgs:  extraArgs,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	})
	if buildErr != nil {
		return a.reportError(buildErr)
	}

	fmt.Printf("%s Built image %s\n", SuccessStyle.Render("✓"), image)
	return nil
}
