// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"trellis-docker/internal/config"
	"trellis-docker/internal/container"
	"trellis-docker/internal/project"
)

// App wires the CLI's shared dependencies: the discovered project, its
// configuration, the chosen container engine and the logger. Every command
// handler goes through the package-level app built once per process
// invocation.
type App struct {
	Project *project.Project
	Config  *config.Config
	Engine  container.Engine
	Logger  *log.Logger
}

var app *App

// setupApp builds the App before any subcommand runs: locate the project,
// load its configuration, and probe for a reachable container runtime.
// An unreachable runtime is a configuration error for every subcommand, so it
// is rejected here rather than in each handler.
func setupApp(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	proj, err := project.Discover()
	if err != nil {
		return err
	}

	cfg, err := config.Load(proj.Path, cfgFile)
	if err != nil {
		// Surface the problem but keep going with defaults; a broken config
		// file should not block packaging commands that don't need it.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		cfg = config.DefaultConfig()
	}

	var engine container.Engine
	if cfg.Engine == "" || cfg.Engine == "auto" {
		engine, err = container.AutoDetectEngine()
	} else {
		engine, err = container.NewEngine(container.EngineType(cfg.Engine))
	}
	if err != nil {
		return err
	}

	logger.Debug("selected container engine", "engine", engine.Name(), "project", proj.Name())

	app = &App{
		Project: proj,
		Config:  cfg,
		Engine:  engine,
		Logger:  logger,
	}
	return nil
}

// reportError prints the styled actionable rendering of err (suggestions,
// error chain in verbose mode) before handing it back to the runner, which
// only shows the plain message.
func (a *App) reportError(err error) error {
	fmt.Fprintf(os.Stderr, "\n%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))
	return err
}

// resolveImage picks the image tag for a command: explicit flag first, then
// the config file, then the project directory name.
func (a *App) resolveImage(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if a.Config.Image != "" {
		return a.Config.Image
	}
	return a.Project.DefaultImage()
}

// requireImage ensures the image is present locally before a run-family
// command starts. On a miss the error lists the images that are available.
func (a *App) requireImage(cmd *cobra.Command, image string) error {
	exists, err := a.Engine.ImageExists(cmd.Context(), image)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	available, listErr := a.Engine.ListImages(cmd.Context())
	if listErr != nil {
		a.Logger.Debug("failed to list local images", "error", listErr)
	}
	return a.reportError(container.MissingImageError(a.Engine.Name(), image, available))
}

// runContainer executes a composed run invocation with the parent's standard
// streams attached and relays the child's exit code verbatim through ExitError.
func (a *App) runContainer(cmd *cobra.Command, opts container.RunOptions) error {
	opts.Stdin = os.Stdin
	opts.Stdout = os.Stdout
	opts.Stderr = os.Stderr

	a.Logger.Debug("running container", "engine", a.Engine.Name(), "image", opts.Image)

	result, err := a.Engine.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}
	if result.Error != nil {
		return a.reportError(result.Error)
	}
	if result.ExitCode != 0 {
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}
