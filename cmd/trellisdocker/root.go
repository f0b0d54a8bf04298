// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for trellis-docker.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"trellis-docker/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging and full error chains
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "trellis-docker",
		Short: "Package a trellis project with Docker",
		Long: TitleStyle.Render("trellis-docker") + SubtitleStyle.Render(" - containerize your trellis project") + `

trellis-docker builds a container image for the current trellis project and
runs pipeline runs, interactive shells and notebook servers inside it, with
the project's data directories mounted from the host.

` + SubtitleStyle.Render("Quick Start:") + `
  1. cd into your trellis project
  2. trellis-docker build           Build the project image
  3. trellis-docker run             Run the pipeline in a container

` + SubtitleStyle.Render("Examples:") + `
  trellis-docker build --image myproject:latest
  trellis-docker run -- --pipeline training
  trellis-docker jupyter lab --port 9999
  trellis-docker cmd trellis test`,
		PersistentPreRunE: setupApp,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .trellis-docker.yaml in the project root)")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(ipythonCmd)
	rootCmd.AddCommand(jupyterCmd)
	rootCmd.AddCommand(cmdCmd)
	rootCmd.AddCommand(diveCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
