// SPDX-License-Identifier: MPL-2.0

// Package config loads the optional per-project packaging configuration.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"trellis-docker/internal/issue"
	"trellis-docker/internal/project"
)

const (
	// ConfigFileName is the name of the per-project config file (without extension).
	ConfigFileName = ".trellis-docker"
	// EnvPrefix namespaces environment variable overrides (TRELLIS_DOCKER_*).
	EnvPrefix = "TRELLIS_DOCKER"

	// DefaultContainerRoot is the in-container project home.
	DefaultContainerRoot = "/home/trellis"
	// DefaultNotebookPort is the host port notebook servers publish to.
	DefaultNotebookPort = 8888
)

// Config holds the per-project packaging settings. Every field has a working
// default; a config file is never required.
type Config struct {
	// Engine is the preferred container runtime ("docker", "podman" or "auto").
	Engine string `mapstructure:"engine"`
	// Image overrides the default image tag (project directory name).
	Image string `mapstructure:"image"`
	// ContainerRoot is the project home inside the container.
	ContainerRoot string `mapstructure:"container_root"`
	// Volumes are the project sub-paths bind mounted into run containers.
	Volumes []string `mapstructure:"volumes"`
	// NotebookPort is the host port notebook servers publish to.
	NotebookPort int `mapstructure:"notebook_port"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Engine:        "docker",
		ContainerRoot: DefaultContainerRoot,
		Volumes:       project.DefaultVolumes,
		NotebookPort:  DefaultNotebookPort,
	}
}

// Load reads the project configuration: built-in defaults, overlaid by an
// optional .trellis-docker.yaml in the project root (or the explicit file at
// overridePath), overlaid by TRELLIS_DOCKER_* environment variables.
func Load(projectPath, overridePath string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("engine", defaults.Engine)
	v.SetDefault("image", defaults.Image)
	v.SetDefault("container_root", defaults.ContainerRoot)
	v.SetDefault("volumes", defaults.Volumes)
	v.SetDefault("notebook_port", defaults.NotebookPort)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if overridePath != "" {
		v.SetConfigFile(overridePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(overridePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file is valid YAML").
				Wrap(err).
				BuildError()
		}
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(projectPath)
		if err := v.ReadInConfig(); err != nil {
			// A missing project config is fine; anything else is a user error.
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, issue.NewErrorContext().
					WithOperation("load configuration").
					WithResource(v.ConfigFileUsed()).
					WithSuggestion("Check that " + ConfigFileName + ".yaml is valid YAML").
					Wrap(err).
					BuildError()
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, issue.WrapWithOperation(err, "parse configuration")
	}

	return cfg, nil
}
