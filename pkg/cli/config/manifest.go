package config

import (
	"github.com/WietRob/ai-router-system/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Manifest holds install manifest configuration
type Manifest struct {
	Path      string
	ConfigDir string
	BaseURL   string
}

// Flags returns CLI flags for manifest configuration
func (c *Manifest) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "manifest",
			Usage:       "Path to a TOML install manifest (default: built-in)",
			Destination: &c.Path,
			Sources:     cli.EnvVars("AIROUTER_MANIFEST"),
		},
		&cli.StringFlag{
			Name:        "config-dir",
			Usage:       "Override the script install directory",
			Destination: &c.ConfigDir,
			Sources:     cli.EnvVars("AIROUTER_CONFIG_DIR"),
		},
		&cli.StringFlag{
			Name:        "base-url",
			Usage:       "Override the raw-content base URL",
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("AIROUTER_BASE_URL"),
		},
	}
}

// Load resolves the manifest and applies command line overrides
func (c *Manifest) Load() (*model.Manifest, error) {
	var (
		manifest *model.Manifest
		err      error
	)

	if c.Path != "" {
		manifest, err = model.LoadManifest(c.Path)
	} else {
		manifest, err = model.DefaultManifest()
	}
	if err != nil {
		return nil, err
	}

	if c.ConfigDir != "" {
		manifest.ConfigDir = c.ConfigDir
	}
	if c.BaseURL != "" {
		manifest.BaseURL = c.BaseURL
	}

	if err := manifest.Validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}
