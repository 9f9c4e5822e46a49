package model

import (
	_ "embed"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

//go:embed manifest.toml
var defaultManifest []byte

// Script is a single remote script to install
type Script struct {
	Name string `toml:"name"` // File name, relative to the manifest base URL
}

// Manifest describes what the bootstrap installs and where
type Manifest struct {
	ConfigDir   string   `toml:"config_dir"`   // Destination for downloaded scripts
	ProjectDirs []string `toml:"project_dirs"` // Workspace directories to create
	BaseURL     string   `toml:"base_url"`     // Raw-content base URL
	Scripts     []Script `toml:"scripts"`      // Download order is manifest order
}

// DefaultManifest returns the manifest embedded in the binary
func DefaultManifest() (*Manifest, error) {
	return parseManifest(defaultManifest)
}

// LoadManifest reads a manifest from a TOML file
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read manifest file", goerr.V("path", path))
	}

	m, err := parseManifest(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse manifest file", goerr.V("path", path))
	}
	return m, nil
}

func parseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal manifest")
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that the manifest has everything the setup flow needs
func (m *Manifest) Validate() error {
	if m.ConfigDir == "" {
		return goerr.New("manifest has no config_dir")
	}
	if m.BaseURL == "" {
		return goerr.New("manifest has no base_url")
	}
	if _, err := url.Parse(m.BaseURL); err != nil {
		return goerr.Wrap(err, "manifest base_url is not a valid URL", goerr.V("base_url", m.BaseURL))
	}
	if len(m.Scripts) == 0 {
		return goerr.New("manifest has no scripts")
	}
	for _, s := range m.Scripts {
		if s.Name == "" {
			return goerr.New("manifest script has no name")
		}
		if s.Name != filepath.Base(s.Name) {
			return goerr.New("manifest script name must be a bare file name", goerr.V("name", s.Name))
		}
	}
	return nil
}

// ConfigPath returns the config directory with ~ expanded
func (m *Manifest) ConfigPath() (string, error) {
	return expandHome(m.ConfigDir)
}

// ProjectPaths returns the project directories with ~ expanded
func (m *Manifest) ProjectPaths() ([]string, error) {
	paths := make([]string, 0, len(m.ProjectDirs))
	for _, dir := range m.ProjectDirs {
		p, err := expandHome(dir)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// ScriptURL returns the download URL for a script
func (m *Manifest) ScriptURL(s Script) (string, error) {
	u, err := url.JoinPath(m.BaseURL, s.Name)
	if err != nil {
		return "", goerr.Wrap(err, "failed to build script URL",
			goerr.V("base_url", m.BaseURL),
			goerr.V("name", s.Name),
		)
	}
	return u, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve user home directory", goerr.V("path", path))
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
