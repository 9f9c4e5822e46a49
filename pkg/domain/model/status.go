package model

// DirStatus reports whether a workspace directory exists
type DirStatus struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

// ScriptStatus reports the install state of a single script
type ScriptStatus struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	Exists     bool   `json:"exists"`
	Executable bool   `json:"executable"`
	Size       int64  `json:"size"`
}

// RouterConfig is the configuration file written by the installed toolkit.
// The field names mirror router_config.json; ClaudeAPIKey is redacted by
// the logging filter.
type RouterConfig struct {
	ClaudeAPIKey  string  `json:"claude_api_key"`
	OllamaBaseURL string  `json:"ollama_base_url"`
	MonthlyBudget float64 `json:"monthly_budget"`
}

// InstallStatus represents the verification result of an installed workspace
type InstallStatus struct {
	ConfigDir    string         `json:"config_dir"`
	Dirs         []DirStatus    `json:"dirs"`
	Scripts      []ScriptStatus `json:"scripts"`
	RouterConfig *RouterConfig  `json:"router_config,omitempty"`
}

// Ready returns true when every directory exists and every script is
// installed with the executable bit set
func (s *InstallStatus) Ready() bool {
	for _, d := range s.Dirs {
		if !d.Exists {
			return false
		}
	}
	for _, sc := range s.Scripts {
		if !sc.Exists || !sc.Executable {
			return false
		}
	}
	return true
}
