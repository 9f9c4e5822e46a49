package usecase

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/WietRob/ai-router-system/pkg/domain/interfaces"
	"github.com/WietRob/ai-router-system/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// routerConfigFile is written by smart_router.py once the user runs its
// setup command; its absence just means setup has not been completed yet.
const routerConfigFile = "router_config.json"

type statusUseCase struct{}

// NewStatus creates a new instance of StatusUseCase
func NewStatus() interfaces.StatusUseCase {
	return &statusUseCase{}
}

// Check inspects the workspace described by the manifest and reports which
// directories and scripts are in place
func (uc *statusUseCase) Check(ctx context.Context, manifest *model.Manifest) (*model.InstallStatus, error) {
	logger := ctxlog.From(ctx)

	configDir, err := manifest.ConfigPath()
	if err != nil {
		return nil, err
	}

	projectDirs, err := manifest.ProjectPaths()
	if err != nil {
		return nil, err
	}

	status := &model.InstallStatus{
		ConfigDir: configDir,
	}

	for _, dir := range append([]string{configDir}, projectDirs...) {
		status.Dirs = append(status.Dirs, model.DirStatus{
			Path:   dir,
			Exists: isDir(dir),
		})
	}

	for _, script := range manifest.Scripts {
		status.Scripts = append(status.Scripts, checkScript(configDir, script))
	}

	routerCfg, err := uc.loadRouterConfig(configDir)
	if err != nil {
		return nil, err
	}
	if routerCfg != nil {
		status.RouterConfig = routerCfg
		// The API key is masked by the logging filter
		logger.Info("Router configuration found",
			"config", routerCfg,
		)
	}

	logger.Info("Workspace checked",
		"config_dir", configDir,
		"ready", status.Ready(),
	)

	return status, nil
}

// loadRouterConfig reads the toolkit's own config file when present
func (uc *statusUseCase) loadRouterConfig(configDir string) (*model.RouterConfig, error) {
	path := filepath.Join(configDir, routerConfigFile)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read router config", goerr.V("path", path))
	}

	var cfg model.RouterConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse router config", goerr.V("path", path))
	}

	return &cfg, nil
}

func checkScript(configDir string, script model.Script) model.ScriptStatus {
	path := filepath.Join(configDir, script.Name)
	status := model.ScriptStatus{
		Name: script.Name,
		Path: path,
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return status
	}

	status.Exists = true
	status.Executable = info.Mode().Perm()&0100 != 0
	status.Size = info.Size()
	return status
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
