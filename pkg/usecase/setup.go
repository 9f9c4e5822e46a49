package usecase

import (
	"context"
	"os"
	"path/filepath"

	"github.com/WietRob/ai-router-system/pkg/domain/interfaces"
	"github.com/WietRob/ai-router-system/pkg/domain/model"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const (
	dirMode    = 0755
	scriptMode = 0755
)

type setupUseCase struct {
	fetcher interfaces.Fetcher
}

// NewSetup creates a new instance of SetupUseCase
func NewSetup(fetcher interfaces.Fetcher) interfaces.SetupUseCase {
	return &setupUseCase{
		fetcher: fetcher,
	}
}

// Run creates the workspace directories, downloads the manifest scripts into
// the config directory, and marks every file there executable. A failed
// download is recorded in the report and does not stop the remaining
// downloads; directory creation failure is fatal.
func (uc *setupUseCase) Run(ctx context.Context, manifest *model.Manifest) (*model.SetupReport, error) {
	logger := ctxlog.From(ctx)

	report := &model.SetupReport{
		RunID: uuid.NewString(),
	}

	configDir, err := manifest.ConfigPath()
	if err != nil {
		return nil, err
	}
	report.ConfigDir = configDir

	projectDirs, err := manifest.ProjectPaths()
	if err != nil {
		return nil, err
	}

	logger.Info("Starting bootstrap",
		"run_id", report.RunID,
		"config_dir", configDir,
		"base_url", manifest.BaseURL,
		"script_count", len(manifest.Scripts),
	)

	// Idempotent: pre-existing directories are not an error
	for _, dir := range append([]string{configDir}, projectDirs...) {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return nil, goerr.Wrap(err, "failed to create directory", goerr.V("dir", dir))
		}
		report.Dirs = append(report.Dirs, dir)
		logger.Debug("Ensured directory", "dir", dir)
	}

	for _, script := range manifest.Scripts {
		result := uc.fetchScript(ctx, manifest, script, configDir)
		report.Scripts = append(report.Scripts, result)

		if result.Err != nil {
			logger.Error("Failed to install script",
				"name", script.Name,
				"url", result.URL,
				"error", result.Err,
			)
			continue
		}

		logger.Info("Installed script",
			"name", script.Name,
			"path", result.Path,
			"size_bytes", result.Size,
		)
	}

	if err := uc.markExecutable(ctx, configDir); err != nil {
		return nil, err
	}

	logger.Info("Bootstrap finished",
		"run_id", report.RunID,
		"installed", len(report.Scripts)-len(report.Failed()),
		"failed", len(report.Failed()),
	)

	return report, nil
}

// fetchScript downloads one script and writes it into the config directory,
// overwriting any previous copy
func (uc *setupUseCase) fetchScript(ctx context.Context, manifest *model.Manifest, script model.Script, configDir string) model.FetchResult {
	result := model.FetchResult{Name: script.Name}

	url, err := manifest.ScriptURL(script)
	if err != nil {
		result.Err = err
		return result
	}
	result.URL = url

	data, err := uc.fetcher.Fetch(ctx, url)
	if err != nil {
		result.Err = goerr.Wrap(err, "failed to fetch script", goerr.V("name", script.Name))
		return result
	}

	destPath := filepath.Join(configDir, script.Name)
	if err := os.WriteFile(destPath, data, scriptMode); err != nil {
		result.Err = goerr.Wrap(err, "failed to write script", goerr.V("path", destPath))
		return result
	}

	result.Path = destPath
	result.Size = int64(len(data))
	return result
}

// markExecutable sets the executable bit on every regular file in dir
func (uc *setupUseCase) markExecutable(ctx context.Context, dir string) error {
	logger := ctxlog.From(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return goerr.Wrap(err, "failed to read config directory", goerr.V("dir", dir))
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if err := os.Chmod(path, scriptMode); err != nil {
			return goerr.Wrap(err, "failed to set executable permission", goerr.V("path", path))
		}
		logger.Debug("Marked executable", "path", path)
	}

	return nil
}
