package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/WietRob/ai-router-system/pkg/domain/model"
	"github.com/WietRob/ai-router-system/pkg/usecase"
	"github.com/m-mizutani/gt"
)

// MockFetcher is a mock implementation of Fetcher
type MockFetcher struct {
	fetchFunc  func(ctx context.Context, url string) ([]byte, error)
	fetchCalls []string
}

func (m *MockFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	m.fetchCalls = append(m.fetchCalls, url)
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, url)
	}
	return nil, errors.New("mock not configured")
}

func testManifest(t *testing.T) *model.Manifest {
	t.Helper()
	root := t.TempDir()

	return &model.Manifest{
		ConfigDir: filepath.Join(root, "ai-config"),
		ProjectDirs: []string{
			filepath.Join(root, "projects", "features"),
			filepath.Join(root, "projects", "architecture"),
			filepath.Join(root, "projects", "documentation"),
		},
		BaseURL: "https://example.com/scripts",
		Scripts: []model.Script{
			{Name: "smart_router.py"},
			{Name: "file_router.py"},
			{Name: "cursor_integration.py"},
		},
	}
}

func TestSetupUseCase_Run_Success(t *testing.T) {
	ctx := context.Background()
	manifest := testManifest(t)

	mock := &MockFetcher{
		fetchFunc: func(ctx context.Context, url string) ([]byte, error) {
			return []byte("#!/usr/bin/env python3\n# " + url + "\n"), nil
		},
	}

	uc := usecase.NewSetup(mock)

	report, err := uc.Run(ctx, manifest)
	gt.NoError(t, err)
	gt.Value(t, report).NotNil()
	gt.Value(t, report.RunID).NotEqual("")
	gt.Equal(t, len(report.Failed()), 0)

	// All four directories exist
	gt.Equal(t, len(report.Dirs), 4)
	for _, dir := range report.Dirs {
		info, err := os.Stat(dir)
		gt.NoError(t, err)
		gt.True(t, info.IsDir())
	}

	// All three scripts are on disk with the executable bit set
	gt.Equal(t, len(report.Scripts), 3)
	for _, script := range report.Scripts {
		gt.NoError(t, script.Err)

		info, err := os.Stat(script.Path)
		gt.NoError(t, err)
		gt.True(t, info.Mode().Perm()&0100 != 0)
		gt.Number(t, info.Size()).Greater(int64(0))
	}

	// Fetches happen in manifest order
	gt.Equal(t, len(mock.fetchCalls), 3)
	gt.String(t, mock.fetchCalls[0]).Contains("smart_router.py")
	gt.String(t, mock.fetchCalls[1]).Contains("file_router.py")
	gt.String(t, mock.fetchCalls[2]).Contains("cursor_integration.py")
}

func TestSetupUseCase_Run_FetchFailureContinues(t *testing.T) {
	ctx := context.Background()
	manifest := testManifest(t)

	mock := &MockFetcher{
		fetchFunc: func(ctx context.Context, url string) ([]byte, error) {
			if filepath.Base(url) == "file_router.py" {
				return nil, errors.New("connection reset")
			}
			return []byte("#!/usr/bin/env python3\n"), nil
		},
	}

	uc := usecase.NewSetup(mock)

	report, err := uc.Run(ctx, manifest)
	gt.NoError(t, err)

	// The failure did not stop the later download
	gt.Equal(t, len(mock.fetchCalls), 3)

	failed := report.Failed()
	gt.Equal(t, len(failed), 1)
	gt.Equal(t, failed[0].Name, "file_router.py")
	gt.String(t, failed[0].Err.Error()).Contains("failed to fetch script")

	configDir, err := manifest.ConfigPath()
	gt.NoError(t, err)

	_, err = os.Stat(filepath.Join(configDir, "smart_router.py"))
	gt.NoError(t, err)
	_, err = os.Stat(filepath.Join(configDir, "cursor_integration.py"))
	gt.NoError(t, err)
}

func TestSetupUseCase_Run_Idempotent(t *testing.T) {
	ctx := context.Background()
	manifest := testManifest(t)

	mock := &MockFetcher{
		fetchFunc: func(ctx context.Context, url string) ([]byte, error) {
			return []byte("first version\n"), nil
		},
	}

	uc := usecase.NewSetup(mock)

	_, err := uc.Run(ctx, manifest)
	gt.NoError(t, err)

	// Re-running with existing directories and files overwrites the scripts
	mock.fetchFunc = func(ctx context.Context, url string) ([]byte, error) {
		return []byte("second version\n"), nil
	}

	report, err := uc.Run(ctx, manifest)
	gt.NoError(t, err)
	gt.Equal(t, len(report.Failed()), 0)

	content, err := os.ReadFile(report.Scripts[0].Path)
	gt.NoError(t, err)
	gt.Equal(t, string(content), "second version\n")
}

func TestSetupUseCase_Run_MarksExistingFilesExecutable(t *testing.T) {
	ctx := context.Background()
	manifest := testManifest(t)

	configDir, err := manifest.ConfigPath()
	gt.NoError(t, err)
	gt.NoError(t, os.MkdirAll(configDir, 0755))

	// An unrelated file already in the config directory
	stale := filepath.Join(configDir, "notes.txt")
	gt.NoError(t, os.WriteFile(stale, []byte("notes"), 0644))

	mock := &MockFetcher{
		fetchFunc: func(ctx context.Context, url string) ([]byte, error) {
			return []byte("#!/usr/bin/env python3\n"), nil
		},
	}

	_, err = usecase.NewSetup(mock).Run(ctx, manifest)
	gt.NoError(t, err)

	info, err := os.Stat(stale)
	gt.NoError(t, err)
	gt.True(t, info.Mode().Perm()&0100 != 0)
}
