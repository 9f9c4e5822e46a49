package cli

import (
	"context"
	"log/slog"

	"github.com/WietRob/ai-router-system/pkg/cli/config"
	"github.com/WietRob/ai-router-system/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdStatus() *cli.Command {
	var manifestCfg config.Manifest

	return &cli.Command{
		Name:  "status",
		Usage: "Verify the installed workspace",
		Flags: manifestCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			manifest, err := manifestCfg.Load()
			if err != nil {
				return goerr.Wrap(err, "failed to load install manifest")
			}

			status, err := usecase.NewStatus().Check(ctx, manifest)
			if err != nil {
				return goerr.Wrap(err, "failed to check workspace")
			}

			for _, dir := range status.Dirs {
				logger.Info("Directory",
					slog.String("path", dir.Path),
					slog.Bool("exists", dir.Exists),
				)
			}
			for _, script := range status.Scripts {
				logger.Info("Script",
					slog.String("name", script.Name),
					slog.Bool("exists", script.Exists),
					slog.Bool("executable", script.Executable),
					slog.Int64("size_bytes", script.Size),
				)
			}

			if !status.Ready() {
				return goerr.New("workspace is not ready, run setup first",
					goerr.V("config_dir", status.ConfigDir),
				)
			}

			logger.Info("Workspace is ready", slog.String("config_dir", status.ConfigDir))
			return nil
		},
	}
}
