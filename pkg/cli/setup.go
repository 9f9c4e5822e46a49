package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/WietRob/ai-router-system/pkg/cli/config"
	"github.com/WietRob/ai-router-system/pkg/usecase"
	"github.com/WietRob/ai-router-system/pkg/utils/banner"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdSetup() *cli.Command {
	var (
		manifestCfg config.Manifest
		fetchCfg    config.Fetch
	)

	flags := append(manifestCfg.Flags(), fetchCfg.Flags()...)

	return &cli.Command{
		Name:    "setup",
		Aliases: []string{"s"},
		Usage:   "Create the workspace and install the router scripts",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			banner.Print(os.Stdout)

			manifest, err := manifestCfg.Load()
			if err != nil {
				return goerr.Wrap(err, "failed to load install manifest")
			}

			uc := usecase.NewSetup(fetchCfg.Configure())

			report, err := uc.Run(ctx, manifest)
			if err != nil {
				return goerr.Wrap(err, "bootstrap failed")
			}

			banner.PrintInstructions(os.Stdout, manifest)

			if failed := report.Failed(); len(failed) > 0 {
				names := make([]string, 0, len(failed))
				for _, f := range failed {
					names = append(names, f.Name)
				}
				return goerr.New("some scripts could not be installed",
					goerr.V("run_id", report.RunID),
					goerr.V("failed", names),
				)
			}

			logger.Info("Workspace ready",
				slog.String("run_id", report.RunID),
				slog.String("config_dir", report.ConfigDir),
			)
			return nil
		},
	}
}
