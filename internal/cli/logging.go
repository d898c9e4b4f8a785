package cli

import (
	"context"

	"github.com/fatih/color"

	"github.com/0chandansharma/dataengg/internal/cloudlog"
	"github.com/0chandansharma/dataengg/internal/config"
)

// openLogger connects to Cloud Logging for the command. A setup failure
// is never fatal: the command continues with local output only.
func openLogger(ctx context.Context, cfg *config.Config) *cloudlog.Logger {
	logger, err := cloudlog.New(ctx, cfg.Project, cfg.LogName)
	if err != nil {
		color.Yellow("⚠ Cloud Logging unavailable, continuing with local output only: %v", err)
		return nil
	}
	return logger
}
