package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/shandysiswandi/golaunch/internal/launch"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.launch.enabled") {
		closer, err := launch.New(launch.Dependency{
			Config:   a.config,
			Router:   a.router,
			Context:  a.ctx,
			NumberID: a.snowflake,
		})
		if err != nil {
			slog.Error("failed to init module launch", "error", err)
			os.Exit(1)
		}
		if closer != nil {
			if a.closerFn == nil {
				a.closerFn = map[string]func(context.Context) error{}
			}
			a.closerFn["Launch"] = closer
		}
	}
}
