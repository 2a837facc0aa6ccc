package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/golaunch/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkglog"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	configPath string
	config     pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	snowflake pkguid.NumberID
	goroutine *pkgroutine.Manager

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	//
	closerFn map[string]func(context.Context) error
}

// New wires the application from the config file at configPath. An empty
// path selects /config/config.yaml, or ./config/config.yaml when LOCAL=true.
func New(configPath string) *App {
	pkglog.InitLogging("info")

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:        ctx,
		cancel:     cancel,
		configPath: configPath,
	}

	app.initConfig()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}

// Handler exposes the root HTTP handler, CORS included.
func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}
