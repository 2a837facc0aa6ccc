package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkglog"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkguid"
)

//nolint:gochecknoglobals // fallback values for keys missing from the config file
var configDefaults = map[string]any{
	"tz":                          "UTC",
	"log.level":                   "info",
	"server.address.http":         ":8050",
	"server.compression":          true,
	"server.cors.allowed_origins": "*",
	"modules.launch.enabled":      true,
	"dataset.path":                "./data/spacex_launch_dash.csv",
	"dataset.format":              "auto",
	"dashboard.slider_step":       1000,
	"dashboard.chart_width":       960,
	"dashboard.chart_height":      480,
}

func (a *App) initConfig() {
	path := a.configPath
	if path == "" {
		path = "/config/config.yaml"
		if os.Getenv("LOCAL") == "true" {
			path = "./config/config.yaml"
		}
	}

	cfg, err := pkgconfig.NewViper(path, configDefaults)
	if err != nil {
		slog.Error("failed to init config", "path", path, "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	pkglog.InitLogging(cfg.GetString("log.level"))

	a.config = cfg
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(10)
	a.uuid = pkguid.NewUUID()

	sf, err := pkguid.NewSnowflake()
	if err != nil {
		slog.Error("failed to init snowflake", "error", err)
		os.Exit(1)
	}
	a.snowflake = sf
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid, pkgrouter.WithCompression(a.config.GetBool("server.compression")))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: a.config.GetArray("server.cors.allowed_origins"),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["HTTP Server"] = func(ctx context.Context) error {
		return a.httpServer.Shutdown(ctx)
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
