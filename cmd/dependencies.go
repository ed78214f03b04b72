package cmd

import (
	"context"
	"crypto-analysis/config"
	"crypto-analysis/pkg/cache"
	"crypto-analysis/pkg/logger"
	"crypto-analysis/pkg/middleware"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

type AppDependency struct {
	cfg       *config.Config
	log       *logger.Logger
	validator *goValidator.Validate
	echo      *echo.Echo
	cache     cache.Cache
}

func NewAppDependency(ctx context.Context, configPath string) (*AppDependency, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	e.Use(middleware.NewRequestLoggerMiddleware(log))
	e.Use(middleware.NewRateLimiterMiddleware(cfg.API.RateLimit, cfg.API.RateBurst, cfg.API.RateExpiresIn))

	return &AppDependency{
		cfg:       cfg,
		log:       log,
		validator: goValidator.New(),
		echo:      e,
		cache:     cache.NewCache(cfg.Cache.DefaultExpiration, cfg.Cache.CleanupInterval),
	}, nil
}

func (d *AppDependency) Close() error {
	d.log.Info("Closing app dependency")
	d.cache.Flush()
	// stderr/stdout sync returns EINVAL on some platforms
	_ = d.log.Sync()
	return nil
}
