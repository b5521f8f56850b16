package app

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/km-arc/go-instantiation/framework/config"
	"github.com/km-arc/go-instantiation/framework/container"
	"github.com/km-arc/go-instantiation/framework/logging"
	"github.com/km-arc/go-instantiation/framework/providers"
	"github.com/km-arc/go-instantiation/framework/routing"
)

// Application is the top-level application object.
// It embeds the InstantiationService so user code can call
// app.SetService() and app.CreateInstance() directly.
type Application struct {
	*container.InstantiationService
	Providers *container.ProviderRegistry
}

// New loads config, builds the logger and engine, and registers the
// framework providers.
func New(envFiles ...string) (*Application, error) {
	cfg := config.Load(envFiles...)
	return NewWithConfig(cfg, logging.New(cfg.Log))
}

// NewWithConfig is New with a preloaded config and logger.
func NewWithConfig(cfg *config.Config, log logrus.FieldLogger) (*Application, error) {
	svc := container.NewInstantiationService(container.WithLogger(log))
	registry := container.NewProviderRegistry(svc)

	app := &Application{
		InstantiationService: svc,
		Providers:            registry,
	}

	for _, p := range []container.ServiceProvider{
		&providers.ConfigServiceProvider{Config: cfg},
		&providers.LogServiceProvider{Logger: log},
		&providers.RoutingServiceProvider{},
	} {
		if err := registry.Register(p); err != nil {
			return nil, err
		}
	}
	return app, nil
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) error {
	return a.Providers.Register(provider)
}

// Boot runs the Boot() phase on all providers.
func (a *Application) Boot() error {
	return a.Providers.Boot()
}

// Config resolves *config.Config from the container. It is nil when the
// service is missing or was replaced with another type.
func (a *Application) Config() *config.Config {
	cfg, _ := container.Resolve[*config.Config](a.InstantiationService, providers.ConfigID)
	return cfg
}

// Logger resolves the application logger.
func (a *Application) Logger() logrus.FieldLogger {
	log, _ := container.Resolve[logrus.FieldLogger](a.InstantiationService, providers.LoggerID)
	return log
}

// Router resolves the router. It is nil until Boot().
func (a *Application) Router() *routing.Router {
	r, _ := container.Resolve[*routing.Router](a.InstantiationService, providers.RouterID)
	return r
}

// Run boots the application (if needed) and starts the HTTP server.
func (a *Application) Run() error {
	if !a.Providers.Booted() {
		if err := a.Boot(); err != nil {
			return errors.Wrap(err, "boot")
		}
	}
	cfg := a.Config()
	if cfg == nil {
		return errors.Errorf("service [%s] is missing or not a *config.Config", providers.ConfigID)
	}
	router := a.Router()
	if router == nil {
		return errors.Errorf("service [%s] is missing or not a *routing.Router", providers.RouterID)
	}
	addr := ":" + cfg.App.Port
	log := a.Logger()
	if log == nil {
		log = logrus.StandardLogger()
	}
	log.WithFields(logrus.Fields{
		"app":  cfg.App.Name,
		"env":  cfg.App.Env,
		"addr": addr,
	}).Info("serving diagnostics")
	return errors.Wrap(http.ListenAndServe(addr, router), "server error")
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }
