package providers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/km-arc/go-instantiation/framework/config"
	"github.com/km-arc/go-instantiation/framework/container"
	gohttp "github.com/km-arc/go-instantiation/framework/http"
	"github.com/km-arc/go-instantiation/framework/routing"
)

// Identifiers of the services the framework providers register.
var (
	ConfigID = container.NewIdentifier("config")
	LoggerID = container.NewIdentifier("logger")
	RouterID = container.NewIdentifier("router")
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider registers an already loaded configuration.
//
// Registered services:
//   - ConfigID → *config.Config
type ConfigServiceProvider struct {
	container.BaseProvider
	Config *config.Config
}

func (p *ConfigServiceProvider) Register(app *container.InstantiationService) error {
	app.SetService(ConfigID, p.Config)
	return nil
}

// ── LogServiceProvider ────────────────────────────────────────────────────────

// LogServiceProvider registers the application logger.
//
// Registered services:
//   - LoggerID → logrus.FieldLogger
type LogServiceProvider struct {
	container.BaseProvider
	Logger logrus.FieldLogger
}

func (p *LogServiceProvider) Register(app *container.InstantiationService) error {
	app.SetService(LoggerID, p.Logger)
	return nil
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RouterCtor builds the diagnostics router. It needs the logger and the
// instantiation service.
var RouterCtor = container.NewCtor("Router", func(args []any) any {
	log := args[0].(logrus.FieldLogger)
	app := args[1].(*container.InstantiationService)

	r := routing.New(log)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		gohttp.NewResponse(w).Success(map[string]any{"status": "ok"})
	})
	r.Prefix("/services", func(sr *routing.Router) {
		sr.Get("/", gohttp.ServicesHandler(app.Services()))
		sr.Get("/{name}", gohttp.ServiceHandler(app.Services()))
	})
	return r
})

func init() {
	container.Declare(RouterCtor, LoggerID, 0)
	container.Declare(RouterCtor, container.InstantiationServiceID, 1)
}

// RoutingServiceProvider builds the router once every provider has
// registered, so the logger is available.
//
// Registered services:
//   - RouterID → *routing.Router
type RoutingServiceProvider struct{}

func (p *RoutingServiceProvider) Register(_ *container.InstantiationService) error { return nil }

func (p *RoutingServiceProvider) Boot(app *container.InstantiationService) error {
	router, err := container.Create[*routing.Router](app, RouterCtor)
	if err != nil {
		return err
	}
	app.SetService(RouterID, router)
	return nil
}
