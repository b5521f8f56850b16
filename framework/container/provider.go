package container

import "github.com/pkg/errors"

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider groups the wiring for one area of an application.
//
// Register puts instances into the engine. Boot runs after every provider
// has registered, so it is the place to CreateInstance anything that
// depends on services owned by other providers.
//
//	type MailProvider struct{ container.BaseProvider }
//
//	func (p *MailProvider) Register(app *container.InstantiationService) error {
//	    app.SetService(IMailer, mail.NewSMTP())
//	    return nil
//	}
//
//	func (p *MailProvider) Boot(app *container.InstantiationService) error {
//	    _, err := app.CreateInstance(NewsletterCtor)
//	    return err
//	}
type ServiceProvider interface {
	// Register binds services into the engine.
	// Do NOT create dependents here, use Boot() for that.
	Register(app *InstantiationService) error

	// Boot is called after all providers are registered.
	Boot(app *InstantiationService) error
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct with a no-op Boot().
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *InstantiationService) error { return nil }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry runs the Register and Boot phases of ServiceProviders
// against one InstantiationService.
type ProviderRegistry struct {
	app        *InstantiationService
	providers  []ServiceProvider
	booted     bool
	registered map[ServiceProvider]bool
}

// NewProviderRegistry creates a registry bound to app.
func NewProviderRegistry(app *InstantiationService) *ProviderRegistry {
	return &ProviderRegistry{
		app:        app,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register calls provider.Register(). A provider registered twice is
// ignored; one registered after Boot() is booted immediately.
func (r *ProviderRegistry) Register(provider ServiceProvider) error {
	if r.registered[provider] {
		return nil
	}
	if err := provider.Register(r.app); err != nil {
		return errors.Wrapf(err, "register %T", provider)
	}
	r.registered[provider] = true
	r.providers = append(r.providers, provider)

	if r.booted {
		if err := provider.Boot(r.app); err != nil {
			return errors.Wrapf(err, "boot %T", provider)
		}
	}
	return nil
}

// Boot calls Boot() on every registered provider, in registration order,
// stopping at the first error. Later calls are no-ops.
func (r *ProviderRegistry) Boot() error {
	if r.booted {
		return nil
	}
	r.booted = true
	for _, provider := range r.providers {
		if err := provider.Boot(r.app); err != nil {
			return errors.Wrapf(err, "boot %T", provider)
		}
	}
	return nil
}

// Booted returns true if Boot() has been called.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns all registered providers.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.providers }
