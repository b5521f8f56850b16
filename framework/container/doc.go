// Package container provides a small dependency-injection container: a
// service registry keyed by opaque identifiers, and an instantiation engine
// that builds objects from their declared service dependencies.
//
// # Overview
//
// Go has no constructor decorators, so dependencies are declared in a side
// table keyed by a *Ctor token, and construction goes through an explicit
// build function that receives the spliced argument list.
//
// # Lifecycle
//
//  1. Create: svc := container.NewInstantiationService()
//  2. Register services: svc.SetService(ILogService, logger)
//  3. Construct dependents: svc.CreateInstance(GreeterCtor, "Hello")
//
// Register every service a constructor needs before calling
// CreateInstance. Nothing here is safe for concurrent use.
//
// # Identifiers
//
//	var ILogService = container.NewIdentifier("LogService")
//
// Identity is the token, not the name: two NewIdentifier("x") calls give two
// different services.
//
// # Declaring dependencies
//
//	var GreeterCtor = container.NewCtor("Greeter", func(args []any) any {
//	    prefix, _ := args[0].(string)
//	    return &Greeter{Prefix: prefix, Log: args[1].(logrus.FieldLogger)}
//	})
//
//	func init() {
//	    container.Declare(GreeterCtor, ILogService, 1)
//	}
//
// # Argument reconciliation
//
// The index of the first declared dependency fixes how many static
// arguments a constructor takes. If CreateInstance gets a different number,
// it logs a warning and pads with nils or drops the extra arguments, then
// builds anyway:
//
//	// GreeterCtor declares ILogService at index 1
//	svc.CreateInstance(GreeterCtor)             // warn, args = [nil, log]
//	svc.CreateInstance(GreeterCtor, "a", "b")   // warn, args = ["a", log]
//
// This can hide caller bugs. Treat the warning as one.
//
// # Service Providers
//
//	registry := container.NewProviderRegistry(svc)
//	_ = registry.Register(&MailProvider{})
//	_ = registry.Boot()
package container
