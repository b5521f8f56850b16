package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/km-arc/go-instantiation/framework/app"
	"github.com/km-arc/go-instantiation/framework/config"
	"github.com/km-arc/go-instantiation/framework/container"
	"github.com/km-arc/go-instantiation/framework/providers"
)

// IGreeter names the greeting service.
var IGreeter = container.NewIdentifier("greeter")

// Greeter is a sample service built through CreateInstance.
type Greeter struct {
	Greeting string
	Log      logrus.FieldLogger
	Config   *config.Config
}

// GreeterCtor takes one static argument (the greeting) followed by the
// logger and config services.
var GreeterCtor = container.NewCtor("Greeter", func(args []any) any {
	greeting, _ := args[0].(string)
	if greeting == "" {
		greeting = "Hello"
	}
	return &Greeter{
		Greeting: greeting,
		Log:      args[1].(logrus.FieldLogger),
		Config:   args[2].(*config.Config),
	}
})

func init() {
	container.Declare(GreeterCtor, providers.LoggerID, 1)
	container.Declare(GreeterCtor, providers.ConfigID, 2)
}

// GreeterServiceProvider builds the greeter at boot, when the framework
// services are in place.
type GreeterServiceProvider struct{}

func (p *GreeterServiceProvider) Register(_ *container.InstantiationService) error { return nil }

func (p *GreeterServiceProvider) Boot(app *container.InstantiationService) error {
	greeter, err := container.Create[*Greeter](app, GreeterCtor, "Welcome")
	if err != nil {
		return err
	}
	app.SetService(IGreeter, greeter)
	greeter.Log.Infof("%s to %s", greeter.Greeting, greeter.Config.App.Name)
	return nil
}

func main() {
	application, err := app.New() // loads .env automatically
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := application.Register(&GreeterServiceProvider{}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := application.Run(); err != nil {
		application.Logger().WithError(err).Fatal("exiting")
	}
}
