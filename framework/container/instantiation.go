package container

import (
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// InstantiationServiceID is the identifier every InstantiationService
// registers itself under.
var InstantiationServiceID = NewIdentifier("InstantiationService")

// Option configures an InstantiationService.
type Option func(*InstantiationService)

// WithLogger sets the diagnostic sink. Argument mismatches are logged at
// warn level, the spliced argument list at debug level.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *InstantiationService) { s.log = log }
}

// WithDeclarations sets where dependency declarations are read from.
// Defaults to DefaultDeclarations().
func WithDeclarations(lookup DependencyLookup) Option {
	return func(s *InstantiationService) { s.declarations = lookup }
}

// ── InstantiationService ──────────────────────────────────────────────────────

// InstantiationService builds objects whose constructors declared service
// dependencies, resolving those dependencies from the registry it owns.
type InstantiationService struct {
	services     *ServiceCollection
	declarations DependencyLookup
	log          logrus.FieldLogger
}

// NewInstantiationService creates an engine with a fresh registry that
// already maps InstantiationServiceID to the engine itself.
func NewInstantiationService(opts ...Option) *InstantiationService {
	s := &InstantiationService{
		services:     NewServiceCollection(),
		declarations: defaultDeclarations,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = defaultLogger()
	}
	s.services.Set(InstantiationServiceID, s)
	return s
}

// SetService registers instance under id, silently replacing any previous
// instance.
func (s *InstantiationService) SetService(id ServiceIdentifier, instance any) {
	s.services.Set(id, instance)
}

// Services returns the registry owned by s.
func (s *InstantiationService) Services() *ServiceCollection { return s.services }

// CreateInstance builds a value with ctor. The declared dependencies are
// resolved and appended after args.
//
// The first declared dependency's index decides how many static arguments
// ctor takes. When len(args) differs, a warning is logged and args is padded
// with nils or truncated to fit; extra arguments are dropped. Construction
// still goes ahead in that case, so watch the logs for mismatches.
//
// A dependency with no registered instance fails with *UnknownServiceError
// and ctor is not called. A nil ctor panics.
func (s *InstantiationService) CreateInstance(ctor *Ctor, args ...any) (any, error) {
	if ctor == nil {
		panic("container: cannot create an instance from a nil constructor")
	}
	deps := append([]Dependency(nil), s.declarations.DeclaredDependencies(ctor)...)
	sort.SliceStable(deps, func(i, j int) bool { return deps[i].Index < deps[j].Index })

	serviceArgs := make([]any, 0, len(deps))
	for _, dep := range deps {
		service, ok := s.services.Get(dep.ID)
		if !ok {
			return nil, errors.WithStack(&UnknownServiceError{Target: ctor.name, Service: dep.ID})
		}
		serviceArgs = append(serviceArgs, service)
	}

	firstServiceSlot := len(args)
	if len(deps) > 0 {
		firstServiceSlot = deps[0].Index
	}

	if len(args) != firstServiceSlot {
		s.log.WithFields(logrus.Fields{
			"ctor":     ctor.name,
			"position": firstServiceSlot + 1,
			"args":     len(args),
		}).Warnf("container: first service dependency of [%s] at position %d conflicts with %d static arguments",
			ctor.name, firstServiceSlot+1, len(args))
		args = reconcile(args, firstServiceSlot)
	}

	s.log.WithFields(logrus.Fields{
		"ctor":        ctor.name,
		"args":        args,
		"serviceArgs": serviceArgs,
	}).Debug("container: creating instance")

	all := make([]any, 0, len(args)+len(serviceArgs))
	all = append(all, args...)
	all = append(all, serviceArgs...)
	return ctor.build(all), nil
}

// reconcile returns args padded with nils or truncated to exactly n entries.
// The caller's slice is never written to.
func reconcile(args []any, n int) []any {
	out := make([]any, n)
	copy(out, args)
	return out
}

func defaultLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.InfoLevel)
	return log
}

// ── Generics helpers ──────────────────────────────────────────────────────────

// Create is a typed CreateInstance.
//
//	greeter, err := container.Create[*Greeter](svc, GreeterCtor, "Hello")
func Create[T any](s *InstantiationService, ctor *Ctor, args ...any) (T, error) {
	var zero T
	instance, err := s.CreateInstance(ctor, args...)
	if err != nil {
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, errors.Errorf("container: Create[%T]: [%s] built %T", zero, ctor.name, instance)
	}
	return typed, nil
}

// Resolve is a typed lookup against the engine's registry.
func Resolve[T any](s *InstantiationService, id ServiceIdentifier) (T, bool) {
	return Lookup[T](s.services, id)
}
