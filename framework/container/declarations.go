package container

import "fmt"

// ── Constructors ──────────────────────────────────────────────────────────────

// BuildFunc builds a value from its full positional argument list: the
// caller's static arguments followed by the resolved services.
type BuildFunc func(args []any) any

// Ctor is the type token CreateInstance works with. Declarations are keyed
// by the *Ctor pointer, so create each one once, next to the type it builds.
//
//	var GreeterCtor = container.NewCtor("Greeter", func(args []any) any {
//	    return &Greeter{Prefix: args[0].(string), Log: args[1].(logrus.FieldLogger)}
//	})
type Ctor struct {
	name  string
	build BuildFunc
}

// NewCtor creates a constructor token. It panics when build is nil.
func NewCtor(name string, build BuildFunc) *Ctor {
	if build == nil {
		panic(fmt.Sprintf("container: constructor [%s] has no build function", name))
	}
	return &Ctor{name: name, build: build}
}

// Name returns the constructor's display name.
func (c *Ctor) Name() string { return c.name }

// ── Dependency declarations ───────────────────────────────────────────────────

// Dependency declares that a constructor needs the service named by ID at
// positional parameter Index.
type Dependency struct {
	ID    ServiceIdentifier
	Index int
}

// DependencyLookup answers which dependencies a constructor declared.
// Callers never modify the returned slice.
type DependencyLookup interface {
	DeclaredDependencies(ctor *Ctor) []Dependency
}

// Declarations is a side table from constructor to declared dependencies.
// Populate it at init time; it is not safe for concurrent writes.
type Declarations struct {
	deps map[*Ctor][]Dependency
}

// NewDeclarations creates an empty table.
func NewDeclarations() *Declarations {
	return &Declarations{deps: make(map[*Ctor][]Dependency)}
}

// Declare records that ctor needs id at parameter index. It returns d so
// calls can be chained. Declaring a nil ctor, a zero identifier or a
// negative index panics.
//
//	decls.Declare(GreeterCtor, ILogService, 1).
//	    Declare(GreeterCtor, IConfigService, 2)
func (d *Declarations) Declare(ctor *Ctor, id ServiceIdentifier, index int) *Declarations {
	switch {
	case ctor == nil:
		panic("container: cannot declare a dependency on a nil constructor")
	case id.IsZero():
		panic(fmt.Sprintf("container: [%s] declares a dependency on a zero identifier", ctor.name))
	case index < 0:
		panic(fmt.Sprintf("container: [%s] declares [%s] at negative index %d", ctor.name, id, index))
	}
	d.deps[ctor] = append(d.deps[ctor], Dependency{ID: id, Index: index})
	return d
}

// DeclaredDependencies returns a copy of the dependencies declared for ctor,
// in declaration order.
func (d *Declarations) DeclaredDependencies(ctor *Ctor) []Dependency {
	deps := d.deps[ctor]
	out := make([]Dependency, len(deps))
	copy(out, deps)
	return out
}

var defaultDeclarations = NewDeclarations()

// Declare records a dependency in the package-level table used by engines
// created without WithDeclarations. Call it from init().
func Declare(ctor *Ctor, id ServiceIdentifier, index int) {
	defaultDeclarations.Declare(ctor, id, index)
}

// DefaultDeclarations returns the package-level table.
func DefaultDeclarations() *Declarations { return defaultDeclarations }
