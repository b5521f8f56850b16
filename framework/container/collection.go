package container

// ── ServiceCollection ─────────────────────────────────────────────────────────

// Entry is a single (identifier, instance) pair, used to seed a collection.
type Entry struct {
	ID       ServiceIdentifier
	Instance any
}

// ServiceCollection is the service registry: an insertion-ordered map from
// ServiceIdentifier to instance. It holds at most one instance per
// identifier.
//
// A ServiceCollection is not safe for concurrent use. Callers that share one
// between goroutines must serialize access themselves.
type ServiceCollection struct {
	// identifier → position in entries
	index   map[ServiceIdentifier]int
	entries []Entry
}

// NewServiceCollection creates a collection, calling Set for each entry in
// order.
func NewServiceCollection(entries ...Entry) *ServiceCollection {
	c := &ServiceCollection{index: make(map[ServiceIdentifier]int, len(entries))}
	for _, e := range entries {
		c.Set(e.ID, e.Instance)
	}
	return c
}

// Set maps id to instance and returns the instance it replaced, if any.
// A replaced entry keeps its original enumeration position.
//
//	prev, replaced := services.Set(ILogService, newLogger)
func (c *ServiceCollection) Set(id ServiceIdentifier, instance any) (previous any, replaced bool) {
	if i, ok := c.index[id]; ok {
		previous = c.entries[i].Instance
		c.entries[i].Instance = instance
		return previous, true
	}
	c.index[id] = len(c.entries)
	c.entries = append(c.entries, Entry{ID: id, Instance: instance})
	return nil, false
}

// Has reports whether id is registered.
func (c *ServiceCollection) Has(id ServiceIdentifier) bool {
	_, ok := c.index[id]
	return ok
}

// Get returns the instance registered for id. ok is false when id was never
// registered.
func (c *ServiceCollection) Get(id ServiceIdentifier) (instance any, ok bool) {
	i, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return c.entries[i].Instance, true
}

// ForEach calls fn once per entry, in insertion order.
func (c *ServiceCollection) ForEach(fn func(id ServiceIdentifier, instance any)) {
	for _, e := range c.entries {
		fn(e.ID, e.Instance)
	}
}

// Len returns the number of registered identifiers.
func (c *ServiceCollection) Len() int { return len(c.entries) }

// Lookup is a typed Get. ok is false when id is missing or its instance is
// not a T.
//
//	logger, ok := container.Lookup[logrus.FieldLogger](services, ILogService)
func Lookup[T any](c *ServiceCollection, id ServiceIdentifier) (T, bool) {
	var zero T
	instance, ok := c.Get(id)
	if !ok {
		return zero, false
	}
	typed, ok := instance.(T)
	return typed, ok
}
