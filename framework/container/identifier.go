package container

// ── Service identifiers ───────────────────────────────────────────────────────

// identifierToken is the unique part of a ServiceIdentifier. Its address is
// the identity; the name is only carried along for diagnostics.
type identifierToken struct {
	name string
}

// ServiceIdentifier names an abstract service contract. Two identifiers are
// equal only when they were minted by the same NewIdentifier call, even if
// their names match.
//
//	var ILogService = container.NewIdentifier("LogService")
type ServiceIdentifier struct {
	token *identifierToken
}

// NewIdentifier mints a new, globally unique identifier. Call it once per
// contract, usually from a package-level var.
func NewIdentifier(name string) ServiceIdentifier {
	return ServiceIdentifier{token: &identifierToken{name: name}}
}

// Name returns the display name given to NewIdentifier.
func (id ServiceIdentifier) Name() string {
	if id.token == nil {
		return ""
	}
	return id.token.name
}

// String implements fmt.Stringer.
func (id ServiceIdentifier) String() string {
	if id.token == nil {
		return "<nil identifier>"
	}
	return id.token.name
}

// IsZero reports whether id was never minted.
func (id ServiceIdentifier) IsZero() bool { return id.token == nil }
