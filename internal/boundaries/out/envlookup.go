// Package out defines output ports (interfaces) that use cases depend on.
// Driven adapters (process environment, in-memory snapshots) implement them.
package out

// EnvLookup defines the contract for reading deployment variables.
type EnvLookup interface {
	// Lookup returns the value of the named variable and whether it is set.
	// Implementations must be safe for concurrent use and must not cache.
	Lookup(name string) (string, bool)
}
