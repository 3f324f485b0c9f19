package beans

// Scope is the contract for externally supplied scope stores backing scopes
// other than singleton and prototype (per-request, per-session, and the
// like). The engine never caches scoped instances itself; it only invokes
// this contract, keyed by canonical bean name within the store's own active
// context.
type Scope interface {
	// Get returns the instance for name in the current scope context,
	// invoking factory when none exists yet.
	Get(name string, factory func() (any, error)) (any, error)

	// Remove removes the instance for name from the current scope context,
	// returning it and whether it was present.
	Remove(name string) (any, bool)
}
