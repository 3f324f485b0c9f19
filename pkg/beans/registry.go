package beans

import (
	"strings"
	"sync"

	"github.com/beanbox-dev/beanbox/errors"
)

// Registry is the definition store of one container: definitions keyed by
// canonical name in registration order, the alias map, and manually
// registered singleton instances that bypass definitions.
//
// The registry is read-mostly after startup; all access goes through a
// read/write mutex so steady-state lookups never contend with each other.
type Registry struct {
	mu sync.RWMutex

	definitions map[string]*Definition
	names       []string // canonical names in registration order

	aliases    map[string]string // alias -> registered name (may itself be an alias)
	aliasOrder []string

	manual      map[string]any // manually registered singleton instances
	manualNames []string
}

// NewRegistry creates an empty definition store.
func NewRegistry() *Registry {
	return &Registry{
		definitions: make(map[string]*Definition),
		aliases:     make(map[string]string),
		manual:      make(map[string]any),
	}
}

// RegisterDefinition stores a definition under its canonical name.
// Registration order is preserved; re-registering a name replaces the
// definition without changing its position.
func (r *Registry) RegisterDefinition(def *Definition) error {
	if def == nil || def.Name == "" {
		return errors.ErrDefinitionStore("", "definition must carry a non-empty name")
	}
	if strings.HasPrefix(def.Name, ProducerPrefix) {
		return errors.ErrDefinitionStore(def.Name,
			"bean name must not start with the producer dereference prefix "+ProducerPrefix)
	}
	if def.Factory == nil && def.Instance == nil {
		return errors.ErrDefinitionStore(def.Name, "definition must carry a factory or an instance")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.definitions[def.Name]; !exists {
		r.names = append(r.names, def.Name)
	}
	r.definitions[def.Name] = def
	return nil
}

// Definition returns the definition registered under the canonical name.
func (r *Registry) Definition(name string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.definitions[name]
	return def, ok
}

// ContainsDefinition reports whether a definition exists under the name.
func (r *Registry) ContainsDefinition(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.definitions[name]
	return ok
}

// DefinitionNames returns all canonical names in registration order.
func (r *Registry) DefinitionNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// DefinitionCount returns the number of registered definitions.
func (r *Registry) DefinitionCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.definitions)
}

// RegisterAlias maps alias to name. The target may itself be an alias;
// resolution follows the chain. Registering an alias that would close a
// resolution loop fails with an alias-cycle error.
func (r *Registry) RegisterAlias(alias, name string) error {
	if alias == "" || name == "" {
		return errors.ErrDefinitionStore(alias, "alias and target name must be non-empty")
	}
	if alias == name {
		return errors.ErrAliasCycle([]string{alias, name})
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Walk the chain from the target; reaching the new alias would loop.
	chain := []string{alias, name}
	seen := map[string]bool{alias: true}
	current := name
	for {
		next, ok := r.aliases[current]
		if !ok {
			break
		}
		if seen[next] {
			return errors.ErrAliasCycle(append(chain, next))
		}
		seen[next] = true
		chain = append(chain, next)
		current = next
	}

	if _, exists := r.aliases[alias]; !exists {
		r.aliasOrder = append(r.aliasOrder, alias)
	}
	r.aliases[alias] = name
	return nil
}

// CanonicalName resolves a name through the alias map until a non-alias is
// reached. Resolution is idempotent; a loop in the map fails fast with an
// alias-cycle error rather than recursing.
func (r *Registry) CanonicalName(name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.canonicalNameLocked(name)
}

func (r *Registry) canonicalNameLocked(name string) (string, error) {
	chain := []string{name}
	seen := map[string]bool{name: true}
	current := name
	for {
		next, ok := r.aliases[current]
		if !ok {
			return current, nil
		}
		if seen[next] {
			return "", errors.ErrAliasCycle(append(chain, next))
		}
		seen[next] = true
		chain = append(chain, next)
		current = next
	}
}

// Aliases returns the other known names of the given bean. When the queried
// name is itself an alias, the canonical name comes first, followed by the
// remaining aliases in registration order. When the queried name is
// canonical, only its aliases are returned.
func (r *Registry) Aliases(name string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	canonical, err := r.canonicalNameLocked(name)
	if err != nil {
		return nil
	}

	var out []string
	if name != canonical {
		out = append(out, canonical)
	}
	for _, alias := range r.aliasOrder {
		if alias == name {
			continue
		}
		target, err := r.canonicalNameLocked(alias)
		if err != nil {
			continue
		}
		if target == canonical {
			out = append(out, alias)
		}
	}
	return out
}

// IsAlias reports whether the name is registered as an alias.
func (r *Registry) IsAlias(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.aliases[name]
	return ok
}

// RegisterSingleton stores an externally built instance under the given name,
// bypassing the definition store. Names are shared with definitions: the
// instance shadows nothing and nothing may already sit under its name.
func (r *Registry) RegisterSingleton(name string, instance any) error {
	if name == "" {
		return errors.ErrDefinitionStore(name, "singleton name must be non-empty")
	}
	if instance == nil {
		return errors.ErrDefinitionStore(name, "singleton instance must be non-nil")
	}
	if strings.HasPrefix(name, ProducerPrefix) {
		return errors.ErrDefinitionStore(name,
			"singleton name must not start with the producer dereference prefix "+ProducerPrefix)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.manual[name]; exists {
		return errors.ErrDefinitionStore(name, "a singleton instance is already registered under this name")
	}
	if _, exists := r.definitions[name]; exists {
		return errors.ErrDefinitionStore(name, "a bean definition is already registered under this name")
	}
	r.manual[name] = instance
	r.manualNames = append(r.manualNames, name)
	return nil
}

// ManualSingleton returns the manually registered instance under the name.
func (r *Registry) ManualSingleton(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	instance, ok := r.manual[name]
	return instance, ok
}

// ContainsManual reports whether a manually registered instance exists.
func (r *Registry) ContainsManual(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.manual[name]
	return ok
}

// ManualNames returns the manually registered singleton names in registration
// order.
func (r *Registry) ManualNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.manualNames))
	copy(out, r.manualNames)
	return out
}
