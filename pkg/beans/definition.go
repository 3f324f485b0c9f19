package beans

import (
	"math"
	"reflect"
)

// Scope names for the two container-managed scopes. Any other value on a
// Definition refers to a custom scope registered via RegisterScope.
const (
	ScopeSingleton = "singleton"
	ScopePrototype = "prototype"
)

// ProducerPrefix marks a lookup name as a request for the raw producer object
// rather than the object it produces. Getting "&widgetFactory" returns the
// producer; getting "widgetFactory" returns what it produces.
const ProducerPrefix = "&"

// orderUnset is the effective sort key of definitions without explicit
// precedence. They sort after all ordered candidates, in registration order.
const orderUnset = math.MaxInt

// FactoryFunc constructs a bean instance. args carries the explicit
// construction arguments of a prototype lookup; it is empty when the
// definition's defaults apply.
type FactoryFunc func(args ...any) (any, error)

// Definition describes one registered bean: how it is named, typed, scoped
// and constructed. Definitions are created by a configuration-loading
// collaborator and are not mutated by the engine.
type Definition struct {
	// Name is the canonical bean name, unique within one container.
	Name string

	// Type is the declared object type, when statically known.
	Type TypeRef

	// Scope is ScopeSingleton (the default when empty), ScopePrototype, or
	// the name of a registered custom scope.
	Scope string

	// LazyInit excludes a singleton from the eager pre-instantiation pass.
	LazyInit bool

	// Primary marks this definition as the tie-breaker when a by-type lookup
	// matches several candidates.
	Primary bool

	// Order is explicit precedence metadata for ordered streams. Lower values
	// come first. Zero means no explicit order: such candidates follow all
	// ordered ones, in registration order.
	Order int

	// Factory constructs instances. Required unless Instance is set.
	Factory FactoryFunc

	// Instance is a pre-built object registered through a definition. When
	// set, Factory is ignored.
	Instance any

	// DefaultArgs are passed to Factory when a lookup supplies none.
	DefaultArgs []any

	// ProducedType is the statically declared product type for producer
	// definitions. When set, type matching never has to instantiate the
	// producer.
	ProducedType TypeRef

	// Markers are the annotation markers present on the declared type,
	// including those inherited from its supertypes.
	Markers []Marker

	// FactoryMarkers are the markers present on the construction method.
	FactoryMarkers []Marker
}

// NewDefinition creates a singleton definition with the given name and
// factory.
func NewDefinition(name string, factory FactoryFunc) *Definition {
	return &Definition{Name: name, Scope: ScopeSingleton, Factory: factory}
}

// IsSingleton reports whether the definition uses the shared-instance scope.
func (d *Definition) IsSingleton() bool {
	return d.Scope == "" || d.Scope == ScopeSingleton
}

// IsPrototype reports whether the definition yields independent instances.
func (d *Definition) IsPrototype() bool {
	return d.Scope == ScopePrototype
}

var producerType = reflect.TypeOf((*Producer)(nil)).Elem()

// isProducer reports whether the definition describes a producer, without
// instantiating anything: either the declared type implements Producer, a
// produced type is declared, or a pre-built producer instance is present.
func (d *Definition) isProducer() bool {
	if !d.ProducedType.IsZero() {
		return true
	}
	if d.Type.Type != nil && d.Type.Type.Implements(producerType) {
		return true
	}
	if d.Instance != nil {
		_, ok := d.Instance.(Producer)
		return ok
	}
	return false
}

// effectiveOrder returns the sort key for ordered streams.
func (d *Definition) effectiveOrder() int {
	if d.Order == 0 {
		return orderUnset
	}
	return d.Order
}
