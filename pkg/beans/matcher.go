package beans

import (
	"reflect"
)

// typeMatches reports whether a lookup of the canonical name (in deref form
// when deref is true) would yield an instance assignable to the requested
// type. It prefers static knowledge and never instantiates a producer unless
// allowEagerInit permits it:
//
//  1. a product already created is checked directly, falling back to the raw
//     producer type when the product does not match
//  2. a statically declared product type decides without any instantiation
//  3. otherwise an available producer is asked for its product type, creating
//     the producer (and, as a last resort, the product) only when eager
//     initialization is allowed
//
// typeMatches never fails: anything unresolvable is simply not a match.
func (c *beanContainer) typeMatches(canonical string, deref bool, requested TypeRef, allowEagerInit bool) bool {
	if requested.IsZero() {
		return false
	}

	if manual, ok := c.registry.ManualSingleton(canonical); ok {
		return c.manualMatches(canonical, manual, deref, requested, allowEagerInit)
	}

	def, ok := c.registry.Definition(canonical)
	if !ok {
		return false
	}

	if deref || !def.isProducer() {
		if deref && !def.isProducer() {
			return false
		}
		return c.rawDefinitionMatches(canonical, def, requested)
	}

	if product, ok := c.products.get(canonical); ok {
		if instanceAssignableTo(product, requested) {
			return true
		}
		return c.rawDefinitionMatches(canonical, def, requested)
	}

	if !def.ProducedType.IsZero() {
		return def.ProducedType.AssignableTo(requested)
	}

	producer := c.availableProducer(canonical, def, allowEagerInit)
	if producer == nil {
		return false
	}
	if objType := producer.ObjectType(); objType != nil {
		return RefOf(objType).AssignableTo(requested)
	}
	if !allowEagerInit {
		return false
	}
	product, err := c.producerObject(canonical, producer)
	if err != nil {
		return false
	}
	if instanceAssignableTo(product, requested) {
		return true
	}
	return c.rawDefinitionMatches(canonical, def, requested)
}

// rawDefinitionMatches checks the definition's own object (for producers: the
// producer itself) against the requested type, using whatever is known
// statically or already created.
func (c *beanContainer) rawDefinitionMatches(canonical string, def *Definition, requested TypeRef) bool {
	if def.Type.Type != nil {
		return def.Type.AssignableTo(requested)
	}
	if def.Instance != nil {
		return instanceAssignableTo(def.Instance, requested)
	}
	if instance, ok := c.singletons.get(canonical); ok {
		return instanceAssignableTo(instance, requested)
	}
	return false
}

// manualMatches is typeMatches for manually registered instances.
func (c *beanContainer) manualMatches(canonical string, manual any, deref bool, requested TypeRef, allowEagerInit bool) bool {
	producer, isProducer := manual.(Producer)
	if deref {
		return isProducer && instanceAssignableTo(manual, requested)
	}
	if !isProducer {
		return instanceAssignableTo(manual, requested)
	}

	if product, ok := c.products.get(canonical); ok {
		if instanceAssignableTo(product, requested) {
			return true
		}
		return instanceAssignableTo(manual, requested)
	}
	if objType := producer.ObjectType(); objType != nil {
		return RefOf(objType).AssignableTo(requested)
	}
	if !allowEagerInit {
		return false
	}
	product, err := c.producerObject(canonical, producer)
	if err != nil {
		return false
	}
	if instanceAssignableTo(product, requested) {
		return true
	}
	return instanceAssignableTo(manual, requested)
}

// availableProducer returns the producer instance for a producer definition,
// creating it only when allowEagerInit permits. Pre-built instances and
// already-cached singletons are always available.
func (c *beanContainer) availableProducer(canonical string, def *Definition, allowEagerInit bool) Producer {
	if def.Instance != nil {
		if producer, ok := def.Instance.(Producer); ok {
			return producer
		}
		return nil
	}
	if raw, ok := c.singletons.get(canonical); ok {
		producer, _ := raw.(Producer)
		return producer
	}
	if !allowEagerInit {
		return nil
	}
	raw, err := c.instantiate(canonical, def, nil)
	if err != nil {
		return nil
	}
	producer, _ := raw.(Producer)
	return producer
}

// beanTypeLocal determines the type a lookup of the canonical name would
// yield, or nil when it cannot be determined under the given initialization
// policy.
func (c *beanContainer) beanTypeLocal(canonical string, deref bool, allowProducerInit bool) reflect.Type {
	if manual, ok := c.registry.ManualSingleton(canonical); ok {
		producer, isProducer := manual.(Producer)
		if deref {
			if !isProducer {
				return nil
			}
			return reflect.TypeOf(manual)
		}
		if !isProducer {
			return reflect.TypeOf(manual)
		}
		return c.productType(canonical, producer, allowProducerInit)
	}

	def, ok := c.registry.Definition(canonical)
	if !ok {
		return nil
	}

	if deref || !def.isProducer() {
		if deref && !def.isProducer() {
			return nil
		}
		return c.rawDefinitionType(canonical, def)
	}

	if product, ok := c.products.get(canonical); ok {
		return reflect.TypeOf(product)
	}
	if !def.ProducedType.IsZero() {
		return def.ProducedType.Type
	}
	producer := c.availableProducer(canonical, def, allowProducerInit)
	if producer == nil {
		return nil
	}
	return c.productType(canonical, producer, allowProducerInit)
}

// rawDefinitionType returns the definition's own object type, from static
// declaration, pre-built instance or cached singleton.
func (c *beanContainer) rawDefinitionType(canonical string, def *Definition) reflect.Type {
	if def.Type.Type != nil {
		return def.Type.Type
	}
	if def.Instance != nil {
		return reflect.TypeOf(def.Instance)
	}
	if instance, ok := c.singletons.get(canonical); ok {
		return reflect.TypeOf(instance)
	}
	return nil
}

// productType asks a producer for its product's type, producing the object
// only when initialization is allowed and the producer cannot answer
// statically.
func (c *beanContainer) productType(canonical string, producer Producer, allowProducerInit bool) reflect.Type {
	if product, ok := c.products.get(canonical); ok {
		return reflect.TypeOf(product)
	}
	if t := producer.ObjectType(); t != nil {
		return t
	}
	if !allowProducerInit {
		return nil
	}
	product, err := c.producerObject(canonical, producer)
	if err != nil {
		return nil
	}
	return reflect.TypeOf(product)
}
