// Package beans implements the container core: a registry of named bean
// definitions with alias, type and marker resolution, singleton, prototype
// and custom scope enforcement, producer indirection, hierarchical parent
// delegation and lazy provider handles.
//
// A container is built empty, populated through RegisterDefinition,
// RegisterAlias and RegisterSingleton, and then queried:
//
//	c := beans.NewContainer(beans.ContainerConfig{})
//	_ = c.RegisterDefinition(beans.NewDefinition("cache", func(args ...any) (any, error) {
//		return NewCache(), nil
//	}))
//	cache, err := beans.GetNamed[*Cache](c, "cache")
//
// Lookups by name resolve aliases first, honor the definition's scope, and
// transparently dereference producers: a definition resolving to a Producer
// yields the produced object under its plain name and the producer itself
// under the ProducerPrefix form. Lookups by type enumerate the local
// definitions in registration order and use Primary to break ties.
//
// Containers nest: single-name and single-type lookups that miss locally
// retry the configured parent, while the aggregate operations (definition
// names, by-type and by-marker enumeration) deliberately stay local so
// callers can compose hierarchy-wide views themselves.
package beans
