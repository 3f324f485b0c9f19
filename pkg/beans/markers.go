package beans

import (
	"github.com/beanbox-dev/beanbox/errors"
	"github.com/beanbox-dev/beanbox/pkg/logger"
)

// Marker is an annotation-like tag attached to bean definitions or carried by
// instances. Markers are matched by name.
type Marker interface {
	MarkerName() string
}

// MarkerCarrier is implemented by instances that expose markers beyond those
// declared on their definition, typically objects created by producers whose
// definitions could not declare the product's markers statically.
type MarkerCarrier interface {
	BeanMarkers() []Marker
}

// SimpleMarker is a plain named marker with an optional attribute payload.
type SimpleMarker struct {
	Name       string
	Attributes map[string]any
}

// MarkerName implements Marker.
func (m SimpleMarker) MarkerName() string { return m.Name }

// NamesForMarker returns the names of all local beans carrying the marker, in
// registration order. For producer definitions whose declared markers do not
// include the requested one, the produced object is created and inspected;
// marker indexing is allowed to force initialization, unlike plain type
// matching. A creation failure during that forced initialization is logged
// here and surfaced as an error by BeansForMarker.
func (c *beanContainer) NamesForMarker(marker string) []string {
	names, err := c.namesForMarker(marker)
	if err != nil {
		c.logger.Warn("marker indexing failed",
			logger.String("marker", marker),
			logger.Error(err),
		)
	}
	return names
}

func (c *beanContainer) namesForMarker(marker string) ([]string, error) {
	var names []string
	for _, name := range c.registry.DefinitionNames() {
		def, ok := c.registry.Definition(name)
		if !ok {
			continue
		}
		m, err := c.findMarkerOnDefinition(name, def, marker)
		if err != nil {
			return names, err
		}
		if m != nil {
			names = append(names, name)
		}
	}
	for _, name := range c.registry.ManualNames() {
		instance, ok := c.registry.ManualSingleton(name)
		if !ok {
			continue
		}
		if markerOnInstance(instance, marker) != nil {
			names = append(names, name)
		}
	}
	return names, nil
}

// BeansForMarker resolves every local bean carrying the marker, keyed by
// name. Indexing and resolution errors abort the enumeration.
func (c *beanContainer) BeansForMarker(marker string) (map[string]any, error) {
	names, err := c.namesForMarker(marker)
	if err != nil {
		return nil, err
	}
	result := make(map[string]any)
	for _, name := range names {
		instance, err := c.Bean(name)
		if err != nil {
			return nil, err
		}
		result[name] = instance
	}
	return result, nil
}

// FindMarkerOnBean returns the marker instance carried by the named local
// bean, or nil when the bean exists but does not carry it. Unknown names fail
// with a not-found error, which is distinct from "marker absent".
func (c *beanContainer) FindMarkerOnBean(name, marker string) (Marker, error) {
	bare, _ := splitProducerName(name)
	canonical, err := c.registry.CanonicalName(bare)
	if err != nil {
		return nil, err
	}

	if def, ok := c.registry.Definition(canonical); ok {
		m, err := c.findMarkerOnDefinition(canonical, def, marker)
		return m, err
	}
	if instance, ok := c.registry.ManualSingleton(canonical); ok {
		return markerOnInstance(instance, marker), nil
	}
	return nil, errors.ErrBeanNotFound(bare)
}

// findMarkerOnDefinition searches the definition's type-level markers, then
// its factory-level markers, then (for producers) the markers carried by the
// produced object. The last step may force producer initialization; a
// not-ready producer is treated as "marker absent".
func (c *beanContainer) findMarkerOnDefinition(canonical string, def *Definition, marker string) (Marker, error) {
	if m := markerIn(def.Markers, marker); m != nil {
		return m, nil
	}
	if m := markerIn(def.FactoryMarkers, marker); m != nil {
		return m, nil
	}

	if def.Instance != nil {
		if _, isProducer := def.Instance.(Producer); !isProducer {
			return markerOnInstance(def.Instance, marker), nil
		}
	}
	if !def.isProducer() {
		return nil, nil
	}

	instance, err := c.Bean(canonical)
	if err != nil {
		if errors.IsObjectNotReady(err) {
			return nil, nil
		}
		return nil, err
	}
	return markerOnInstance(instance, marker), nil
}

func markerIn(markers []Marker, name string) Marker {
	for _, m := range markers {
		if m.MarkerName() == name {
			return m
		}
	}
	return nil
}

func markerOnInstance(instance any, name string) Marker {
	carrier, ok := instance.(MarkerCarrier)
	if !ok {
		return nil
	}
	return markerIn(carrier.BeanMarkers(), name)
}
