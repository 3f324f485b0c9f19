package beans

import (
	"fmt"
	"testing"

	"github.com/beanbox-dev/beanbox/errors"
)

// markedHandler carries its markers itself, like a producer-built object
// whose definition cannot declare them.
type markedHandler struct {
	route string
}

func (h *markedHandler) BeanMarkers() []Marker {
	return []Marker{SimpleMarker{Name: "handler", Attributes: map[string]any{"route": h.route}}}
}

func TestMarkers(t *testing.T) {
	t.Run("Definition markers are indexed in registration order", func(t *testing.T) {
		c := NewContainer(ContainerConfig{})
		registerGreeter(t, c, "first", "a", func(d *Definition) {
			d.Markers = []Marker{SimpleMarker{Name: "managed"}}
		})
		registerGreeter(t, c, "plain", "b", nil)
		registerGreeter(t, c, "second", "c", func(d *Definition) {
			d.FactoryMarkers = []Marker{SimpleMarker{Name: "managed"}}
		})

		names := c.NamesForMarker("managed")
		if len(names) != 2 || names[0] != "first" || names[1] != "second" {
			t.Errorf("Unexpected marked names: %v", names)
		}

		all, err := c.BeansForMarker("managed")
		if err != nil {
			t.Fatalf("BeansForMarker failed: %v", err)
		}
		if len(all) != 2 {
			t.Errorf("Expected 2 marked beans, got %d", len(all))
		}
	})

	t.Run("FindMarkerOnBean distinguishes absent from unknown", func(t *testing.T) {
		c := NewContainer(ContainerConfig{})
		registerGreeter(t, c, "greeter", "a", func(d *Definition) {
			d.Markers = []Marker{SimpleMarker{Name: "managed", Attributes: map[string]any{"group": "core"}}}
		})

		m, err := c.FindMarkerOnBean("greeter", "managed")
		if err != nil {
			t.Fatalf("FindMarkerOnBean failed: %v", err)
		}
		sm, ok := m.(SimpleMarker)
		if !ok || sm.Attributes["group"] != "core" {
			t.Errorf("Unexpected marker: %#v", m)
		}

		m, err = c.FindMarkerOnBean("greeter", "missing")
		if err != nil || m != nil {
			t.Errorf("Expected absent marker without error, got %v err=%v", m, err)
		}

		_, err = c.FindMarkerOnBean("ghost", "managed")
		if !errors.IsBeanNotFound(err) {
			t.Errorf("Expected not-found error, got %v", err)
		}
	})

	t.Run("Instance markers on manual singletons are indexed", func(t *testing.T) {
		c := NewContainer(ContainerConfig{})
		if err := c.RegisterSingleton("health", &markedHandler{route: "/health"}); err != nil {
			t.Fatalf("Failed to register singleton: %v", err)
		}

		names := c.NamesForMarker("handler")
		if len(names) != 1 || names[0] != "health" {
			t.Errorf("Unexpected marked names: %v", names)
		}
		m, err := c.FindMarkerOnBean("health", "handler")
		if err != nil {
			t.Fatalf("FindMarkerOnBean failed: %v", err)
		}
		if sm, ok := m.(SimpleMarker); !ok || sm.Attributes["route"] != "/health" {
			t.Errorf("Unexpected marker: %#v", m)
		}
	})

	t.Run("Producer failure during indexing surfaces through BeansForMarker", func(t *testing.T) {
		c := NewContainer(ContainerConfig{})
		def := NewDefinition("broken", func(args ...any) (any, error) {
			return nil, fmt.Errorf("backend unavailable")
		})
		def.Type = TypeOf[*staticProducer]()
		if err := c.RegisterDefinition(def); err != nil {
			t.Fatalf("Failed to register definition: %v", err)
		}

		_, err := c.BeansForMarker("handler")
		if !errors.IsBeanCreation(err) {
			t.Errorf("Expected creation failure, got %v", err)
		}
		if names := c.NamesForMarker("handler"); len(names) != 0 {
			t.Errorf("Failed producer should not be indexed, got %v", names)
		}
	})

	t.Run("Producer products are inspected for markers", func(t *testing.T) {
		c := NewContainer(ContainerConfig{})
		def := NewDefinition("handlerFactory", func(args ...any) (any, error) {
			return &staticProducer{product: &markedHandler{route: "/users"}}, nil
		})
		def.Type = TypeOf[*staticProducer]()
		if err := c.RegisterDefinition(def); err != nil {
			t.Fatalf("Failed to register definition: %v", err)
		}

		names := c.NamesForMarker("handler")
		if len(names) != 1 || names[0] != "handlerFactory" {
			t.Errorf("Unexpected marked names: %v", names)
		}
	})
}
