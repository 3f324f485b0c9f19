package beanbox

import (
	"reflect"
	"sync"
	"testing"
)

type cacheService struct {
	mu   sync.Mutex
	data map[string]string
}

func newCacheService() *cacheService {
	return &cacheService{data: make(map[string]string)}
}

func (c *cacheService) Put(k, v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[k] = v
}

func (c *cacheService) Get(k string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[k]
	return v, ok
}

type widget struct {
	label string
}

type widgetFactory struct{}

func (f *widgetFactory) Object() (any, error) { return &widget{label: "produced"}, nil }

func (f *widgetFactory) ObjectType() reflect.Type { return reflect.TypeOf(&widget{}) }

func (f *widgetFactory) SingletonProduct() bool { return true }

func TestFacadeEndToEnd(t *testing.T) {
	c := New(ContainerConfig{})

	cacheDef := NewDefinition("cache", func(args ...any) (any, error) {
		return newCacheService(), nil
	})
	cacheDef.Type = TypeOf[*cacheService]()
	err := c.RegisterDefinition(cacheDef)
	if err != nil {
		t.Fatalf("Failed to register cache: %v", err)
	}

	widgetDef := &Definition{
		Name:  "widget",
		Scope: ScopePrototype,
		Factory: func(args ...any) (any, error) {
			w := &widget{label: "fresh"}
			if len(args) > 0 {
				w.label = args[0].(string)
			}
			return w, nil
		},
	}
	if err := c.RegisterDefinition(widgetDef); err != nil {
		t.Fatalf("Failed to register widget: %v", err)
	}

	factoryDef := NewDefinition("widgetFactory", func(args ...any) (any, error) {
		return &widgetFactory{}, nil
	})
	factoryDef.Type = TypeOf[*widgetFactory]()
	if err := c.RegisterDefinition(factoryDef); err != nil {
		t.Fatalf("Failed to register factory: %v", err)
	}

	t.Run("Shared cache keeps state across lookups", func(t *testing.T) {
		first := Must[*cacheService](c)
		first.Put("greeting", "hello")
		second := MustNamed[*cacheService](c, "cache")
		if v, ok := second.Get("greeting"); !ok || v != "hello" {
			t.Errorf("Expected shared state, got %q present=%v", v, ok)
		}
	})

	t.Run("Widget prototypes are independent", func(t *testing.T) {
		a, err := GetWithArgs[*widget](c, "widget", "a")
		if err != nil {
			t.Fatalf("Lookup failed: %v", err)
		}
		b, err := GetWithArgs[*widget](c, "widget", "b")
		if err != nil {
			t.Fatalf("Lookup failed: %v", err)
		}
		if a == b || a.label == b.label {
			t.Errorf("Expected independent widgets, got %+v and %+v", a, b)
		}
	})

	t.Run("Factory dereference returns the producer", func(t *testing.T) {
		product, err := c.Bean("widgetFactory")
		if err != nil {
			t.Fatalf("Product lookup failed: %v", err)
		}
		if _, ok := product.(*widget); !ok {
			t.Fatalf("Expected produced widget, got %T", product)
		}
		raw, err := c.Bean(ProducerPrefix + "widgetFactory")
		if err != nil {
			t.Fatalf("Producer lookup failed: %v", err)
		}
		if _, ok := raw.(*widgetFactory); !ok {
			t.Errorf("Expected the factory itself, got %T", raw)
		}
	})

	t.Run("Errors carry machine-readable codes", func(t *testing.T) {
		_, err := c.Bean("ghost")
		if !IsBeanNotFound(err) {
			t.Errorf("Expected not-found error, got %v", err)
		}
	})

	if err := c.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}
