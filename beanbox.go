// Package beanbox is the public facade of the container. It re-exports the
// core types from pkg/beans so applications can depend on a single import:
//
//	c := beanbox.New(beanbox.ContainerConfig{})
//	_ = c.RegisterDefinition(beanbox.NewDefinition("cache", newCache))
//	cache, err := beanbox.Get[*Cache](c)
package beanbox

import (
	"github.com/beanbox-dev/beanbox/pkg/beans"
	"github.com/beanbox-dev/beanbox/pkg/logger"
	"github.com/beanbox-dev/beanbox/pkg/metrics"
)

// Core container types.
type (
	Container       = beans.Container
	ContainerConfig = beans.ContainerConfig
	Definition      = beans.Definition
	FactoryFunc     = beans.FactoryFunc
	TypeRef         = beans.TypeRef
	Scope           = beans.Scope
	Producer        = beans.Producer
	EagerProducer   = beans.EagerProducer
	Marker          = beans.Marker
	MarkerCarrier   = beans.MarkerCarrier
	SimpleMarker    = beans.SimpleMarker
	Provider        = beans.Provider
)

// Ambient collaborator contracts, for callers wiring their own.
type (
	Logger  = logger.Logger
	Metrics = metrics.Metrics
)

// Scope names and the producer dereference prefix.
const (
	ScopeSingleton = beans.ScopeSingleton
	ScopePrototype = beans.ScopePrototype
	ProducerPrefix = beans.ProducerPrefix
)

// New creates an empty container.
var New = beans.NewContainer

// NewDefinition creates a singleton definition with the given name and
// factory.
var NewDefinition = beans.NewDefinition

// RefOf wraps an already-obtained reflect.Type.
var RefOf = beans.RefOf

// TypeOf builds a TypeRef for T.
func TypeOf[T any]() TypeRef { return beans.TypeOf[T]() }

// Get resolves the single bean assignable to T.
func Get[T any](c Container) (T, error) { return beans.Get[T](c) }

// GetNamed resolves the named bean, checked against T.
func GetNamed[T any](c Container, name string) (T, error) { return beans.GetNamed[T](c, name) }

// GetWithArgs resolves the named prototype bean with explicit construction
// arguments, checked against T.
func GetWithArgs[T any](c Container, name string, args ...any) (T, error) {
	return beans.GetWithArgs[T](c, name, args...)
}

// Must is Get for wiring code that treats resolution failure as fatal.
func Must[T any](c Container) T { return beans.Must[T](c) }

// MustNamed is GetNamed for wiring code that treats resolution failure as
// fatal.
func MustNamed[T any](c Container, name string) T { return beans.MustNamed[T](c, name) }

// BeansOf resolves all local beans assignable to T, keyed by name.
func BeansOf[T any](c Container) (map[string]T, error) { return beans.BeansOf[T](c) }

// ProviderOf returns a lazy, type-safe handle for beans assignable to T.
func ProviderOf[T any](c Container) *beans.TypedProvider[T] { return beans.ProviderOf[T](c) }
