package beans

import (
	"reflect"

	"github.com/beanbox-dev/beanbox/errors"
)

// Get resolves the single bean assignable to T.
func Get[T any](c Container) (T, error) {
	instance, err := c.BeanByType(TypeOf[T]())
	return assertAs[T](instance, err)
}

// GetNamed resolves the named bean and checks it against T in one step.
func GetNamed[T any](c Container, name string) (T, error) {
	instance, err := c.BeanMatching(name, TypeOf[T]())
	return assertAs[T](instance, err)
}

// GetWithArgs resolves the named prototype bean with explicit construction
// arguments, checked against T.
func GetWithArgs[T any](c Container, name string, args ...any) (T, error) {
	instance, err := c.BeanWithArgs(name, args...)
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		var zero T
		return zero, errors.ErrBeanNotOfRequiredType(name,
			reflect.TypeOf((*T)(nil)).Elem(), reflect.TypeOf(instance))
	}
	return typed, nil
}

// Must is Get for wiring code that treats resolution failure as fatal.
func Must[T any](c Container) T {
	instance, err := Get[T](c)
	if err != nil {
		panic(err)
	}
	return instance
}

// MustNamed is GetNamed for wiring code that treats resolution failure as
// fatal.
func MustNamed[T any](c Container, name string) T {
	instance, err := GetNamed[T](c, name)
	if err != nil {
		panic(err)
	}
	return instance
}

// BeansOf resolves all local beans assignable to T, keyed by name.
func BeansOf[T any](c Container) (map[string]T, error) {
	raw, err := c.BeansOfType(TypeOf[T](), true, true)
	if err != nil {
		return nil, err
	}
	result := make(map[string]T, len(raw))
	for name, instance := range raw {
		typed, ok := instance.(T)
		if !ok {
			return nil, errors.ErrBeanNotOfRequiredType(name,
				reflect.TypeOf((*T)(nil)).Elem(), reflect.TypeOf(instance))
		}
		result[name] = typed
	}
	return result, nil
}

// TypedProvider is a Provider whose accessors return T instead of any.
type TypedProvider[T any] struct {
	provider *Provider
}

// ProviderOf returns a lazy, type-safe handle for beans assignable to T.
func ProviderOf[T any](c Container) *TypedProvider[T] {
	return &TypedProvider[T]{provider: c.Provider(TypeOf[T]())}
}

// Get returns the single matching bean.
func (p *TypedProvider[T]) Get() (T, error) {
	return assertAs[T](p.provider.Get())
}

// GetWithArgs returns the single matching bean, constructed with explicit
// arguments.
func (p *TypedProvider[T]) GetWithArgs(args ...any) (T, error) {
	return assertAs[T](p.provider.GetWithArgs(args...))
}

// IfAvailable returns the matching bean and true, or the zero value and false
// when none exists.
func (p *TypedProvider[T]) IfAvailable() (T, bool, error) {
	return assertOptional[T](p.provider.IfAvailable())
}

// IfUnique returns the matching bean and true, or the zero value and false
// when none exists or the match is ambiguous.
func (p *TypedProvider[T]) IfUnique() (T, bool, error) {
	return assertOptional[T](p.provider.IfUnique())
}

func assertAs[T any](instance any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, errors.ErrBeanNotOfRequiredType(
			reflect.TypeOf((*T)(nil)).Elem().String(),
			reflect.TypeOf((*T)(nil)).Elem(), reflect.TypeOf(instance))
	}
	return typed, nil
}

func assertOptional[T any](instance any, err error) (T, bool, error) {
	var zero T
	if err != nil {
		return zero, false, err
	}
	if instance == nil {
		return zero, false, nil
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, false, errors.ErrBeanNotOfRequiredType(
			reflect.TypeOf((*T)(nil)).Elem().String(),
			reflect.TypeOf((*T)(nil)).Elem(), reflect.TypeOf(instance))
	}
	return typed, true, nil
}
