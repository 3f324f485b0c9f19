package beans

import (
	"reflect"

	"github.com/beanbox-dev/beanbox/errors"
)

// Producer is a bean whose purpose is to yield another object rather than be
// used directly. When a definition resolves to a Producer, lookups under the
// plain name return the produced object; the ProducerPrefix form returns the
// producer itself.
type Producer interface {
	// Object returns the produced object. It may return an OBJECT_NOT_READY
	// error (errors.ErrObjectNotReady) when the producer cannot determine its
	// object yet; type-matching callers treat that as a non-match.
	Object() (any, error)

	// ObjectType returns the type of the produced object, or nil when it
	// cannot be determined without producing it.
	ObjectType() reflect.Type

	// SingletonProduct reports whether the produced object is shared. Shared
	// products of singleton producers are cached per producer name.
	SingletonProduct() bool
}

// EagerProducer is an optional extension: producers reporting eager init have
// their product created during the pre-instantiation pass, not just the
// producer itself.
type EagerProducer interface {
	Producer

	EagerInit() bool
}

// producerObject obtains the object produced by the given producer, caching
// shared products under the producer's canonical name. A nil product without
// an error is treated as not-ready.
func (c *beanContainer) producerObject(canonicalName string, producer Producer) (any, error) {
	create := func() (any, error) {
		obj, err := producer.Object()
		if err != nil {
			return nil, err
		}
		if obj == nil {
			return nil, errors.ErrObjectNotReady(canonicalName)
		}
		return obj, nil
	}

	if producer.SingletonProduct() {
		return c.products.getOrCreate(canonicalName, create)
	}
	return create()
}
