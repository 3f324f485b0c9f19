package beans

import (
	"fmt"
	"io"
	"sync"

	"github.com/beanbox-dev/beanbox/errors"
)

// singletonCache is the shared-instance store. Creation is single-flight per
// name: concurrent first lookups of the same name rendezvous on one creation,
// while lookups of other names (cached or in creation) proceed unblocked.
// Failed creations are never cached, so the next lookup retries from scratch.
type singletonCache struct {
	mu        sync.RWMutex
	instances map[string]any
	order     []string // creation order, for reverse destruction
	inflight  map[string]*inflightCreation
}

type inflightCreation struct {
	done     chan struct{}
	instance any
	err      error
}

func newSingletonCache() *singletonCache {
	return &singletonCache{
		instances: make(map[string]any),
		inflight:  make(map[string]*inflightCreation),
	}
}

// get returns the cached instance, if any, without triggering creation.
func (c *singletonCache) get(name string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	instance, ok := c.instances[name]
	return instance, ok
}

// contains reports whether an instance is cached under the name.
func (c *singletonCache) contains(name string) bool {
	_, ok := c.get(name)
	return ok
}

// getOrCreate returns the cached instance for name, creating it at most once.
// create runs outside the cache lock, so a slow creation of one name never
// blocks lookups of others. All callers arriving during creation receive the
// same instance, or the same error, in which case nothing is cached.
func (c *singletonCache) getOrCreate(name string, create func() (any, error)) (any, error) {
	c.mu.Lock()
	if instance, ok := c.instances[name]; ok {
		c.mu.Unlock()
		return instance, nil
	}
	if flight, ok := c.inflight[name]; ok {
		c.mu.Unlock()
		<-flight.done
		return flight.instance, flight.err
	}
	flight := &inflightCreation{done: make(chan struct{})}
	c.inflight[name] = flight
	c.mu.Unlock()

	instance, err := create()

	c.mu.Lock()
	delete(c.inflight, name)
	if err == nil {
		c.instances[name] = instance
		c.order = append(c.order, name)
	}
	flight.instance, flight.err = instance, err
	close(flight.done)
	c.mu.Unlock()

	return instance, err
}

// names returns the cached names in creation order.
func (c *singletonCache) names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// destroyAll closes every cached instance implementing io.Closer, in reverse
// creation order, then clears the cache. All close errors are joined.
func (c *singletonCache) destroyAll() error {
	c.mu.Lock()
	order := c.order
	instances := c.instances
	c.instances = make(map[string]any)
	c.order = nil
	c.mu.Unlock()

	var errs []error
	for i := len(order) - 1; i >= 0; i-- {
		instance := instances[order[i]]
		closer, ok := instance.(io.Closer)
		if !ok {
			continue
		}
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing bean '%s': %w", order[i], err))
		}
	}
	return errors.Join(errs...)
}
