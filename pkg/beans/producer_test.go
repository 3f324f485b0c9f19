package beans

import (
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/beanbox-dev/beanbox/errors"
)

// connectionPool stands in for an expensive produced object.
type connectionPool struct {
	dsn string
}

// poolProducer is a configurable producer fixture. Its counters make it
// observable whether matching operations instantiated anything.
type poolProducer struct {
	dsn        string
	shared     bool
	ready      bool
	staticType reflect.Type

	objectCalls int32
	eager       bool
}

func (p *poolProducer) Object() (any, error) {
	atomic.AddInt32(&p.objectCalls, 1)
	if !p.ready {
		return nil, errors.ErrObjectNotReady("pool")
	}
	return &connectionPool{dsn: p.dsn}, nil
}

func (p *poolProducer) ObjectType() reflect.Type { return p.staticType }

func (p *poolProducer) SingletonProduct() bool { return p.shared }

func (p *poolProducer) EagerInit() bool { return p.eager }

// staticProducer always yields the same pre-built object.
type staticProducer struct {
	product any
}

func (p *staticProducer) Object() (any, error) { return p.product, nil }

func (p *staticProducer) ObjectType() reflect.Type {
	if p.product == nil {
		return nil
	}
	return reflect.TypeOf(p.product)
}

func (p *staticProducer) SingletonProduct() bool { return true }

func poolDefinition(name string, producer *poolProducer, factoryCalls *int32) *Definition {
	def := NewDefinition(name, func(args ...any) (any, error) {
		if factoryCalls != nil {
			atomic.AddInt32(factoryCalls, 1)
		}
		return producer, nil
	})
	def.Type = TypeOf[*poolProducer]()
	return def
}

func TestProducerIndirection(t *testing.T) {
	t.Run("Plain name yields the product, prefix yields the producer", func(t *testing.T) {
		c := NewContainer(ContainerConfig{})
		producer := &poolProducer{dsn: "db://primary", shared: true, ready: true}
		if err := c.RegisterDefinition(poolDefinition("pool", producer, nil)); err != nil {
			t.Fatalf("Failed to register definition: %v", err)
		}

		product, err := c.Bean("pool")
		if err != nil {
			t.Fatalf("Product lookup failed: %v", err)
		}
		if _, ok := product.(*connectionPool); !ok {
			t.Fatalf("Expected the produced object, got %T", product)
		}

		raw, err := c.Bean("&pool")
		if err != nil {
			t.Fatalf("Producer lookup failed: %v", err)
		}
		if raw != producer {
			t.Errorf("Expected the producer itself, got %T", raw)
		}
	})

	t.Run("Shared products are created once", func(t *testing.T) {
		c := NewContainer(ContainerConfig{})
		producer := &poolProducer{dsn: "db://primary", shared: true, ready: true}
		if err := c.RegisterDefinition(poolDefinition("pool", producer, nil)); err != nil {
			t.Fatalf("Failed to register definition: %v", err)
		}

		a, err := c.Bean("pool")
		if err != nil {
			t.Fatalf("First lookup failed: %v", err)
		}
		b, err := c.Bean("pool")
		if err != nil {
			t.Fatalf("Second lookup failed: %v", err)
		}
		if a != b {
			t.Error("Expected the cached shared product")
		}
		if n := atomic.LoadInt32(&producer.objectCalls); n != 1 {
			t.Errorf("Expected one production, got %d", n)
		}
	})

	t.Run("Non-shared products are produced per lookup", func(t *testing.T) {
		c := NewContainer(ContainerConfig{})
		producer := &poolProducer{dsn: "db://primary", shared: false, ready: true}
		if err := c.RegisterDefinition(poolDefinition("pool", producer, nil)); err != nil {
			t.Fatalf("Failed to register definition: %v", err)
		}

		a, _ := c.Bean("pool")
		b, _ := c.Bean("pool")
		if a == b {
			t.Error("Expected distinct products from a non-shared producer")
		}
		if n := atomic.LoadInt32(&producer.objectCalls); n != 2 {
			t.Errorf("Expected two productions, got %d", n)
		}
	})

	t.Run("Dereferencing a non-producer fails with a type error", func(t *testing.T) {
		c := NewContainer(ContainerConfig{})
		if err := c.RegisterDefinition(greeterDefinition("greeter", "world")); err != nil {
			t.Fatalf("Failed to register definition: %v", err)
		}
		_, err := c.Bean("&greeter")
		if !errors.IsBeanNotOfRequiredType(err) {
			t.Errorf("Expected type error, got %v", err)
		}
	})

	t.Run("Not-ready producer fails direct retrieval but not type checks", func(t *testing.T) {
		c := NewContainer(ContainerConfig{})
		producer := &poolProducer{dsn: "db://primary", shared: true, ready: false}
		if err := c.RegisterDefinition(poolDefinition("pool", producer, nil)); err != nil {
			t.Fatalf("Failed to register definition: %v", err)
		}

		_, err := c.Bean("pool")
		if !errors.IsBeanCreation(err) {
			t.Fatalf("Expected creation failure, got %v", err)
		}
		if !errors.IsObjectNotReady(err) {
			t.Errorf("Creation failure should carry the not-ready cause: %v", err)
		}

		match, err := c.IsTypeMatch("pool", TypeOf[*connectionPool]())
		if err != nil {
			t.Fatalf("IsTypeMatch failed: %v", err)
		}
		if match {
			t.Error("Not-ready producer should not match the product type")
		}
	})

	t.Run("Readiness recovery is picked up on the next lookup", func(t *testing.T) {
		c := NewContainer(ContainerConfig{})
		producer := &poolProducer{dsn: "db://primary", shared: true, ready: false}
		if err := c.RegisterDefinition(poolDefinition("pool", producer, nil)); err != nil {
			t.Fatalf("Failed to register definition: %v", err)
		}

		if _, err := c.Bean("pool"); err == nil {
			t.Fatal("Expected failure while not ready")
		}
		producer.ready = true
		product, err := c.Bean("pool")
		if err != nil {
			t.Fatalf("Lookup after readiness failed: %v", err)
		}
		if _, ok := product.(*connectionPool); !ok {
			t.Errorf("Expected the produced object, got %T", product)
		}
	})
}

func TestProducerTypeMatching(t *testing.T) {
	t.Run("Lazy matching never instantiates the producer", func(t *testing.T) {
		c := NewContainer(ContainerConfig{})
		var factoryCalls int32
		producer := &poolProducer{dsn: "db://primary", shared: true, ready: true}
		if err := c.RegisterDefinition(poolDefinition("pool", producer, &factoryCalls)); err != nil {
			t.Fatalf("Failed to register definition: %v", err)
		}

		names := c.NamesForType(TypeOf[*connectionPool](), true, false)
		if len(names) != 0 {
			t.Errorf("Lazy matching should not see an undetermined product: %v", names)
		}
		if n := atomic.LoadInt32(&factoryCalls); n != 0 {
			t.Errorf("Lazy matching instantiated the producer %d times", n)
		}
		if n := atomic.LoadInt32(&producer.objectCalls); n != 0 {
			t.Errorf("Lazy matching produced the object %d times", n)
		}
	})

	t.Run("Declared product type matches without instantiation", func(t *testing.T) {
		c := NewContainer(ContainerConfig{})
		var factoryCalls int32
		producer := &poolProducer{dsn: "db://primary", shared: true, ready: true}
		def := poolDefinition("pool", producer, &factoryCalls)
		def.ProducedType = TypeOf[*connectionPool]()
		if err := c.RegisterDefinition(def); err != nil {
			t.Fatalf("Failed to register definition: %v", err)
		}

		names := c.NamesForType(TypeOf[*connectionPool](), true, false)
		if len(names) != 1 || names[0] != "pool" {
			t.Errorf("Expected declared product type to match lazily, got %v", names)
		}
		if n := atomic.LoadInt32(&factoryCalls); n != 0 {
			t.Errorf("Static matching instantiated the producer %d times", n)
		}
	})

	t.Run("Eager matching asks the producer", func(t *testing.T) {
		c := NewContainer(ContainerConfig{})
		producer := &poolProducer{
			dsn:        "db://primary",
			shared:     true,
			ready:      true,
			staticType: TypeOf[*connectionPool]().Type,
		}
		if err := c.RegisterDefinition(poolDefinition("pool", producer, nil)); err != nil {
			t.Fatalf("Failed to register definition: %v", err)
		}

		names := c.NamesForType(TypeOf[*connectionPool](), true, true)
		if len(names) != 1 || names[0] != "pool" {
			t.Errorf("Expected eager matching to find the product, got %v", names)
		}
		if n := atomic.LoadInt32(&producer.objectCalls); n != 0 {
			t.Errorf("ObjectType should have answered without production, got %d calls", n)
		}
	})

	t.Run("Producer itself matches in dereference form", func(t *testing.T) {
		c := NewContainer(ContainerConfig{})
		producer := &poolProducer{dsn: "db://primary", shared: true, ready: true}
		def := poolDefinition("pool", producer, nil)
		def.ProducedType = TypeOf[*connectionPool]()
		if err := c.RegisterDefinition(def); err != nil {
			t.Fatalf("Failed to register definition: %v", err)
		}

		names := c.NamesForType(TypeOf[*poolProducer](), true, true)
		if len(names) != 1 || names[0] != "&pool" {
			t.Errorf("Expected the dereference form, got %v", names)
		}
	})

	t.Run("BeanType reports the product type", func(t *testing.T) {
		c := NewContainer(ContainerConfig{})
		producer := &poolProducer{dsn: "db://primary", shared: true, ready: true}
		def := poolDefinition("pool", producer, nil)
		def.ProducedType = TypeOf[*connectionPool]()
		if err := c.RegisterDefinition(def); err != nil {
			t.Fatalf("Failed to register definition: %v", err)
		}

		typ, err := c.BeanType("pool")
		if err != nil {
			t.Fatalf("BeanType failed: %v", err)
		}
		if typ != TypeOf[*connectionPool]().Type {
			t.Errorf("Unexpected product type: %v", typ)
		}
		typ, err = c.BeanType("&pool")
		if err != nil {
			t.Fatalf("BeanType on producer form failed: %v", err)
		}
		if typ != TypeOf[*poolProducer]().Type {
			t.Errorf("Unexpected producer type: %v", typ)
		}
	})
}

func TestProducerPreInstantiation(t *testing.T) {
	t.Run("Producers are created eagerly, products only on request", func(t *testing.T) {
		c := NewContainer(ContainerConfig{})
		var factoryCalls int32
		producer := &poolProducer{dsn: "db://primary", shared: true, ready: true}
		def := poolDefinition("pool", producer, &factoryCalls)
		def.ProducedType = TypeOf[*connectionPool]()
		if err := c.RegisterDefinition(def); err != nil {
			t.Fatalf("Failed to register definition: %v", err)
		}

		if err := c.PreInstantiateSingletons(); err != nil {
			t.Fatalf("Pre-instantiation failed: %v", err)
		}
		if n := atomic.LoadInt32(&factoryCalls); n != 1 {
			t.Errorf("Expected the producer to be created once, got %d", n)
		}
		if n := atomic.LoadInt32(&producer.objectCalls); n != 0 {
			t.Errorf("Product should not have been created, got %d productions", n)
		}
	})

	t.Run("Eager producers have their product created too", func(t *testing.T) {
		c := NewContainer(ContainerConfig{})
		producer := &poolProducer{dsn: "db://primary", shared: true, ready: true, eager: true}
		if err := c.RegisterDefinition(poolDefinition("pool", producer, nil)); err != nil {
			t.Fatalf("Failed to register definition: %v", err)
		}

		if err := c.PreInstantiateSingletons(); err != nil {
			t.Fatalf("Pre-instantiation failed: %v", err)
		}
		if n := atomic.LoadInt32(&producer.objectCalls); n != 1 {
			t.Errorf("Expected eager product creation, got %d productions", n)
		}
	})
}
