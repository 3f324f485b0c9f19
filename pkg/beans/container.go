package beans

import (
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/beanbox-dev/beanbox/errors"
	"github.com/beanbox-dev/beanbox/pkg/logger"
	"github.com/beanbox-dev/beanbox/pkg/metrics"
)

// Container is the lookup and enumeration contract of one bean container.
// Parent and child containers implement the identical contract; single-name
// operations retry a configured parent on local misses, while the aggregate
// operations (definition names, by-type and by-marker enumeration) consider
// the local container only, by design.
type Container interface {
	// Bean returns the instance registered under the name, shared or
	// independent depending on the definition's scope. Aliases are resolved;
	// the ProducerPrefix requests the raw producer object.
	Bean(name string) (any, error)

	// BeanMatching is Bean plus a type check against requiredType, failing
	// with a not-of-required-type error instead of forcing callers to assert.
	BeanMatching(name string, requiredType TypeRef) (any, error)

	// BeanWithArgs is Bean with explicit construction arguments, permitted
	// only for prototype-scoped names.
	BeanWithArgs(name string, args ...any) (any, error)

	// BeanByType returns the single bean assignable to requiredType, failing
	// with a no-unique-bean error when several candidates match and no single
	// primary designation breaks the tie.
	BeanByType(requiredType TypeRef) (any, error)

	// Provider returns a lazy, re-evaluating handle bound to requiredType.
	Provider(requiredType TypeRef) *Provider

	// ContainsBean reports whether the name resolves to a definition or a
	// manually registered instance, here or in an ancestor.
	ContainsBean(name string) bool

	// IsSingleton reports whether Bean(name) always returns the same shared
	// instance. Unknown names fail with a not-found error.
	IsSingleton(name string) (bool, error)

	// IsPrototype reports whether Bean(name) always returns independent
	// instances. Unknown names fail with a not-found error.
	IsPrototype(name string) (bool, error)

	// IsTypeMatch reports whether Bean(name) would return an instance
	// assignable to requiredType, without initializing producers to decide.
	IsTypeMatch(name string, requiredType TypeRef) (bool, error)

	// IsTypeMatchOf is IsTypeMatch for a plain reflect.Type.
	IsTypeMatchOf(name string, requiredType reflect.Type) (bool, error)

	// BeanType returns the type Bean(name) would produce, initializing
	// producers when needed to determine it. A nil type with a nil error
	// means the type cannot be determined.
	BeanType(name string) (reflect.Type, error)

	// BeanTypeInit is BeanType with explicit control over whether a producer
	// may be initialized just to answer the question.
	BeanTypeInit(name string, allowProducerInit bool) (reflect.Type, error)

	// Aliases returns the other names of the bean. Querying an alias yields
	// the canonical name first.
	Aliases(name string) []string

	// ContainsDefinition reports whether this container (ignoring ancestors)
	// holds a definition under the name.
	ContainsDefinition(name string) bool

	// DefinitionCount returns the number of local definitions.
	DefinitionCount() int

	// DefinitionNames returns all local canonical names in registration order.
	DefinitionNames() []string

	// NamesForType returns the local names whose beans are assignable to
	// requiredType, in registration order. Producer names are reported in
	// ProducerPrefix form when only the producer itself matches.
	NamesForType(requiredType TypeRef, includeNonSingletons, allowEagerInit bool) []string

	// BeansOfType resolves all local beans assignable to requiredType.
	BeansOfType(requiredType TypeRef, includeNonSingletons, allowEagerInit bool) (map[string]any, error)

	// NamesForMarker returns the local names carrying the marker, in
	// registration order.
	NamesForMarker(marker string) []string

	// BeansForMarker resolves all local beans carrying the marker.
	BeansForMarker(marker string) (map[string]any, error)

	// FindMarkerOnBean returns the marker carried by the named local bean,
	// nil when absent, or a not-found error for unknown names.
	FindMarkerOnBean(name, marker string) (Marker, error)

	// RegisterDefinition adds a definition. Names whose singleton instance is
	// already cached cannot be re-registered.
	RegisterDefinition(def *Definition) error

	// RegisterAlias maps alias to name, failing fast on alias cycles.
	RegisterAlias(alias, name string) error

	// RegisterSingleton stores an externally built instance under the name.
	RegisterSingleton(name string, instance any) error

	// RegisterScope attaches an external scope store under the scope name.
	RegisterScope(scopeName string, scope Scope) error

	// PreInstantiateSingletons eagerly creates every non-lazy singleton in
	// registration order.
	PreInstantiateSingletons() error

	// Parent returns the parent container, or nil.
	Parent() Container

	// Close destroys cached singletons in reverse creation order.
	Close() error
}

// ContainerConfig configures a container. The zero value is usable: no-op
// logger, no-op metrics, no parent.
type ContainerConfig struct {
	Logger  logger.Logger
	Metrics metrics.Metrics
	Parent  Container
}

// beanContainer implements Container.
type beanContainer struct {
	id       string
	registry *Registry

	singletons *singletonCache // shared instances, keyed by canonical name
	products   *singletonCache // shared producer products, keyed by producer name

	scopesMu sync.RWMutex
	scopes   map[string]Scope

	// creating maps goroutine id to the stack of names that goroutine is
	// currently constructing, so re-entrant lookups fail instead of waiting
	// on their own in-flight creation.
	creating sync.Map

	parent  Container
	logger  logger.Logger
	metrics metrics.Metrics
}

// NewContainer creates an empty container.
func NewContainer(config ContainerConfig) Container {
	log := config.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	m := config.Metrics
	if m == nil {
		m = metrics.NewNoopMetrics()
	}
	id := uuid.NewString()
	return &beanContainer{
		id:         id,
		registry:   NewRegistry(),
		singletons: newSingletonCache(),
		products:   newSingletonCache(),
		scopes:     make(map[string]Scope),
		parent:     config.Parent,
		logger:     log.With(logger.String("container", id)),
		metrics:    m,
	}
}

// splitProducerName strips the dereference prefix (repeated prefixes
// collapse) and reports whether the caller asked for the producer itself.
func splitProducerName(name string) (bare string, deref bool) {
	bare = name
	for strings.HasPrefix(bare, ProducerPrefix) {
		bare = bare[len(ProducerPrefix):]
		deref = true
	}
	return bare, deref
}

// originalName reconstructs the external form of a name for parent queries.
func originalName(bare string, deref bool) string {
	if deref {
		return ProducerPrefix + bare
	}
	return bare
}

// goroutineID extracts the current goroutine's id from the stack header
// ("goroutine 18 [running]:"). Factories run synchronously on the caller's
// goroutine, so the id identifies one resolution chain.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	s := strings.TrimPrefix(string(buf[:n]), "goroutine ")
	if i := strings.IndexByte(s, ' '); i > 0 {
		if id, err := strconv.ParseUint(s[:i], 10, 64); err == nil {
			return id
		}
	}
	return 0
}

// enterCreation marks the name as under construction by this goroutine. A
// name already on the goroutine's creation stack means a factory is resolving
// itself, directly or transitively; that fails with the full chain rather
// than deadlocking on the in-flight rendezvous.
func (c *beanContainer) enterCreation(name string) error {
	gid := goroutineID()
	v, _ := c.creating.Load(gid)
	chain, _ := v.([]string)
	for _, n := range chain {
		if n == name {
			return errors.ErrCircularDependency(append(append([]string{}, chain...), name))
		}
	}
	c.creating.Store(gid, append(chain, name))
	return nil
}

func (c *beanContainer) exitCreation(name string) {
	gid := goroutineID()
	v, _ := c.creating.Load(gid)
	chain, _ := v.([]string)
	if len(chain) > 0 && chain[len(chain)-1] == name {
		chain = chain[:len(chain)-1]
	}
	if len(chain) == 0 {
		c.creating.Delete(gid)
		return
	}
	c.creating.Store(gid, chain)
}

// =============================================================================
// REGISTRATION
// =============================================================================

func (c *beanContainer) RegisterDefinition(def *Definition) error {
	if def != nil && def.Name != "" && c.singletons.contains(def.Name) {
		return errors.ErrDefinitionStore(def.Name,
			"cannot replace definition: singleton instance already created under this name")
	}
	if err := c.registry.RegisterDefinition(def); err != nil {
		return err
	}

	c.metrics.Counter("beanbox_definitions_registered_total").Inc()
	c.metrics.Gauge("beanbox_definitions").Set(float64(c.registry.DefinitionCount()))
	c.logger.Debug("bean definition registered",
		logger.String("bean", def.Name),
		logger.String("scope", def.Scope),
		logger.Bool("primary", def.Primary),
		logger.Bool("lazy_init", def.LazyInit),
	)
	return nil
}

func (c *beanContainer) RegisterAlias(alias, name string) error {
	if err := c.registry.RegisterAlias(alias, name); err != nil {
		return err
	}
	c.logger.Debug("alias registered",
		logger.String("alias", alias),
		logger.String("bean", name),
	)
	return nil
}

func (c *beanContainer) RegisterSingleton(name string, instance any) error {
	if err := c.registry.RegisterSingleton(name, instance); err != nil {
		return err
	}
	c.logger.Debug("singleton instance registered",
		logger.String("bean", name),
	)
	return nil
}

func (c *beanContainer) RegisterScope(scopeName string, scope Scope) error {
	if scopeName == "" || scopeName == ScopeSingleton || scopeName == ScopePrototype {
		return errors.ErrDefinitionStore(scopeName,
			"scope name must be non-empty and distinct from the built-in scopes")
	}
	if scope == nil {
		return errors.ErrDefinitionStore(scopeName, "scope store must be non-nil")
	}

	c.scopesMu.Lock()
	c.scopes[scopeName] = scope
	c.scopesMu.Unlock()

	c.logger.Debug("scope registered", logger.String("scope", scopeName))
	return nil
}

func (c *beanContainer) registeredScope(name string) (Scope, bool) {
	c.scopesMu.RLock()
	defer c.scopesMu.RUnlock()
	s, ok := c.scopes[name]
	return s, ok
}

// =============================================================================
// LOOKUP
// =============================================================================

func (c *beanContainer) Bean(name string) (any, error) {
	return c.doGetBean(name, TypeRef{}, nil)
}

func (c *beanContainer) BeanMatching(name string, requiredType TypeRef) (any, error) {
	return c.doGetBean(name, requiredType, nil)
}

func (c *beanContainer) BeanWithArgs(name string, args ...any) (any, error) {
	if len(args) == 0 {
		return c.doGetBean(name, TypeRef{}, nil)
	}
	return c.doGetBean(name, TypeRef{}, args)
}

func (c *beanContainer) BeanByType(requiredType TypeRef) (any, error) {
	return c.Provider(requiredType).Get()
}

// doGetBean is the single resolution path behind all Bean variants.
func (c *beanContainer) doGetBean(name string, requiredType TypeRef, args []any) (any, error) {
	c.metrics.Counter("beanbox_resolutions_total").Inc()

	instance, err := c.resolveBean(name, requiredType, args)
	if err != nil {
		c.metrics.Counter("beanbox_resolution_failures_total").Inc()
		return nil, err
	}
	return instance, nil
}

func (c *beanContainer) resolveBean(name string, requiredType TypeRef, args []any) (any, error) {
	bare, deref := splitProducerName(name)

	canonical, err := c.registry.CanonicalName(bare)
	if err != nil {
		return nil, err
	}

	// Manually registered instances take precedence over definitions; the
	// registry forbids name collisions between the two.
	if manual, ok := c.registry.ManualSingleton(canonical); ok {
		if args != nil {
			return nil, errors.ErrDefinitionStore(bare,
				"explicit construction arguments are only supported for prototype-scoped beans")
		}
		return c.finishResolution(canonical, manual, deref, requiredType)
	}

	def, ok := c.registry.Definition(canonical)
	if !ok {
		if c.parent != nil {
			return c.parentBean(originalName(bare, deref), requiredType, args)
		}
		return nil, errors.ErrBeanNotFound(bare)
	}

	raw, err := c.instantiate(canonical, def, args)
	if err != nil {
		return nil, err
	}
	return c.finishResolution(canonical, raw, deref, requiredType)
}

// instantiate applies the definition's scope to produce the raw instance
// (for producers: the producer object itself, not its product).
func (c *beanContainer) instantiate(canonical string, def *Definition, args []any) (any, error) {
	switch {
	case def.IsSingleton():
		if args != nil {
			return nil, errors.ErrDefinitionStore(canonical,
				"explicit construction arguments are only supported for prototype-scoped beans")
		}
		if instance, ok := c.singletons.get(canonical); ok {
			return instance, nil
		}
		if err := c.enterCreation(canonical); err != nil {
			return nil, err
		}
		defer c.exitCreation(canonical)
		return c.singletons.getOrCreate(canonical, func() (any, error) {
			return c.createInstance(canonical, def, nil)
		})

	case def.IsPrototype():
		if err := c.enterCreation(canonical); err != nil {
			return nil, err
		}
		defer c.exitCreation(canonical)
		return c.createInstance(canonical, def, args)

	default:
		if args != nil {
			return nil, errors.ErrDefinitionStore(canonical,
				"explicit construction arguments are only supported for prototype-scoped beans")
		}
		scope, ok := c.registeredScope(def.Scope)
		if !ok {
			return nil, errors.ErrScopeNotRegistered(def.Scope, canonical)
		}
		if err := c.enterCreation(canonical); err != nil {
			return nil, err
		}
		defer c.exitCreation(canonical)
		return scope.Get(canonical, func() (any, error) {
			return c.createInstance(canonical, def, nil)
		})
	}
}

// finishResolution applies producer indirection and the caller's type check
// to a raw resolved instance.
func (c *beanContainer) finishResolution(canonical string, raw any, deref bool, requiredType TypeRef) (any, error) {
	producer, isProducer := raw.(Producer)

	if deref && !isProducer {
		return nil, errors.ErrBeanNotOfRequiredType(ProducerPrefix+canonical,
			producerType, reflect.TypeOf(raw))
	}

	instance := raw
	if isProducer && !deref {
		product, err := c.producerObject(canonical, producer)
		if err != nil {
			if errors.IsObjectNotReady(err) {
				// Fatal for direct retrieval, unlike type-checking callers.
				return nil, errors.ErrBeanCreation(canonical, err)
			}
			if errors.IsBeanCreation(err) {
				return nil, err
			}
			return nil, errors.ErrBeanCreation(canonical, err)
		}
		instance = product
	}

	if !requiredType.IsZero() && !instanceAssignableTo(instance, requiredType) {
		return nil, errors.ErrBeanNotOfRequiredType(originalName(canonical, deref),
			requiredType.Type, reflect.TypeOf(instance))
	}
	return instance, nil
}

// parentBean forwards the identical query upward, preserving the caller's
// name form, type constraint and arguments.
func (c *beanContainer) parentBean(name string, requiredType TypeRef, args []any) (any, error) {
	switch {
	case args != nil:
		return c.parent.BeanWithArgs(name, args...)
	case !requiredType.IsZero():
		return c.parent.BeanMatching(name, requiredType)
	default:
		return c.parent.Bean(name)
	}
}

// createInstance runs the definition's factory. Failures are wrapped with the
// originating name and are never cached by any caller.
func (c *beanContainer) createInstance(canonical string, def *Definition, args []any) (any, error) {
	if def.Instance != nil {
		return def.Instance, nil
	}
	if def.Factory == nil {
		return nil, errors.ErrBeanCreation(canonical,
			errors.New("definition carries neither a factory nor an instance"))
	}

	effective := args
	if effective == nil {
		effective = def.DefaultArgs
	}

	start := time.Now()
	instance, err := def.Factory(effective...)
	c.metrics.Histogram("beanbox_creation_seconds").Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, errors.ErrBeanCreation(canonical, err)
	}
	if instance == nil {
		return nil, errors.ErrBeanCreation(canonical,
			errors.New("factory returned a nil instance"))
	}

	if def.IsSingleton() {
		c.metrics.Counter("beanbox_singletons_created_total").Inc()
	}
	c.logger.Debug("bean instance created",
		logger.String("bean", canonical),
		logger.String("scope", def.Scope),
		logger.Duration("took", time.Since(start)),
	)
	return instance, nil
}

// =============================================================================
// PREDICATES & INTROSPECTION
// =============================================================================

// containsLocal reports whether the canonical name is backed by a local
// definition or manual instance.
func (c *beanContainer) containsLocal(canonical string) bool {
	return c.registry.ContainsDefinition(canonical) || c.registry.ContainsManual(canonical)
}

func (c *beanContainer) ContainsBean(name string) bool {
	bare, deref := splitProducerName(name)
	canonical, err := c.registry.CanonicalName(bare)
	if err != nil {
		return false
	}
	if c.containsLocal(canonical) {
		if !deref {
			return true
		}
		return c.isProducerEntity(canonical)
	}
	if c.parent != nil {
		return c.parent.ContainsBean(originalName(bare, deref))
	}
	return false
}

// isProducerEntity reports whether the local entity under the canonical name
// is a producer, without instantiating it.
func (c *beanContainer) isProducerEntity(canonical string) bool {
	if def, ok := c.registry.Definition(canonical); ok {
		return def.isProducer()
	}
	if manual, ok := c.registry.ManualSingleton(canonical); ok {
		_, isProducer := manual.(Producer)
		return isProducer
	}
	return false
}

func (c *beanContainer) IsSingleton(name string) (bool, error) {
	bare, deref := splitProducerName(name)
	canonical, err := c.registry.CanonicalName(bare)
	if err != nil {
		return false, err
	}

	if _, ok := c.registry.ManualSingleton(canonical); ok {
		if deref && !c.isProducerEntity(canonical) {
			return false, errors.ErrBeanNotFound(name)
		}
		return true, nil
	}

	def, ok := c.registry.Definition(canonical)
	if !ok {
		if c.parent != nil {
			return c.parent.IsSingleton(originalName(bare, deref))
		}
		return false, errors.ErrBeanNotFound(bare)
	}

	if deref || !def.isProducer() {
		return def.IsSingleton(), nil
	}
	// The product's sharing follows the producer's own report. Asking may
	// create the producer, never the product.
	if !def.IsSingleton() {
		return false, nil
	}
	raw, err := c.instantiate(canonical, def, nil)
	if err != nil {
		return false, err
	}
	producer, isProducer := raw.(Producer)
	if !isProducer {
		return def.IsSingleton(), nil
	}
	return producer.SingletonProduct(), nil
}

func (c *beanContainer) IsPrototype(name string) (bool, error) {
	bare, deref := splitProducerName(name)
	canonical, err := c.registry.CanonicalName(bare)
	if err != nil {
		return false, err
	}

	if _, ok := c.registry.ManualSingleton(canonical); ok {
		if deref && !c.isProducerEntity(canonical) {
			return false, errors.ErrBeanNotFound(name)
		}
		return false, nil
	}

	def, ok := c.registry.Definition(canonical)
	if !ok {
		if c.parent != nil {
			return c.parent.IsPrototype(originalName(bare, deref))
		}
		return false, errors.ErrBeanNotFound(bare)
	}

	if deref || !def.isProducer() {
		return def.IsPrototype(), nil
	}
	if def.IsPrototype() {
		return true, nil
	}
	singleton, err := c.IsSingleton(name)
	if err != nil {
		return false, err
	}
	return !singleton, nil
}

func (c *beanContainer) IsTypeMatch(name string, requiredType TypeRef) (bool, error) {
	bare, deref := splitProducerName(name)
	canonical, err := c.registry.CanonicalName(bare)
	if err != nil {
		return false, err
	}
	if c.containsLocal(canonical) {
		return c.typeMatches(canonical, deref, requiredType, false), nil
	}
	if c.parent != nil {
		return c.parent.IsTypeMatch(originalName(bare, deref), requiredType)
	}
	return false, errors.ErrBeanNotFound(bare)
}

func (c *beanContainer) IsTypeMatchOf(name string, requiredType reflect.Type) (bool, error) {
	return c.IsTypeMatch(name, RefOf(requiredType))
}

func (c *beanContainer) BeanType(name string) (reflect.Type, error) {
	return c.BeanTypeInit(name, true)
}

func (c *beanContainer) BeanTypeInit(name string, allowProducerInit bool) (reflect.Type, error) {
	bare, deref := splitProducerName(name)
	canonical, err := c.registry.CanonicalName(bare)
	if err != nil {
		return nil, err
	}
	if c.containsLocal(canonical) {
		return c.beanTypeLocal(canonical, deref, allowProducerInit), nil
	}
	if c.parent != nil {
		return c.parent.BeanTypeInit(originalName(bare, deref), allowProducerInit)
	}
	return nil, errors.ErrBeanNotFound(bare)
}

func (c *beanContainer) Aliases(name string) []string {
	bare, deref := splitProducerName(name)
	canonical, err := c.registry.CanonicalName(bare)
	if err != nil {
		return nil
	}
	if !c.containsLocal(canonical) && c.parent != nil {
		return c.parent.Aliases(originalName(bare, deref))
	}
	aliases := c.registry.Aliases(bare)
	if !deref {
		return aliases
	}
	prefixed := make([]string, len(aliases))
	for i, alias := range aliases {
		prefixed[i] = ProducerPrefix + alias
	}
	return prefixed
}

func (c *beanContainer) Parent() Container { return c.parent }

// =============================================================================
// LISTABLE OPERATIONS (local container only, by design)
// =============================================================================

func (c *beanContainer) ContainsDefinition(name string) bool {
	bare, _ := splitProducerName(name)
	return c.registry.ContainsDefinition(bare)
}

func (c *beanContainer) DefinitionCount() int { return c.registry.DefinitionCount() }

func (c *beanContainer) DefinitionNames() []string { return c.registry.DefinitionNames() }

func (c *beanContainer) NamesForType(requiredType TypeRef, includeNonSingletons, allowEagerInit bool) []string {
	var names []string
	for _, name := range c.registry.DefinitionNames() {
		def, ok := c.registry.Definition(name)
		if !ok {
			continue
		}
		if !includeNonSingletons && !c.definitionIsShared(name, def) {
			continue
		}
		if c.typeMatches(name, false, requiredType, allowEagerInit) {
			names = append(names, name)
			continue
		}
		// The producer itself may satisfy the request even when its product
		// does not; such candidates are reported in dereference form.
		if def.isProducer() && c.typeMatches(name, true, requiredType, allowEagerInit) {
			names = append(names, ProducerPrefix+name)
		}
	}
	for _, name := range c.registry.ManualNames() {
		if c.typeMatches(name, false, requiredType, allowEagerInit) {
			names = append(names, name)
			continue
		}
		if c.isProducerEntity(name) && c.typeMatches(name, true, requiredType, allowEagerInit) {
			names = append(names, ProducerPrefix+name)
		}
	}
	return names
}

func (c *beanContainer) BeansOfType(requiredType TypeRef, includeNonSingletons, allowEagerInit bool) (map[string]any, error) {
	result := make(map[string]any)
	for _, name := range c.NamesForType(requiredType, includeNonSingletons, allowEagerInit) {
		instance, err := c.Bean(name)
		if err != nil {
			return nil, err
		}
		result[name] = instance
	}
	return result, nil
}

// definitionIsShared reports whether lookups under the name return a shared
// instance, accounting for producer products when the producer is already
// available without forcing initialization.
func (c *beanContainer) definitionIsShared(name string, def *Definition) bool {
	if !def.IsSingleton() {
		return false
	}
	if !def.isProducer() {
		return true
	}
	if raw, ok := c.singletons.get(name); ok {
		if producer, isProducer := raw.(Producer); isProducer {
			return producer.SingletonProduct()
		}
	}
	return true
}

// =============================================================================
// LIFECYCLE
// =============================================================================

func (c *beanContainer) PreInstantiateSingletons() error {
	start := time.Now()
	names := c.registry.DefinitionNames()

	for _, name := range names {
		def, ok := c.registry.Definition(name)
		if !ok || !def.IsSingleton() || def.LazyInit {
			continue
		}
		if !def.isProducer() {
			if _, err := c.Bean(name); err != nil {
				return err
			}
			continue
		}
		raw, err := c.Bean(ProducerPrefix + name)
		if err != nil {
			return err
		}
		if eager, ok := raw.(EagerProducer); ok && eager.EagerInit() {
			if _, err := c.Bean(name); err != nil {
				return err
			}
		}
	}

	c.logger.Info("singleton pre-instantiation completed",
		logger.Int("definitions", len(names)),
		logger.Duration("took", time.Since(start)),
	)
	return nil
}

func (c *beanContainer) Close() error {
	err := errors.Join(c.products.destroyAll(), c.singletons.destroyAll())
	if err != nil {
		c.logger.Error("container shutdown finished with errors", logger.Error(err))
		return err
	}
	c.logger.Info("container closed")
	return nil
}
