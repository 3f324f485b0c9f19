package beans

import (
	"iter"
	"sort"

	"github.com/beanbox-dev/beanbox/errors"
)

// Provider is a lazy handle for beans of one requested type. Candidates are
// re-evaluated on every call, so definitions registered after the handle was
// obtained are visible. Single-instance accessors fall back to the parent
// container when nothing matches locally; the streams enumerate the local
// container only, like the other aggregate operations.
type Provider struct {
	container *beanContainer
	requested TypeRef
}

func (c *beanContainer) Provider(requiredType TypeRef) *Provider {
	return &Provider{container: c, requested: requiredType}
}

func (p *Provider) candidates() []string {
	return p.container.NamesForType(p.requested, true, true)
}

// selectOne picks the single candidate, letting a unique primary designation
// break ties among several.
func (p *Provider) selectOne(names []string) (string, error) {
	if len(names) == 1 {
		return names[0], nil
	}
	var primary []string
	for _, name := range names {
		bare, _ := splitProducerName(name)
		if def, ok := p.container.registry.Definition(bare); ok && def.Primary {
			primary = append(primary, name)
		}
	}
	if len(primary) == 1 {
		return primary[0], nil
	}
	return "", errors.ErrNoUniqueBean(p.requested.Type, names)
}

// Get returns the single matching bean, failing when none or several match.
func (p *Provider) Get() (any, error) {
	names := p.candidates()
	if len(names) == 0 {
		if parent := p.container.Parent(); parent != nil {
			return parent.Provider(p.requested).Get()
		}
		return nil, errors.ErrBeanNotFound(p.requested.String())
	}
	name, err := p.selectOne(names)
	if err != nil {
		return nil, err
	}
	return p.container.Bean(name)
}

// GetWithArgs is Get with explicit construction arguments, permitted only for
// prototype-scoped candidates.
func (p *Provider) GetWithArgs(args ...any) (any, error) {
	names := p.candidates()
	if len(names) == 0 {
		if parent := p.container.Parent(); parent != nil {
			return parent.Provider(p.requested).GetWithArgs(args...)
		}
		return nil, errors.ErrBeanNotFound(p.requested.String())
	}
	name, err := p.selectOne(names)
	if err != nil {
		return nil, err
	}
	return p.container.BeanWithArgs(name, args...)
}

// IfAvailable returns the matching bean, or nil without an error when none
// exists. Unresolvable ambiguity still fails.
func (p *Provider) IfAvailable() (any, error) {
	names := p.candidates()
	if len(names) == 0 {
		if parent := p.container.Parent(); parent != nil {
			return parent.Provider(p.requested).IfAvailable()
		}
		return nil, nil
	}
	name, err := p.selectOne(names)
	if err != nil {
		return nil, err
	}
	return p.container.Bean(name)
}

// IfUnique returns the matching bean, or nil without an error when none
// exists or the match is ambiguous.
func (p *Provider) IfUnique() (any, error) {
	names := p.candidates()
	if len(names) == 0 {
		if parent := p.container.Parent(); parent != nil {
			return parent.Provider(p.requested).IfUnique()
		}
		return nil, nil
	}
	name, err := p.selectOne(names)
	if err != nil {
		if errors.IsNoUniqueBean(err) {
			return nil, nil
		}
		return nil, err
	}
	return p.container.Bean(name)
}

// Stream yields every local matching bean in registration order, paired with
// its resolution error. Stopping the iteration early skips the remaining
// candidates without resolving them.
func (p *Provider) Stream() iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		for _, name := range p.candidates() {
			if !yield(p.container.Bean(name)) {
				return
			}
		}
	}
}

// OrderedStream is Stream with candidates sorted by their definitions'
// explicit order, lowest first. Candidates without explicit order follow all
// ordered ones, keeping registration order among themselves.
func (p *Provider) OrderedStream() iter.Seq2[any, error] {
	names := p.candidates()
	sort.SliceStable(names, func(i, j int) bool {
		return p.orderOf(names[i]) < p.orderOf(names[j])
	})
	return func(yield func(any, error) bool) {
		for _, name := range names {
			if !yield(p.container.Bean(name)) {
				return
			}
		}
	}
}

func (p *Provider) orderOf(name string) int {
	bare, _ := splitProducerName(name)
	if def, ok := p.container.registry.Definition(bare); ok {
		return def.effectiveOrder()
	}
	return orderUnset
}
