package beanbox

import (
	"github.com/beanbox-dev/beanbox/errors"
)

// Re-export error constructors so most callers only import the root package.
var (
	ErrBeanNotFound          = errors.ErrBeanNotFound
	ErrBeanNotOfRequiredType = errors.ErrBeanNotOfRequiredType
	ErrNoUniqueBean          = errors.ErrNoUniqueBean
	ErrDefinitionStore       = errors.ErrDefinitionStore
	ErrBeanCreation          = errors.ErrBeanCreation
	ErrAliasCycle            = errors.ErrAliasCycle
	ErrObjectNotReady        = errors.ErrObjectNotReady
	ErrScopeNotRegistered    = errors.ErrScopeNotRegistered
)

// Re-export sentinel errors for error comparison using errors.Is().
var (
	ErrBeanNotFoundSentinel          = errors.ErrBeanNotFoundSentinel
	ErrBeanNotOfRequiredTypeSentinel = errors.ErrBeanNotOfRequiredTypeSentinel
	ErrNoUniqueBeanSentinel          = errors.ErrNoUniqueBeanSentinel
	ErrDefinitionStoreSentinel       = errors.ErrDefinitionStoreSentinel
	ErrBeanCreationSentinel          = errors.ErrBeanCreationSentinel
	ErrAliasCycleSentinel            = errors.ErrAliasCycleSentinel
	ErrObjectNotReadySentinel        = errors.ErrObjectNotReadySentinel
	ErrScopeNotRegisteredSentinel    = errors.ErrScopeNotRegisteredSentinel
)

// Re-export error predicates.
var (
	IsBeanNotFound          = errors.IsBeanNotFound
	IsBeanNotOfRequiredType = errors.IsBeanNotOfRequiredType
	IsNoUniqueBean          = errors.IsNoUniqueBean
	IsDefinitionStore       = errors.IsDefinitionStore
	IsBeanCreation          = errors.IsBeanCreation
	IsAliasCycle            = errors.IsAliasCycle
	IsObjectNotReady        = errors.IsObjectNotReady
	IsScopeNotRegistered    = errors.IsScopeNotRegistered
)

// BeanError is the structured error type carried by all container errors.
type BeanError = errors.BeanError
