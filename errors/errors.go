package errors

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/xraph/go-utils/errs"
)

// =============================================================================
// ERROR CODES
// =============================================================================

// Error code constants for structured errors.
const (
	CodeBeanNotFound          = "BEAN_NOT_FOUND"
	CodeBeanNotOfRequiredType = "BEAN_NOT_OF_REQUIRED_TYPE"
	CodeNoUniqueBean          = "NO_UNIQUE_BEAN"
	CodeDefinitionStoreError  = "DEFINITION_STORE_ERROR"
	CodeBeanCreationFailed    = "BEAN_CREATION_FAILED"
	CodeAliasCycle            = "ALIAS_CYCLE"
	CodeObjectNotReady        = "OBJECT_NOT_READY"
	CodeScopeNotRegistered    = "SCOPE_NOT_REGISTERED"
)

// =============================================================================
// CONTAINER ERRORS
// =============================================================================

// BeanError represents a structured error with a machine-readable code.
type BeanError = errs.Error

// ErrBeanNotFound reports that no definition or manually registered instance
// exists under the given name anywhere in the hierarchy.
func ErrBeanNotFound(name string) *BeanError {
	return errs.NewError(CodeBeanNotFound, "no bean named '"+name+"' found", nil)
}

// ErrBeanNotOfRequiredType reports that a name resolved but the instance is
// not assignable to the requested type.
func ErrBeanNotOfRequiredType(name string, required, actual reflect.Type) *BeanError {
	return errs.NewError(CodeBeanNotOfRequiredType,
		fmt.Sprintf("bean '%s' is of type %v, not assignable to required type %v", name, actual, required), nil)
}

// ErrNoUniqueBean reports an ambiguous by-type lookup: more than one candidate
// matched and no single primary designation broke the tie.
func ErrNoUniqueBean(requested reflect.Type, names []string) *BeanError {
	return errs.NewError(CodeNoUniqueBean,
		fmt.Sprintf("expected single bean of type %v but found %d: %s",
			requested, len(names), strings.Join(names, ", ")), nil)
}

// ErrDefinitionStore reports invalid usage of the definition store, such as
// explicit construction arguments for a non-prototype bean.
func ErrDefinitionStore(name, message string) *BeanError {
	return errs.NewError(CodeDefinitionStoreError, "bean '"+name+"': "+message, nil)
}

// ErrBeanCreation wraps a construction failure with the originating bean name.
// The failed attempt is never cached; the next lookup retries from scratch.
func ErrBeanCreation(name string, cause error) *BeanError {
	return errs.NewError(CodeBeanCreationFailed, "error creating bean '"+name+"'", cause)
}

// ErrCircularDependency reports a factory that transitively resolves a name
// already being created in the same resolution chain. Surfaced as a creation
// failure so callers match it with IsBeanCreation.
func ErrCircularDependency(chain []string) *BeanError {
	return errs.NewError(CodeBeanCreationFailed,
		"circular dependency detected: "+strings.Join(chain, " -> "), nil)
}

// ErrAliasCycle reports a loop in alias resolution.
func ErrAliasCycle(chain []string) *BeanError {
	return errs.NewError(CodeAliasCycle, "alias cycle detected: "+strings.Join(chain, " -> "), nil)
}

// ErrObjectNotReady reports that a producer cannot yet determine its object.
// Type-matching callers treat this as a non-match; direct retrieval callers
// treat it as a creation failure.
func ErrObjectNotReady(name string) *BeanError {
	return errs.NewError(CodeObjectNotReady, "producer '"+name+"' cannot determine its object yet", nil)
}

// ErrScopeNotRegistered reports a definition referencing a scope name for
// which no scope store has been registered.
func ErrScopeNotRegistered(scopeName, beanName string) *BeanError {
	return errs.NewError(CodeScopeNotRegistered,
		"no scope registered for name '"+scopeName+"' (bean '"+beanName+"')", nil)
}

// =============================================================================
// SENTINEL ERRORS (for use with Is)
// =============================================================================

// Sentinel errors that can be used with errors.Is comparisons.
var (
	ErrBeanNotFoundSentinel          = &BeanError{Code: CodeBeanNotFound}
	ErrBeanNotOfRequiredTypeSentinel = &BeanError{Code: CodeBeanNotOfRequiredType}
	ErrNoUniqueBeanSentinel          = &BeanError{Code: CodeNoUniqueBean}
	ErrDefinitionStoreSentinel       = &BeanError{Code: CodeDefinitionStoreError}
	ErrBeanCreationSentinel          = &BeanError{Code: CodeBeanCreationFailed}
	ErrAliasCycleSentinel            = &BeanError{Code: CodeAliasCycle}
	ErrObjectNotReadySentinel        = &BeanError{Code: CodeObjectNotReady}
	ErrScopeNotRegisteredSentinel    = &BeanError{Code: CodeScopeNotRegistered}
)

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsBeanNotFound checks if the error is a bean not found error.
func IsBeanNotFound(err error) bool {
	return Is(err, ErrBeanNotFoundSentinel)
}

// IsBeanNotOfRequiredType checks if the error is a type mismatch error.
func IsBeanNotOfRequiredType(err error) bool {
	return Is(err, ErrBeanNotOfRequiredTypeSentinel)
}

// IsNoUniqueBean checks if the error is an ambiguous by-type lookup error.
func IsNoUniqueBean(err error) bool {
	return Is(err, ErrNoUniqueBeanSentinel)
}

// IsDefinitionStore checks if the error is a definition store usage error.
func IsDefinitionStore(err error) bool {
	return Is(err, ErrDefinitionStoreSentinel)
}

// IsBeanCreation checks if the error is a bean creation failure.
func IsBeanCreation(err error) bool {
	return Is(err, ErrBeanCreationSentinel)
}

// IsAliasCycle checks if the error is an alias cycle error.
func IsAliasCycle(err error) bool {
	return Is(err, ErrAliasCycleSentinel)
}

// IsObjectNotReady checks if the error is a producer not-ready error.
func IsObjectNotReady(err error) bool {
	return Is(err, ErrObjectNotReadySentinel)
}

// IsScopeNotRegistered checks if the error is a missing scope store error.
func IsScopeNotRegistered(err error) bool {
	return Is(err, ErrScopeNotRegisteredSentinel)
}

// =============================================================================
// STANDARD ERRORS PACKAGE INTEGRATION
// =============================================================================

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around errors.Is from the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target, and if so,
// sets target to that error value and returns true. Otherwise, it returns false.
// This is a convenience wrapper around errors.As from the standard library.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if err's
// type contains an Unwrap method returning error. Otherwise, Unwrap returns nil.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// New returns an error that formats as the given text.
// This is a convenience wrapper around errors.New from the standard library.
func New(text string) error {
	return errors.New(text)
}

// Join returns an error that wraps the given errors.
// Any nil error values are discarded.
func Join(errList ...error) error {
	return errors.Join(errList...)
}
