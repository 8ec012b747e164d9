// Package scanerr defines the errors a registrar scan can fail with. Every
// failure is fatal to the scan that raised it; each error carries the type
// name, member name or offending literal needed to act on it.
package scanerr

import "fmt"

// NamespaceUnsetError is returned when a scan runs before a namespace was
// configured.
type NamespaceUnsetError struct {
	Registrar string
}

// Error implements the error interface.
func (e *NamespaceUnsetError) Error() string {
	return fmt.Sprintf("cannot scan registrar '%s': namespace is not set", e.Registrar)
}

// MissingRegistrarMarkerError is returned when the target type does not carry
// exactly one registrar marker.
type MissingRegistrarMarkerError struct {
	Registrar string
}

// Error implements the error interface.
func (e *MissingRegistrarMarkerError) Error() string {
	return fmt.Sprintf("type '%s' is not a registrar: it must declare exactly one registrar marker", e.Registrar)
}

// NotScannableSingletonError is returned when the target type does not
// resolve to a single shared instance.
type NotScannableSingletonError struct {
	Registrar string
	Reason    error
}

// Error implements the error interface.
func (e *NotScannableSingletonError) Error() string {
	return fmt.Sprintf("registrar '%s' is not a scannable singleton: %v", e.Registrar, e.Reason)
}

// Unwrap returns the underlying reason.
func (e *NotScannableSingletonError) Unwrap() error {
	return e.Reason
}

// InvalidLocalNameError is returned when an explicit name contains uppercase
// characters. It names the literal, not the member, since the literal is
// caller-authored text.
type InvalidLocalNameError struct {
	Name string
}

// Error implements the error interface.
func (e *InvalidLocalNameError) Error() string {
	return fmt.Sprintf("invalid local name %q: names must not contain uppercase characters", e.Name)
}

// MissingValueError is returned when a qualifying member holds no value.
type MissingValueError struct {
	Registrar string
	Member    string
}

// Error implements the error interface.
func (e *MissingValueError) Error() string {
	return fmt.Sprintf("registrar '%s', member '%s': value is missing", e.Registrar, e.Member)
}

// ProviderRegistrationError is returned when the registration provider
// rejects a pair. Member and Key are empty when the provider could not be
// built at all, as with an immutable store.
type ProviderRegistrationError struct {
	Registrar string
	Member    string
	Key       string
	Err       error
}

// Error implements the error interface.
func (e *ProviderRegistrationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("registrar '%s': registration provider unavailable: %v", e.Registrar, e.Err)
	}
	return fmt.Sprintf("registrar '%s', member '%s': failed to register '%s': %v", e.Registrar, e.Member, e.Key, e.Err)
}

// Unwrap returns the provider's error.
func (e *ProviderRegistrationError) Unwrap() error {
	return e.Err
}

// HookError is returned when an observation listener fails.
type HookError struct {
	Event     string
	Registrar string
	Err       error
}

// Error implements the error interface.
func (e *HookError) Error() string {
	return fmt.Sprintf("registrar '%s': %s listener failed: %v", e.Registrar, e.Event, e.Err)
}

// Unwrap returns the listener's error.
func (e *HookError) Unwrap() error {
	return e.Err
}
