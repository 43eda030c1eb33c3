package connector

import "fmt"

// ConfigError reports missing or unusable provider credentials or
// settings. It is fatal: main maps it to exit code 1 before any remote
// call is made.
type ConfigError struct {
	Provider string
	Missing  []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: missing required environment variables: %v", e.Provider, e.Missing)
}

// ValidationError reports a caller-supplied parameter the connector
// refuses to send to the provider.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a referenced resource the provider does not
// know about, such as an SSH key name with no matching account key.
type NotFoundError struct {
	Resource string
	Ref      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Ref)
}

// TransportError wraps a network or HTTP failure talking to the
// provider API.
type TransportError struct {
	Provider string
	Op       string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
