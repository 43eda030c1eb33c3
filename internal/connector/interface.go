package connector

import "context"

// State is the normalized lifecycle state of a compute instance.
// Vendor-specific states are mapped onto this set by each connector.
type State string

const (
	StatePending    State = "pending"
	StateActive     State = "active"
	StateStopped    State = "stopped"
	StateTerminated State = "terminated"
	StateUnknown    State = "unknown"
)

// Instance is a point-in-time snapshot of a compute instance as
// reported by the provider. The ID is assigned exactly once at
// creation and is the sole key for all describe/delete calls.
type Instance struct {
	ID         string
	Name       string
	Region     string
	Image      string
	State      State
	PublicIPv4 string
}

// HasPublicIPv4 reports whether the provider has assigned a public
// IPv4 address, which is the readiness condition for a new instance.
func (i *Instance) HasPublicIPv4() bool {
	return i != nil && i.PublicIPv4 != ""
}

// Terminal reports whether the instance has reached a state it cannot
// leave on its own, which is the readiness condition for teardown.
func (i *Instance) Terminal() bool {
	return i != nil && (i.State == StateStopped || i.State == StateTerminated)
}

func (i *Instance) String() string {
	if i == nil {
		return "<nil>"
	}
	if i.PublicIPv4 == "" {
		return i.Name + " [" + i.ID + "]"
	}
	return i.Name + " [" + i.ID + " " + i.PublicIPv4 + "]"
}

// CreateRequest contains the parameters for provisioning a new
// instance. SSHKeyRef is a key name; connectors resolve it to the
// vendor's key identifier before creating anything.
type CreateRequest struct {
	Name      string
	Region    string
	Image     string
	SSHKeyRef string
}

// Validate checks that all request fields are present. It returns a
// *ValidationError naming the first missing field so callers can abort
// before any remote call is issued.
func (r CreateRequest) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", r.Name},
		{"region", r.Region},
		{"image", r.Image},
		{"ssh-key", r.SSHKeyRef},
	}
	for _, f := range fields {
		if f.value == "" {
			return &ValidationError{Field: f.name, Reason: "must not be empty"}
		}
	}
	return nil
}

// Connector is the capability set every provider implements.
type Connector interface {
	Name() string
	Create(ctx context.Context, req CreateRequest) (*Instance, error)
	Describe(ctx context.Context, id string) (*Instance, error)
	Delete(ctx context.Context, id string) error
}
