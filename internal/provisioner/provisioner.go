// Package provisioner drives the create-then-wait workflow: one
// create call against a connector followed by one bounded poll
// sequence over describe until the instance has a public IPv4 address.
package provisioner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/novakdc/spinup/internal/config"
	"github.com/novakdc/spinup/internal/connector"
	"github.com/novakdc/spinup/internal/poll"
)

// Provisioner handles instance provisioning workflows.
type Provisioner struct {
	log    *slog.Logger
	conn   connector.Connector
	policy poll.Policy
}

// New creates a new Provisioner with the default creation policy.
func New(log *slog.Logger, conn connector.Connector) *Provisioner {
	return &Provisioner{
		log:    log,
		conn:   conn,
		policy: config.CreatePolicy,
	}
}

// WithPolicy sets a custom polling policy (useful for testing).
func (p *Provisioner) WithPolicy(policy poll.Policy) *Provisioner {
	p.policy = policy
	return p
}

// Provision creates an instance and waits until the provider reports
// a public IPv4 address for it. The returned descriptor is the first
// snapshot that satisfied the readiness predicate.
func (p *Provisioner) Provision(ctx context.Context, req connector.CreateRequest) (*connector.Instance, error) {
	created, err := p.conn.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}

	log := p.log.With("provider", p.conn.Name(), "instance_id", created.ID)
	log.Info("instance created, waiting for public address", "instance_name", created.Name)

	// The create response may already carry the address; it still
	// counts as the first probe so the attempt budget stays bounded.
	inst, err := poll.Until(ctx, p.policy,
		func(ctx context.Context) (*connector.Instance, error) {
			return p.conn.Describe(ctx, created.ID)
		},
		(*connector.Instance).HasPublicIPv4,
	)
	if err != nil {
		return nil, fmt.Errorf("wait for public address of instance %s: %w", created.ID, err)
	}

	log.Info("instance ready", "address", inst.PublicIPv4, "state", inst.State)
	return inst, nil
}
