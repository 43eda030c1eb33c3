package hetzner

import (
	"context"
	"fmt"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/novakdc/spinup/internal/config"
	"github.com/novakdc/spinup/internal/connector"
)

// Create provisions a new server. The SSH key reference is a key
// name; it is resolved against the project's keys first, so no server
// is created when the key does not exist.
func (c *Connector) Create(ctx context.Context, req connector.CreateRequest) (*connector.Instance, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sshKey, _, err := c.client.SSHKey.Get(ctx, req.SSHKeyRef)
	if err != nil {
		return nil, &connector.TransportError{Provider: "hetzner", Op: "get ssh key", Err: err}
	}
	if sshKey == nil {
		return nil, &connector.NotFoundError{Resource: "ssh key", Ref: req.SSHKeyRef}
	}

	c.log.Info("creating server",
		"name", req.Name,
		"location", req.Region,
		"image", req.Image,
		"type", c.serverType)

	result, _, err := c.client.Server.Create(ctx, hcloud.ServerCreateOpts{
		Name:             req.Name,
		ServerType:       &hcloud.ServerType{Name: c.serverType},
		Image:            &hcloud.Image{Name: req.Image},
		Location:         &hcloud.Location{Name: req.Region},
		SSHKeys:          []*hcloud.SSHKey{sshKey},
		StartAfterCreate: hcloud.Ptr(true),
		Labels: map[string]string{
			"tool": config.InstanceTag,
		},
	})
	if err != nil {
		return nil, &connector.TransportError{Provider: "hetzner", Op: "create server", Err: err}
	}

	c.log.Info("server created",
		"server_id", result.Server.ID,
		"server_name", result.Server.Name)

	// Re-fetch so the descriptor reflects assigned networking.
	inst, err := c.Describe(ctx, fmt.Sprint(result.Server.ID))
	if err != nil {
		return nil, fmt.Errorf("get server: %w", err)
	}
	return inst, nil
}
