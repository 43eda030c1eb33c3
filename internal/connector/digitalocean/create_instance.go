package digitalocean

import (
	"context"
	"fmt"

	"github.com/digitalocean/godo"

	"github.com/novakdc/spinup/internal/config"
	"github.com/novakdc/spinup/internal/connector"
)

// Create provisions a new droplet. The SSH key reference is a key
// name; it is resolved against the account key list first, so no
// droplet is created when the key does not exist.
func (c *Connector) Create(ctx context.Context, req connector.CreateRequest) (*connector.Instance, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	keyID, err := c.resolveSSHKey(ctx, req.SSHKeyRef)
	if err != nil {
		return nil, fmt.Errorf("resolve ssh key: %w", err)
	}

	createReq := &godo.DropletCreateRequest{
		Name:   req.Name,
		Region: req.Region,
		Size:   c.size,
		Image:  godo.DropletCreateImage{Slug: req.Image},
		SSHKeys: []godo.DropletCreateSSHKey{
			{ID: keyID},
		},
		Tags: []string{config.InstanceTag},
	}

	c.log.Info("creating droplet",
		"name", req.Name,
		"region", req.Region,
		"image", req.Image,
		"size", c.size)

	droplet, _, err := c.client.Droplets.Create(ctx, createReq)
	if err != nil {
		return nil, &connector.TransportError{Provider: "digitalocean", Op: "create droplet", Err: err}
	}

	c.log.Info("droplet created", "droplet_id", droplet.ID, "droplet_name", droplet.Name)
	return newInstance(droplet), nil
}

// resolveSSHKey maps an account key name to DigitalOcean's numeric
// key id.
func (c *Connector) resolveSSHKey(ctx context.Context, ref string) (int, error) {
	keys, _, err := c.client.Keys.List(ctx, &godo.ListOptions{})
	if err != nil {
		return 0, &connector.TransportError{Provider: "digitalocean", Op: "list ssh keys", Err: err}
	}

	for _, key := range keys {
		if key.Name == ref {
			return key.ID, nil
		}
	}
	return 0, &connector.NotFoundError{Resource: "ssh key", Ref: ref}
}
