package scaleway

import (
	"context"

	"github.com/scaleway/scaleway-sdk-go/api/instance/v1"
	"github.com/scaleway/scaleway-sdk-go/scw"

	"github.com/novakdc/spinup/internal/config"
	"github.com/novakdc/spinup/internal/connector"
)

// Create provisions a new server in the connector's zone and powers
// it on. Scaleway injects all project SSH keys into new servers, so
// the key reference is validated for presence but not resolved to a
// vendor id. The request region must match the configured zone
// because describe/delete calls carry only the server id.
func (c *Connector) Create(ctx context.Context, req connector.CreateRequest) (*connector.Instance, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Region != string(c.zone) {
		return nil, &connector.ValidationError{
			Field:  "region",
			Reason: "must match the configured zone " + string(c.zone),
		}
	}

	c.log.Info("creating server",
		"name", req.Name,
		"zone", req.Region,
		"image", req.Image,
		"type", c.commercialType)

	resp, err := c.instanceAPI.CreateServer(&instance.CreateServerRequest{
		Zone:              c.zone,
		Name:              req.Name,
		Project:           &c.projectID,
		CommercialType:    c.commercialType,
		Image:             &req.Image,
		Tags:              []string{config.InstanceTag},
		DynamicIPRequired: scw.BoolPtr(true),
	}, scw.WithContext(ctx))
	if err != nil {
		return nil, &connector.TransportError{Provider: "scaleway", Op: "create server", Err: err}
	}

	serverID := resp.Server.ID
	c.log.Info("server created", "server_id", serverID, "server_name", resp.Server.Name)

	if err := c.powerOn(ctx, serverID); err != nil {
		c.cleanup(ctx, serverID)
		return nil, &connector.TransportError{Provider: "scaleway", Op: "power on server", Err: err}
	}

	return newInstance(resp.Server), nil
}

// powerOn starts the server.
func (c *Connector) powerOn(ctx context.Context, serverID string) error {
	_, err := c.instanceAPI.ServerAction(&instance.ServerActionRequest{
		Zone:     c.zone,
		ServerID: serverID,
		Action:   instance.ServerActionPoweron,
	}, scw.WithContext(ctx))
	return err
}

// cleanup deletes a server left over from a failed create.
func (c *Connector) cleanup(ctx context.Context, serverID string) {
	err := c.instanceAPI.DeleteServer(&instance.DeleteServerRequest{
		Zone:     c.zone,
		ServerID: serverID,
	}, scw.WithContext(ctx))
	if err != nil {
		c.log.Error("failed to clean up server", "server_id", serverID, "error", err)
	}
}
