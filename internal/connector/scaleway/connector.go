package scaleway

import (
	"context"
	"log/slog"
	"os"

	"github.com/scaleway/scaleway-sdk-go/api/instance/v1"
	"github.com/scaleway/scaleway-sdk-go/scw"

	"github.com/novakdc/spinup/internal/config"
	"github.com/novakdc/spinup/internal/connector"
	"github.com/novakdc/spinup/internal/poll"
)

type Connector struct {
	client          *scw.Client
	instanceAPI     *instance.API
	projectID       string
	zone            scw.Zone
	commercialType  string
	terminatePolicy poll.Policy
	log             *slog.Logger
}

// NewConnector builds a Scaleway connector from the environment.
// Instances are zone-scoped and describe/delete calls carry only an
// id, so the connector pins one zone from SCW_DEFAULT_ZONE.
func NewConnector(log *slog.Logger) (*Connector, error) {
	accessKey := os.Getenv("SCW_ACCESS_KEY")
	secretKey := os.Getenv("SCW_SECRET_KEY")
	organizationID := os.Getenv("SCW_ORGANIZATION_ID")
	projectID := os.Getenv("SCW_PROJECT_ID")
	defaultZone := os.Getenv("SCW_DEFAULT_ZONE")

	var missing []string
	if accessKey == "" {
		missing = append(missing, "SCW_ACCESS_KEY")
	}
	if secretKey == "" {
		missing = append(missing, "SCW_SECRET_KEY")
	}
	if organizationID == "" {
		missing = append(missing, "SCW_ORGANIZATION_ID")
	}
	if projectID == "" {
		missing = append(missing, "SCW_PROJECT_ID")
	}
	if defaultZone == "" {
		missing = append(missing, "SCW_DEFAULT_ZONE")
	}
	if len(missing) > 0 {
		return nil, &connector.ConfigError{Provider: "scaleway", Missing: missing}
	}

	commercialType := os.Getenv(config.ScalewayCommercialEnvVar)
	if commercialType == "" {
		commercialType = config.DefaultScalewayCommercial
	}

	client, err := scw.NewClient(
		scw.WithDefaultOrganizationID(organizationID),
		scw.WithAuth(accessKey, secretKey),
		scw.WithDefaultZone(scw.Zone(defaultZone)),
	)
	if err != nil {
		return nil, err
	}

	return &Connector{
		client:          client,
		instanceAPI:     instance.NewAPI(client),
		projectID:       projectID,
		zone:            scw.Zone(defaultZone),
		commercialType:  commercialType,
		terminatePolicy: config.TerminatePolicy,
		log:             log,
	}, nil
}

func (c *Connector) Name() string { return "scaleway" }

// Describe returns a point-in-time snapshot of the server.
func (c *Connector) Describe(ctx context.Context, id string) (*connector.Instance, error) {
	if err := validateServerID(id); err != nil {
		return nil, err
	}

	resp, err := c.instanceAPI.GetServer(&instance.GetServerRequest{
		Zone:     c.zone,
		ServerID: id,
	}, scw.WithContext(ctx))
	if err != nil {
		return nil, &connector.TransportError{Provider: "scaleway", Op: "get server", Err: err}
	}
	return newInstance(resp.Server), nil
}

// Delete powers the server off, waits for it to stop, then deletes
// it. Scaleway refuses to delete a running server, so the poweroff
// and the wait are part of teardown on this provider.
func (c *Connector) Delete(ctx context.Context, id string) error {
	if err := validateServerID(id); err != nil {
		return err
	}

	c.log.Info("powering off server", "server_id", id)
	_, err := c.instanceAPI.ServerAction(&instance.ServerActionRequest{
		Zone:     c.zone,
		ServerID: id,
		Action:   instance.ServerActionPoweroff,
	}, scw.WithContext(ctx))
	if err != nil && !isAlreadyStopped(err) {
		return &connector.TransportError{Provider: "scaleway", Op: "power off server", Err: err}
	}

	c.log.Info("waiting for server to stop", "server_id", id)
	if _, err := poll.Until(ctx, c.terminatePolicy,
		func(ctx context.Context) (*connector.Instance, error) {
			return c.Describe(ctx, id)
		},
		(*connector.Instance).Terminal,
	); err != nil {
		return err
	}

	c.log.Info("deleting server", "server_id", id)
	if err := c.instanceAPI.DeleteServer(&instance.DeleteServerRequest{
		Zone:     c.zone,
		ServerID: id,
	}, scw.WithContext(ctx)); err != nil {
		c.log.Error("failed to delete server", "server_id", id, "error", err)
		return &connector.TransportError{Provider: "scaleway", Op: "delete server", Err: err}
	}

	c.log.Info("server deleted", "server_id", id)
	return nil
}

var _ connector.Connector = (*Connector)(nil)
