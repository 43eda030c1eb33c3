package hetzner

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/novakdc/spinup/internal/config"
	"github.com/novakdc/spinup/internal/connector"
)

type Connector struct {
	client     *hcloud.Client
	serverType string
	log        *slog.Logger
}

// NewConnector builds a Hetzner Cloud connector from the environment.
// The API token comes from HCLOUD_TOKEN.
func NewConnector(log *slog.Logger) (*Connector, error) {
	token := os.Getenv(config.HetznerTokenEnvVar)
	if token == "" {
		return nil, &connector.ConfigError{
			Provider: "hetzner",
			Missing:  []string{config.HetznerTokenEnvVar},
		}
	}

	serverType := os.Getenv(config.HetznerServerTypeEnvVar)
	if serverType == "" {
		serverType = config.DefaultHetznerServerType
	}

	return &Connector{
		client:     hcloud.NewClient(hcloud.WithToken(token)),
		serverType: serverType,
		log:        log,
	}, nil
}

func (c *Connector) Name() string { return "hetzner" }

// Describe returns a point-in-time snapshot of the server.
func (c *Connector) Describe(ctx context.Context, id string) (*connector.Instance, error) {
	serverID, err := parseServerID(id)
	if err != nil {
		return nil, err
	}

	server, _, err := c.client.Server.GetByID(ctx, serverID)
	if err != nil {
		return nil, &connector.TransportError{Provider: "hetzner", Op: "get server", Err: err}
	}
	if server == nil {
		return nil, &connector.NotFoundError{Resource: "server", Ref: id}
	}
	return newInstance(server), nil
}

// Delete destroys the server. Hetzner deletes running servers
// directly; the returned action completes asynchronously.
func (c *Connector) Delete(ctx context.Context, id string) error {
	serverID, err := parseServerID(id)
	if err != nil {
		return err
	}

	c.log.Info("deleting server", "server_id", serverID)
	_, _, err = c.client.Server.DeleteWithResult(ctx, &hcloud.Server{ID: serverID})
	if err != nil {
		c.log.Error("failed to delete server", "server_id", serverID, "error", err)
		return &connector.TransportError{Provider: "hetzner", Op: "delete server", Err: err}
	}

	c.log.Info("server deleted", "server_id", serverID)
	return nil
}

// parseServerID validates the numeric id form Hetzner uses.
func parseServerID(id string) (int64, error) {
	serverID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, &connector.ValidationError{Field: "id", Reason: "server id must be numeric"}
	}
	return serverID, nil
}

var _ connector.Connector = (*Connector)(nil)
