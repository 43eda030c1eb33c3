package digitalocean

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	"github.com/digitalocean/godo"
	"golang.org/x/oauth2"

	"github.com/novakdc/spinup/internal/config"
	"github.com/novakdc/spinup/internal/connector"
)

type Connector struct {
	client *godo.Client
	size   string
	log    *slog.Logger
}

// NewConnector builds a DigitalOcean connector from the environment.
// The API token comes from DIGITALOCEAN_TOKEN; a missing token is a
// ConfigError, which main treats as fatal.
func NewConnector(log *slog.Logger) (*Connector, error) {
	token := os.Getenv(config.DigitalOceanTokenEnvVar)
	if token == "" {
		return nil, &connector.ConfigError{
			Provider: "digitalocean",
			Missing:  []string{config.DigitalOceanTokenEnvVar},
		}
	}

	tokenSrc := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := godo.NewClient(oauth2.NewClient(context.Background(), tokenSrc))

	return NewConnectorWithClient(log, client), nil
}

// NewConnectorWithClient builds a connector around an existing godo
// client. Tests use this to point the connector at a stub API server.
func NewConnectorWithClient(log *slog.Logger, client *godo.Client) *Connector {
	size := os.Getenv(config.DropletSizeEnvVar)
	if size == "" {
		size = config.DefaultDropletSize
	}
	return &Connector{
		client: client,
		size:   size,
		log:    log,
	}
}

func (c *Connector) Name() string { return "digitalocean" }

// Describe returns a point-in-time snapshot of the droplet.
func (c *Connector) Describe(ctx context.Context, id string) (*connector.Instance, error) {
	dropletID, err := parseDropletID(id)
	if err != nil {
		return nil, err
	}

	droplet, _, err := c.client.Droplets.Get(ctx, dropletID)
	if err != nil {
		return nil, &connector.TransportError{Provider: "digitalocean", Op: "get droplet", Err: err}
	}
	return newInstance(droplet), nil
}

// Delete destroys the droplet. DigitalOcean acknowledges with HTTP 204
// and the droplet disappears asynchronously; no further polling is
// needed on this provider.
func (c *Connector) Delete(ctx context.Context, id string) error {
	dropletID, err := parseDropletID(id)
	if err != nil {
		return err
	}

	c.log.Info("deleting droplet", "droplet_id", dropletID)
	if _, err := c.client.Droplets.Delete(ctx, dropletID); err != nil {
		c.log.Error("failed to delete droplet", "droplet_id", dropletID, "error", err)
		return &connector.TransportError{Provider: "digitalocean", Op: "delete droplet", Err: err}
	}

	c.log.Info("droplet deleted", "droplet_id", dropletID)
	return nil
}

// parseDropletID validates the numeric id form DigitalOcean uses.
func parseDropletID(id string) (int, error) {
	dropletID, err := strconv.Atoi(id)
	if err != nil {
		return 0, &connector.ValidationError{Field: "id", Reason: "droplet id must be numeric"}
	}
	return dropletID, nil
}

var _ connector.Connector = (*Connector)(nil)
