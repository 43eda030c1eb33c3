// Package decommissioner drives instance teardown. Providers with
// asynchronous termination (EC2, Scaleway) poll to a terminal state
// inside their connector's Delete; this package only owns the
// workflow and its logging.
package decommissioner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/novakdc/spinup/internal/connector"
)

// Decommissioner handles instance teardown workflows.
type Decommissioner struct {
	log  *slog.Logger
	conn connector.Connector
}

// New creates a new Decommissioner.
func New(log *slog.Logger, conn connector.Connector) *Decommissioner {
	return &Decommissioner{log: log, conn: conn}
}

// Decommission deletes the instance with the given id. The id is
// validated by the connector before any remote call is issued.
func (d *Decommissioner) Decommission(ctx context.Context, id string) error {
	log := d.log.With("provider", d.conn.Name(), "instance_id", id)
	log.Info("decommissioning instance")

	if err := d.conn.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete instance %s: %w", id, err)
	}

	log.Info("instance decommissioned")
	return nil
}
