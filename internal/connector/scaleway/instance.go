package scaleway

import (
	"strings"

	"github.com/google/uuid"
	"github.com/scaleway/scaleway-sdk-go/api/instance/v1"

	"github.com/novakdc/spinup/internal/connector"
)

// newInstance maps a Scaleway server onto the provider-neutral
// descriptor. Only the first public IPv4 address is reported.
func newInstance(server *instance.Server) *connector.Instance {
	inst := &connector.Instance{
		ID:     server.ID,
		Name:   server.Name,
		Region: string(server.Zone),
		State:  mapState(server.State),
	}
	if server.Image != nil {
		inst.Image = server.Image.Name
	}
	for _, ip := range server.PublicIPs {
		if ip != nil && ip.Address != nil && ip.Address.To4() != nil {
			inst.PublicIPv4 = ip.Address.String()
			break
		}
	}
	return inst
}

// mapState normalizes Scaleway server states.
func mapState(state instance.ServerState) connector.State {
	switch state {
	case instance.ServerStateStarting:
		return connector.StatePending
	case instance.ServerStateRunning:
		return connector.StateActive
	case instance.ServerStateStopping:
		return connector.StatePending
	case instance.ServerStateStopped, instance.ServerStateStoppedInPlace:
		return connector.StateStopped
	default:
		return connector.StateUnknown
	}
}

// validateServerID checks the UUID form Scaleway uses.
func validateServerID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return &connector.ValidationError{Field: "id", Reason: "server id must be a UUID"}
	}
	return nil
}

// isAlreadyStopped reports whether a poweroff failed only because the
// server was not running.
func isAlreadyStopped(err error) bool {
	return err != nil && strings.Contains(err.Error(), "should be running")
}
