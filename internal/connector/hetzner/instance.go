package hetzner

import (
	"strconv"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/novakdc/spinup/internal/connector"
)

// newInstance maps an hcloud server onto the provider-neutral
// descriptor.
func newInstance(server *hcloud.Server) *connector.Instance {
	inst := &connector.Instance{
		ID:    strconv.FormatInt(server.ID, 10),
		Name:  server.Name,
		State: mapStatus(server.Status),
	}
	if server.Datacenter != nil && server.Datacenter.Location != nil {
		inst.Region = server.Datacenter.Location.Name
	}
	if server.Image != nil {
		inst.Image = server.Image.Name
	}
	if server.PublicNet.IPv4.IP != nil {
		inst.PublicIPv4 = server.PublicNet.IPv4.IP.String()
	}
	return inst
}

// mapStatus normalizes Hetzner server status values.
func mapStatus(status hcloud.ServerStatus) connector.State {
	switch status {
	case hcloud.ServerStatusInitializing, hcloud.ServerStatusStarting:
		return connector.StatePending
	case hcloud.ServerStatusRunning:
		return connector.StateActive
	case hcloud.ServerStatusStopping, hcloud.ServerStatusDeleting:
		return connector.StatePending
	case hcloud.ServerStatusOff:
		return connector.StateStopped
	default:
		return connector.StateUnknown
	}
}
