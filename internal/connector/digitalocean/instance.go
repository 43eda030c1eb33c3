package digitalocean

import (
	"strconv"

	"github.com/digitalocean/godo"

	"github.com/novakdc/spinup/internal/connector"
)

// newInstance maps a godo droplet onto the provider-neutral
// descriptor. The public IPv4 lives in networks.v4 with type "public".
func newInstance(droplet *godo.Droplet) *connector.Instance {
	inst := &connector.Instance{
		ID:    strconv.Itoa(droplet.ID),
		Name:  droplet.Name,
		State: mapStatus(droplet.Status),
	}
	if droplet.Region != nil {
		inst.Region = droplet.Region.Slug
	}
	if droplet.Image != nil {
		inst.Image = droplet.Image.Slug
	}
	if droplet.Networks != nil {
		for _, net := range droplet.Networks.V4 {
			if net.Type == "public" {
				inst.PublicIPv4 = net.IPAddress
				break
			}
		}
	}
	return inst
}

// mapStatus normalizes DigitalOcean droplet status values.
func mapStatus(status string) connector.State {
	switch status {
	case "new":
		return connector.StatePending
	case "active":
		return connector.StateActive
	case "off":
		return connector.StateStopped
	case "archive":
		return connector.StateTerminated
	default:
		return connector.StateUnknown
	}
}
