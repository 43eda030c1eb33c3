package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/novakdc/spinup/internal/connector"
)

// newInstance maps an EC2 instance onto the provider-neutral
// descriptor.
func newInstance(inst types.Instance, region string) *connector.Instance {
	out := &connector.Instance{
		ID:         aws.ToString(inst.InstanceId),
		Region:     region,
		Image:      aws.ToString(inst.ImageId),
		PublicIPv4: aws.ToString(inst.PublicIpAddress),
		State:      connector.StateUnknown,
	}
	if inst.State != nil {
		out.State = mapState(inst.State.Name)
	}
	for _, tag := range inst.Tags {
		if aws.ToString(tag.Key) == "Name" {
			out.Name = aws.ToString(tag.Value)
			break
		}
	}
	return out
}

// mapState normalizes EC2 instance state names.
func mapState(name types.InstanceStateName) connector.State {
	switch name {
	case types.InstanceStateNamePending:
		return connector.StatePending
	case types.InstanceStateNameRunning:
		return connector.StateActive
	case types.InstanceStateNameStopping, types.InstanceStateNameShuttingDown:
		return connector.StatePending
	case types.InstanceStateNameStopped:
		return connector.StateStopped
	case types.InstanceStateNameTerminated:
		return connector.StateTerminated
	default:
		return connector.StateUnknown
	}
}
