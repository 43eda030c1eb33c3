package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/novakdc/spinup/internal/config"
	"github.com/novakdc/spinup/internal/connector"
)

// Create runs a single EC2 instance and tags it with the requested
// name. SSHKeyRef is the EC2 key pair name; RunInstances rejects an
// unknown key pair itself, so no separate lookup is needed here.
func (c *Connector) Create(ctx context.Context, req connector.CreateRequest) (*connector.Instance, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c.log.Info("creating instance",
		"name", req.Name,
		"region", c.region,
		"image", req.Image,
		"instance_type", c.instanceType)

	out, err := c.api.RunInstances(ctx, &ec2.RunInstancesInput{
		ImageId:      aws.String(req.Image),
		InstanceType: types.InstanceType(c.instanceType),
		KeyName:      aws.String(req.SSHKeyRef),
		MinCount:     aws.Int32(1),
		MaxCount:     aws.Int32(1),
		Placement: &types.Placement{
			AvailabilityZone: aws.String(req.Region),
		},
	})
	if err != nil {
		return nil, &connector.TransportError{Provider: "aws", Op: "run instance", Err: err}
	}
	if len(out.Instances) == 0 {
		return nil, fmt.Errorf("run instance: no instance in response")
	}

	inst := newInstance(out.Instances[0], c.region)
	c.log.Info("instance created", "instance_id", inst.ID)

	// Tag after creation so the instance carries a human-readable name
	// in the console. A tagging failure does not orphan the instance,
	// so it aborts the operation but leaves the instance running.
	if _, err := c.api.CreateTags(ctx, &ec2.CreateTagsInput{
		Resources: []string{inst.ID},
		Tags: []types.Tag{
			{Key: aws.String("Name"), Value: aws.String(req.Name)},
			{Key: aws.String("tool"), Value: aws.String(config.InstanceTag)},
		},
	}); err != nil {
		return nil, &connector.TransportError{Provider: "aws", Op: "tag instance", Err: err}
	}

	inst.Name = req.Name
	return inst, nil
}
