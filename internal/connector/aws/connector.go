package aws

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/novakdc/spinup/internal/config"
	"github.com/novakdc/spinup/internal/connector"
	"github.com/novakdc/spinup/internal/poll"
)

// EC2API is the slice of the EC2 client this connector uses. Tests
// substitute a scripted fake.
type EC2API interface {
	RunInstances(ctx context.Context, params *ec2.RunInstancesInput, optFns ...func(*ec2.Options)) (*ec2.RunInstancesOutput, error)
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
	TerminateInstances(ctx context.Context, params *ec2.TerminateInstancesInput, optFns ...func(*ec2.Options)) (*ec2.TerminateInstancesOutput, error)
	CreateTags(ctx context.Context, params *ec2.CreateTagsInput, optFns ...func(*ec2.Options)) (*ec2.CreateTagsOutput, error)
}

type Connector struct {
	api             EC2API
	region          string
	instanceType    string
	terminatePolicy poll.Policy
	log             *slog.Logger
}

// NewConnector builds an EC2 connector using the SDK default
// credential chain (environment, shared config, instance profile).
func NewConnector(ctx context.Context, log *slog.Logger) (*Connector, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	if cfg.Region == "" {
		cfg.Region = config.DefaultAWSRegion
	}

	return NewConnectorWithClient(log, ec2.NewFromConfig(cfg), cfg.Region), nil
}

// NewConnectorWithClient builds a connector around an existing EC2
// client. Tests use this with a fake EC2API.
func NewConnectorWithClient(log *slog.Logger, api EC2API, region string) *Connector {
	instanceType := os.Getenv(config.EC2InstanceTypeEnvVar)
	if instanceType == "" {
		instanceType = config.DefaultEC2InstanceType
	}
	return &Connector{
		api:             api,
		region:          region,
		instanceType:    instanceType,
		terminatePolicy: config.TerminatePolicy,
		log:             log,
	}
}

// WithTerminatePolicy overrides the termination polling policy.
// Tests use this to avoid multi-second sleeps.
func (c *Connector) WithTerminatePolicy(p poll.Policy) *Connector {
	c.terminatePolicy = p
	return c
}

func (c *Connector) Name() string { return "aws" }

// Describe returns a point-in-time snapshot of the instance.
func (c *Connector) Describe(ctx context.Context, id string) (*connector.Instance, error) {
	if err := validateInstanceID(id); err != nil {
		return nil, err
	}

	out, err := c.api.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{id},
	})
	if err != nil {
		return nil, &connector.TransportError{Provider: "aws", Op: "describe instance", Err: err}
	}
	if len(out.Reservations) == 0 || len(out.Reservations[0].Instances) == 0 {
		return nil, &connector.NotFoundError{Resource: "instance", Ref: id}
	}
	return newInstance(out.Reservations[0].Instances[0], c.region), nil
}

// Delete terminates the instance and waits for it to reach a terminal
// state. EC2 acknowledges termination long before the instance is
// gone, so success here means the describe poll observed stopped or
// terminated within the attempt budget.
func (c *Connector) Delete(ctx context.Context, id string) error {
	if err := validateInstanceID(id); err != nil {
		return err
	}

	c.log.Info("terminating instance", "instance_id", id)
	if _, err := c.api.TerminateInstances(ctx, &ec2.TerminateInstancesInput{
		InstanceIds: []string{id},
	}); err != nil {
		c.log.Error("failed to terminate instance", "instance_id", id, "error", err)
		return &connector.TransportError{Provider: "aws", Op: "terminate instance", Err: err}
	}

	c.log.Info("waiting for instance to reach a terminal state", "instance_id", id)
	inst, err := poll.Until(ctx, c.terminatePolicy,
		func(ctx context.Context) (*connector.Instance, error) {
			return c.Describe(ctx, id)
		},
		(*connector.Instance).Terminal,
	)
	if err != nil {
		return fmt.Errorf("wait for termination: %w", err)
	}

	c.log.Info("instance terminated", "instance_id", id, "state", inst.State)
	return nil
}

// validateInstanceID checks the string id form EC2 uses ("i-" plus a
// hex suffix).
func validateInstanceID(id string) error {
	if !strings.HasPrefix(id, "i-") || len(id) <= 2 {
		return &connector.ValidationError{Field: "id", Reason: `instance id must have the form "i-..."`}
	}
	return nil
}

var _ connector.Connector = (*Connector)(nil)
