package config

import (
	"time"

	"github.com/novakdc/spinup/internal/poll"
)

// Polling policies. Creation waits for a public IPv4 address; AWS
// termination waits for the instance to reach a terminal state, which
// takes longer and is probed more often.
var (
	CreatePolicy = poll.Policy{
		MaxAttempts: 10,
		Interval:    3 * time.Second,
	}

	TerminatePolicy = poll.Policy{
		MaxAttempts: 50,
		Interval:    1 * time.Second,
		IntervalMax: 3 * time.Second,
	}
)

// Provider defaults, overridable via environment.
const (
	DefaultDropletSize        = "s-1vcpu-1gb"
	DefaultEC2InstanceType    = "t2.micro"
	DefaultAWSRegion          = "us-east-1"
	DefaultHetznerServerType  = "cx22"
	DefaultScalewayCommercial = "DEV1-S"
)

// Environment variable names for provider settings. Credentials are
// read by each connector's constructor, never cached globally.
const (
	DropletSizeEnvVar        = "DIGITALOCEAN_SIZE"
	EC2InstanceTypeEnvVar    = "AWS_INSTANCE_TYPE"
	HetznerServerTypeEnvVar  = "HCLOUD_SERVER_TYPE"
	ScalewayCommercialEnvVar = "SCW_COMMERCIAL_TYPE"
	DigitalOceanTokenEnvVar  = "DIGITALOCEAN_TOKEN"
	HetznerTokenEnvVar       = "HCLOUD_TOKEN"
)

// InstanceTag marks instances created by this tool so they can be
// identified in the provider console later.
const InstanceTag = "spinup"
