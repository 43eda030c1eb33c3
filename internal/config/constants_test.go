package config

import (
	"testing"
	"time"
)

func TestPollingPolicies(t *testing.T) {
	if CreatePolicy.MaxAttempts != 10 {
		t.Errorf("CreatePolicy.MaxAttempts = %d, want 10", CreatePolicy.MaxAttempts)
	}
	if CreatePolicy.Interval != 3*time.Second {
		t.Errorf("CreatePolicy.Interval = %v, want 3s", CreatePolicy.Interval)
	}
	if CreatePolicy.IntervalMax != 0 {
		t.Errorf("CreatePolicy.IntervalMax = %v, want fixed interval", CreatePolicy.IntervalMax)
	}

	if TerminatePolicy.MaxAttempts != 50 {
		t.Errorf("TerminatePolicy.MaxAttempts = %d, want 50", TerminatePolicy.MaxAttempts)
	}
	if TerminatePolicy.Interval != 1*time.Second || TerminatePolicy.IntervalMax != 3*time.Second {
		t.Errorf("TerminatePolicy interval = [%v, %v], want [1s, 3s]",
			TerminatePolicy.Interval, TerminatePolicy.IntervalMax)
	}
}

func TestDefaults(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"DefaultDropletSize", DefaultDropletSize, "s-1vcpu-1gb"},
		{"DefaultEC2InstanceType", DefaultEC2InstanceType, "t2.micro"},
		{"DefaultAWSRegion", DefaultAWSRegion, "us-east-1"},
		{"InstanceTag", InstanceTag, "spinup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}
}
