package provisioner

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/novakdc/spinup/internal/connector"
	"github.com/novakdc/spinup/internal/poll"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// mockConnector scripts connector behavior for workflow tests.
// Describe snapshots are consumed in order; the last one repeats.
type mockConnector struct {
	createCalls   int
	describeCalls int

	created     *connector.Instance
	createErr   error
	snapshots   []*connector.Instance
	describeErr error
}

func (m *mockConnector) Name() string { return "mock" }

func (m *mockConnector) Create(ctx context.Context, req connector.CreateRequest) (*connector.Instance, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	m.createCalls++
	return m.created, m.createErr
}

func (m *mockConnector) Describe(ctx context.Context, id string) (*connector.Instance, error) {
	m.describeCalls++
	if m.describeErr != nil {
		return nil, m.describeErr
	}
	idx := m.describeCalls - 1
	if idx >= len(m.snapshots) {
		idx = len(m.snapshots) - 1
	}
	return m.snapshots[idx], nil
}

func (m *mockConnector) Delete(ctx context.Context, id string) error { return nil }

var _ connector.Connector = (*mockConnector)(nil)

func validRequest() connector.CreateRequest {
	return connector.CreateRequest{
		Name:      "test-1",
		Region:    "nyc1",
		Image:     "ubuntu-19-10-x64",
		SSHKeyRef: "csc519",
	}
}

func snapshot(state connector.State, ip string) *connector.Instance {
	return &connector.Instance{ID: "555", Name: "test-1", State: state, PublicIPv4: ip}
}

func fastPolicy(attempts int) poll.Policy {
	return poll.Policy{MaxAttempts: attempts, Interval: time.Millisecond}
}

func TestProvision(t *testing.T) {
	t.Run("waits for public address", func(t *testing.T) {
		conn := &mockConnector{
			created: snapshot(connector.StatePending, ""),
			snapshots: []*connector.Instance{
				snapshot(connector.StatePending, ""),
				snapshot(connector.StatePending, ""),
				snapshot(connector.StateActive, "203.0.113.5"),
			},
		}

		inst, err := New(testLogger(), conn).WithPolicy(fastPolicy(10)).
			Provision(context.Background(), validRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if conn.createCalls != 1 {
			t.Errorf("expected exactly one create call, got %d", conn.createCalls)
		}
		if conn.describeCalls != 3 {
			t.Errorf("expected exactly 3 describe probes, got %d", conn.describeCalls)
		}
		if inst.PublicIPv4 != "203.0.113.5" {
			t.Errorf("expected address 203.0.113.5, got %q", inst.PublicIPv4)
		}
	})

	t.Run("exhausts attempt budget", func(t *testing.T) {
		conn := &mockConnector{
			created:   snapshot(connector.StatePending, ""),
			snapshots: []*connector.Instance{snapshot(connector.StatePending, "")},
		}

		_, err := New(testLogger(), conn).WithPolicy(fastPolicy(4)).
			Provision(context.Background(), validRequest())

		var exhausted *poll.ExhaustedError
		if !errors.As(err, &exhausted) {
			t.Fatalf("expected *poll.ExhaustedError, got %T: %v", err, err)
		}
		if conn.describeCalls != 4 {
			t.Errorf("expected exactly 4 describe probes, got %d", conn.describeCalls)
		}
	})

	t.Run("invalid request issues no remote calls", func(t *testing.T) {
		conn := &mockConnector{}

		req := validRequest()
		req.Name = ""

		_, err := New(testLogger(), conn).WithPolicy(fastPolicy(10)).
			Provision(context.Background(), req)

		var verr *connector.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError, got %T: %v", err, err)
		}
		if conn.createCalls != 0 || conn.describeCalls != 0 {
			t.Errorf("expected zero remote calls, got %d creates and %d describes",
				conn.createCalls, conn.describeCalls)
		}
	})

	t.Run("create failure aborts without polling", func(t *testing.T) {
		conn := &mockConnector{createErr: errors.New("quota exceeded")}

		_, err := New(testLogger(), conn).WithPolicy(fastPolicy(10)).
			Provision(context.Background(), validRequest())
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if conn.describeCalls != 0 {
			t.Errorf("expected no describe probes after failed create, got %d", conn.describeCalls)
		}
	})

	t.Run("transient describe errors count as attempts", func(t *testing.T) {
		conn := &mockConnector{
			created:     snapshot(connector.StatePending, ""),
			describeErr: errors.New("connection reset"),
		}

		_, err := New(testLogger(), conn).WithPolicy(fastPolicy(3)).
			Provision(context.Background(), validRequest())

		var exhausted *poll.ExhaustedError
		if !errors.As(err, &exhausted) {
			t.Fatalf("expected *poll.ExhaustedError, got %T: %v", err, err)
		}
		if conn.describeCalls != 3 {
			t.Errorf("expected exactly 3 describe probes, got %d", conn.describeCalls)
		}
	})
}
