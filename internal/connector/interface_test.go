package connector

import (
	"errors"
	"testing"
)

func TestCreateRequest_Validate(t *testing.T) {
	valid := CreateRequest{
		Name:      "test-1",
		Region:    "nyc1",
		Image:     "ubuntu-19-10-x64",
		SSHKeyRef: "csc519",
	}

	t.Run("all fields present", func(t *testing.T) {
		if err := valid.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	tests := []struct {
		name  string
		mut   func(*CreateRequest)
		field string
	}{
		{"empty name", func(r *CreateRequest) { r.Name = "" }, "name"},
		{"empty region", func(r *CreateRequest) { r.Region = "" }, "region"},
		{"empty image", func(r *CreateRequest) { r.Image = "" }, "image"},
		{"empty ssh key", func(r *CreateRequest) { r.SSHKeyRef = "" }, "ssh-key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mut(&req)

			err := req.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, verr.Field)
			}
		})
	}
}

func TestInstance_HasPublicIPv4(t *testing.T) {
	var nilInst *Instance
	if nilInst.HasPublicIPv4() {
		t.Error("nil instance should not report an address")
	}
	if (&Instance{}).HasPublicIPv4() {
		t.Error("instance without address should not report one")
	}
	if !(&Instance{PublicIPv4: "203.0.113.5"}).HasPublicIPv4() {
		t.Error("instance with address should report one")
	}
}

func TestInstance_Terminal(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{StatePending, false},
		{StateActive, false},
		{StateStopped, true},
		{StateTerminated, true},
		{StateUnknown, false},
	}
	for _, tt := range tests {
		if got := (&Instance{State: tt.state}).Terminal(); got != tt.want {
			t.Errorf("Terminal() for state %q = %v, want %v", tt.state, got, tt.want)
		}
	}

	var nilInst *Instance
	if nilInst.Terminal() {
		t.Error("nil instance should not be terminal")
	}
}

func TestInstance_String(t *testing.T) {
	inst := &Instance{ID: "555", Name: "test-1", PublicIPv4: "203.0.113.5"}
	if got := inst.String(); got != "test-1 [555 203.0.113.5]" {
		t.Errorf("unexpected String(): %q", got)
	}

	noIP := &Instance{ID: "555", Name: "test-1"}
	if got := noIP.String(); got != "test-1 [555]" {
		t.Errorf("unexpected String(): %q", got)
	}
}
