package header

import (
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	h := New(
		WithKind("Target"),
		WithAPIVersion("custom/v2"),
		WithMetadata("source", "test"),
	)

	if h.Kind != "Target" {
		t.Errorf("Kind = %q, want Target", h.Kind)
	}
	if h.APIVersion != "custom/v2" {
		t.Errorf("APIVersion = %q, want custom/v2", h.APIVersion)
	}
	if h.Metadata["source"] != "test" {
		t.Errorf("Metadata[source] = %q, want test", h.Metadata["source"])
	}
}

func TestNew_MetadataNeverNil(t *testing.T) {
	if New().Metadata == nil {
		t.Fatal("expected initialized metadata")
	}

	var h Header
	WithMetadata("k", "v")(&h)
	if h.Metadata["k"] != "v" {
		t.Errorf("WithMetadata on zero Header: got %v", h.Metadata)
	}
}

func TestHeader_Set(t *testing.T) {
	h := New(WithMetadata("stale", "yes"))
	h.Set("Snapshot")

	if h.Kind != "Snapshot" {
		t.Errorf("Kind = %q", h.Kind)
	}
	if want := "snapshot." + APIVersionDomain + "/v1"; h.APIVersion != want {
		t.Errorf("APIVersion = %q, want %q", h.APIVersion, want)
	}
	if _, ok := h.Metadata["stale"]; ok {
		t.Error("Set should replace metadata")
	}
	if _, err := time.Parse(time.RFC3339, h.Metadata[MetadataTimestamp]); err != nil {
		t.Errorf("timestamp is not RFC3339: %v", err)
	}
}
