package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type label string

func (l label) String() string { return "label:" + string(l) }

type platform struct {
	Name   string   `json:"name" yaml:"name"`
	Bits   int      `json:"bits" yaml:"bits"`
	Tags   []string `json:"tags" yaml:"tags"`
	Label  label    `json:"label" yaml:"label"`
	Extra  *string  `json:"extra,omitempty" yaml:"extra,omitempty"`
	hidden string
}

func samplePlatform() platform {
	return platform{Name: "x86_64", Bits: 64, Tags: []string{"unix"}, Label: "pc", hidden: "x"}
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatJSON, &buf).Serialize(context.Background(), samplePlatform()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var got platform
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got.Name != "x86_64" || got.Bits != 64 || len(got.Tags) != 1 {
		t.Errorf("unexpected data: %+v", got)
	}
	if !strings.Contains(buf.String(), "\n  \"name\"") {
		t.Errorf("expected indented JSON, got %s", buf.String())
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatYAML, &buf).Serialize(context.Background(), samplePlatform()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var got platform
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if got.Name != "x86_64" || got.Label != "pc" {
		t.Errorf("unexpected data: %+v", got)
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), samplePlatform()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"FIELD", "VALUE", "name", "x86_64", "tags[0]", "unix", "label:pc"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in table output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "extra") || strings.Contains(out, "hidden") {
		t.Errorf("nil pointers and unexported fields must be skipped:\n%s", out)
	}
}

func TestWriter_SerializeTable_EmbeddedAndEmpty(t *testing.T) {
	type Meta struct {
		Kind string `json:"kind"`
	}
	type doc struct {
		Meta  `json:",inline"`
		Items []string          `json:"items"`
		Attrs map[string]string `json:"attrs"`
		Plain string
	}

	var buf bytes.Buffer
	err := NewWriter(FormatTable, &buf).Serialize(context.Background(), doc{
		Meta:  Meta{Kind: "Target"},
		Plain: "p",
		Attrs: map[string]string{"b": "2", "a": "1"},
	})
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "Meta.") || !strings.Contains(out, "kind") {
		t.Errorf("embedded struct should be inlined:\n%s", out)
	}
	if !strings.Contains(out, "items") || !strings.Contains(out, emptyValue) {
		t.Errorf("expected empty marker for items:\n%s", out)
	}
	if strings.Index(out, "attrs.a") > strings.Index(out, "attrs.b") {
		t.Errorf("map keys should be sorted:\n%s", out)
	}
	if !strings.Contains(out, "Plain") {
		t.Errorf("untagged field should use its Go name:\n%s", out)
	}
}

func TestWriter_SerializeTable_EmptyData(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), []platform{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(buf.String(), emptyValue) {
		t.Errorf("expected %q for empty data, got %s", emptyValue, buf.String())
	}
}

func TestWriter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if err := NewWriter(FormatJSON, &buf).Serialize(ctx, samplePlatform()); err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestNewWriter_UnknownFormatFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(Format("xml"), &buf).Serialize(context.Background(), samplePlatform()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	var got platform
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("expected JSON fallback: %v", err)
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{Format("xml"), true},
		{Format(""), true},
	}

	for _, tt := range tests {
		if got := tt.format.IsUnknown(); got != tt.want {
			t.Errorf("Format(%q).IsUnknown() = %v, want %v", tt.format, got, tt.want)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"snap.yaml":   FormatYAML,
		"snap.YML":    FormatYAML,
		"snap.json":   FormatJSON,
		"snap":        FormatJSON,
		"dir/a.b.yml": FormatYAML,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestNewFileWriterOrStdout_Stdout(t *testing.T) {
	for _, path := range []string{"", "  ", "\t", StdoutURI} {
		w, err := NewFileWriterOrStdout(FormatJSON, path)
		if err != nil {
			t.Fatalf("path %q: unexpected error %v", path, err)
		}
		closer, ok := w.(Closer)
		if !ok {
			t.Fatalf("path %q: writer does not implement Closer", path)
		}
		if err := closer.Close(); err != nil {
			t.Errorf("path %q: Close failed: %v", path, err)
		}
	}
}

func TestNewFileWriterOrStdout_FileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "target.yaml")

	w, err := NewFileWriterOrStdout(FormatYAML, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Serialize(context.Background(), samplePlatform()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	closer := w.(Closer)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Errorf("second Close should be a no-op: %v", err)
	}

	r, err := NewFileReader(FormatFromPath(path), path)
	if err != nil {
		t.Fatalf("NewFileReader failed: %v", err)
	}
	defer r.Close()

	var got platform
	if err := r.Deserialize(&got); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if got.Name != "x86_64" || got.Bits != 64 {
		t.Errorf("unexpected data: %+v", got)
	}
}

func TestNewFileWriterOrStdout_InvalidPath(t *testing.T) {
	w, err := NewFileWriterOrStdout(FormatJSON, filepath.Join(t.TempDir(), "missing", "out.json"))
	if err == nil {
		t.Fatal("expected error for invalid path")
	}
	if w != nil {
		t.Error("expected nil writer on error")
	}
	if !strings.Contains(err.Error(), "failed to create output file") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestNewReader_RejectsTable(t *testing.T) {
	if _, err := NewReader(FormatTable, strings.NewReader("")); err == nil {
		t.Error("expected error for table input")
	}
	if _, err := NewFileReader(FormatTable, os.DevNull); err == nil {
		t.Error("expected error for table input file")
	}
}

func TestReader_DeserializeJSON(t *testing.T) {
	r, err := NewReader(FormatJSON, strings.NewReader(`{"name":"arm","bits":32}`))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	var got platform
	if err := r.Deserialize(&got); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if got.Name != "arm" || got.Bits != 32 {
		t.Errorf("unexpected data: %+v", got)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on non-file reader: %v", err)
	}
}
