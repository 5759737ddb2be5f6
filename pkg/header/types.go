package header

import (
	"fmt"
	"strings"
	"time"
)

const (
	// APIVersionDomain is the domain part of every APIVersion.
	APIVersionDomain = "buildtarget.openbytedev.github.io"
	// APIVersionV1 is the current schema version.
	APIVersionV1 = "v1"

	// MetadataTimestamp is the metadata key Set stamps with the creation time.
	MetadataTimestamp = "timestamp"
)

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata returns an Option that adds a metadata key-value pair.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind returns an Option that sets the Kind field of the Header.
func WithKind(kind string) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion returns an Option that sets the APIVersion field of the Header.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

// New creates a Header with the provided options applied. Metadata is
// never nil.
func New(opts ...Option) *Header {
	h := &Header{
		Metadata: make(map[string]string),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Header carries kind, schema version and free-form metadata for the
// documents this module writes, in the style of Kubernetes resources.
type Header struct {
	// Kind is the type of the document.
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs describing the document.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Set resets h for kind: APIVersion becomes "<kind>.<domain>/v1" and
// Metadata is replaced by a fresh map holding only the timestamp.
func (h *Header) Set(kind string) {
	h.Kind = kind
	h.APIVersion = APIVersion(kind)
	h.Metadata = map[string]string{
		MetadataTimestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// APIVersion returns the APIVersion string for kind.
func APIVersion(kind string) string {
	return fmt.Sprintf("%s.%s/%s", strings.ToLower(kind), APIVersionDomain, APIVersionV1)
}
