package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Reader decodes values previously written by a Writer.
type Reader struct {
	format Format
	in     io.Reader
	closer io.Closer
}

// NewReader returns a Reader decoding format from in. The table format
// cannot be read back.
func NewReader(format Format, in io.Reader) (*Reader, error) {
	switch format {
	case FormatJSON, FormatYAML:
		return &Reader{format: format, in: in}, nil
	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}
}

// NewFileReader opens path for decoding in format.
func NewFileReader(format Format, path string) (*Reader, error) {
	if format != FormatJSON && format != FormatYAML {
		return nil, fmt.Errorf("unsupported input format %q", format)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %q: %w", path, err)
	}
	return &Reader{format: format, in: f, closer: f}, nil
}

// Deserialize decodes the next document into v.
func (r *Reader) Deserialize(v any) error {
	var err error
	if r.format == FormatYAML {
		err = yaml.NewDecoder(r.in).Decode(v)
	} else {
		err = json.NewDecoder(r.in).Decode(v)
	}
	if err != nil {
		return fmt.Errorf("failed to deserialize %s: %w", r.format, err)
	}
	return nil
}

// Close closes the underlying file, if any.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}
