package snapshotter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/OpenByteDev/build-target/pkg/buildtarget"
	"github.com/OpenByteDev/build-target/pkg/serializer"
)

// TargetSnapshotter captures the build target reported by the orchestrator
// and serializes it.
type TargetSnapshotter struct {
	// Version is the snapshotter version.
	Version string

	// Source is where target variables are read from. If nil, the process
	// environment with the default prefix is used.
	Source *buildtarget.Source

	// Serializer is the serializer to use for output. If nil, a default stdout JSON serializer is used.
	Serializer serializer.Serializer
}

// Measure captures a snapshot of the build target and serializes it using
// the configured Serializer.
func (t *TargetSnapshotter) Measure(ctx context.Context) error {
	if t.Source == nil {
		t.Source = buildtarget.NewSource()
	}

	slog.Debug("starting build target snapshot")

	snap, err := Capture(ctx, t.Source)
	if err != nil {
		slog.Error("failed to capture build target", slog.String("error", err.Error()))
		return fmt.Errorf("failed to capture build target: %w", err)
	}
	snap.Metadata[MetadataVersion] = t.Version

	if t.Serializer == nil {
		t.Serializer = serializer.NewStdoutWriter(serializer.FormatJSON)
	}

	if err := t.Serializer.Serialize(ctx, snap); err != nil {
		slog.Error("failed to serialize", slog.String("error", err.Error()))
		return fmt.Errorf("failed to serialize: %w", err)
	}

	return nil
}

// Capture reads the build target and profile from src and returns them as a
// Snapshot without serializing. A missing PROFILE leaves Profile nil.
func Capture(ctx context.Context, src *buildtarget.Source) (*Snapshot, error) {
	start := time.Now()
	defer func() {
		snapshotDuration.Observe(time.Since(start).Seconds())
	}()

	snap, err := capture(ctx, src)
	if err != nil {
		snapshotTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	snapshotTotal.WithLabelValues("success").Inc()

	slog.Debug("snapshot capture complete",
		slog.String("triple", snap.Target.Triple),
		slog.Int("hints", len(snap.Hints)),
	)
	return snap, nil
}

func capture(ctx context.Context, src *buildtarget.Source) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled before capture: %w", err)
	}

	target, err := src.Target()
	if err != nil {
		return nil, err
	}

	snap := NewSnapshot()
	snap.Metadata[MetadataID] = uuid.New().String()
	snap.Target = target

	profile, err := src.Profile()
	switch {
	case err == nil:
		snap.Profile = &profile
	case buildtarget.IsNotSet(err):
		slog.Debug("profile not set")
	default:
		return nil, err
	}

	snap.Hints = hints(target, snap.Profile)
	for _, h := range snap.Hints {
		snapshotUnrecognizedTotal.WithLabelValues(h.Field).Inc()
		slog.Warn("unrecognized build target value",
			slog.String("field", h.Field),
			slog.String("value", h.Value),
			slog.String("suggestion", h.Suggestion),
		)
	}

	return snap, nil
}

type classifier[T any] interface {
	~string
	IsKnown() bool
	Suggest() (T, bool)
}

func hintFor[T classifier[T]](field string, v T) (Hint, bool) {
	if v.IsKnown() {
		return Hint{}, false
	}
	h := Hint{Field: field, Value: string(v)}
	if s, ok := v.Suggest(); ok {
		h.Suggestion = string(s)
	}
	return h, true
}

func hints(t buildtarget.Target, profile *buildtarget.Profile) []Hint {
	var out []Hint
	add := func(h Hint, ok bool) {
		if ok {
			out = append(out, h)
		}
	}

	add(hintFor("arch", t.Arch))
	add(hintFor("endian", t.Endian))
	if t.Env != nil {
		add(hintFor("env", *t.Env))
	}
	add(hintFor("os", t.OS))
	add(hintFor("pointerWidth", t.PointerWidth))
	for _, f := range t.Family {
		add(hintFor("family", f))
	}
	add(hintFor("vendor", t.Vendor))
	if profile != nil {
		add(hintFor("profile", *profile))
	}
	return out
}

// SnapshotFromFile loads a Snapshot from the specified file path.
func SnapshotFromFile(path string) (*Snapshot, error) {
	fileFormat := serializer.FormatFromPath(path)
	slog.Debug("determined snapshot file format",
		slog.String("path", path),
		slog.String("format", string(fileFormat)),
	)

	ser, err := serializer.NewFileReader(fileFormat, path)
	if err != nil {
		slog.Error("failed to create file reader", "error", err, "path", path, "format", fileFormat)
		return nil, fmt.Errorf("failed to create serializer for %q: %w", path, err)
	}

	defer func() {
		if closeErr := ser.Close(); closeErr != nil {
			slog.Warn("failed to close serializer", "error", closeErr)
		}
	}()

	var snap Snapshot
	if err := ser.Deserialize(&snap); err != nil {
		return nil, fmt.Errorf("failed to deserialize snapshot from %q: %w", path, err)
	}

	slog.Debug("successfully loaded snapshot from file",
		slog.String("path", path),
		slog.String("kind", snap.Kind),
		slog.String("apiVersion", snap.APIVersion),
		slog.Int("hints", len(snap.Hints)),
	)

	return &snap, nil
}
