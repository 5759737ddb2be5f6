package api

import (
	"net/http"

	"github.com/OpenByteDev/build-target/pkg/buildtarget"
	"github.com/OpenByteDev/build-target/pkg/errors"
	"github.com/OpenByteDev/build-target/pkg/serializer"
	"github.com/OpenByteDev/build-target/pkg/server"
	"github.com/OpenByteDev/build-target/pkg/snapshotter"
)

// TargetHandler serves the build target either live from a Source or from
// a previously recorded snapshot.
type TargetHandler struct {
	source   *buildtarget.Source
	recorded *snapshotter.Snapshot
}

// NewTargetHandler returns a handler reading src on every request.
func NewTargetHandler(src *buildtarget.Source) *TargetHandler {
	if src == nil {
		src = buildtarget.NewSource()
	}
	return &TargetHandler{source: src}
}

// NewRecordedHandler returns a handler serving snap unchanged.
func NewRecordedHandler(snap *snapshotter.Snapshot) *TargetHandler {
	return &TargetHandler{recorded: snap}
}

// Routes returns the API routes served by h.
func (h *TargetHandler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/target":   h.HandleTarget,
		"/v1/snapshot": h.HandleSnapshot,
	}
}

// HandleTarget handles GET /v1/target.
func (h *TargetHandler) HandleTarget(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, snap.Target)
}

// HandleSnapshot handles GET /v1/snapshot.
func (h *TargetHandler) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, snap)
}

func (h *TargetHandler) snapshot(w http.ResponseWriter, r *http.Request) (*snapshotter.Snapshot, bool) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"method not allowed", false, map[string]any{"method": r.Method})
		return nil, false
	}

	if h.recorded != nil {
		return h.recorded, true
	}

	snap, err := snapshotter.Capture(r.Context(), h.source)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "failed to read build target", nil)
		return nil, false
	}
	return snap, true
}
