package api

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rickerduniya/Sayanho-sub002/pkg/cache"
	"github.com/rickerduniya/Sayanho-sub002/pkg/errors"
	"github.com/rickerduniya/Sayanho-sub002/pkg/floorplan"
	"github.com/rickerduniya/Sayanho-sub002/pkg/pipeline"
	"github.com/rickerduniya/Sayanho-sub002/pkg/render"
	"github.com/rickerduniya/Sayanho-sub002/pkg/schematic"
	"github.com/rickerduniya/Sayanho-sub002/pkg/store"
)

// ---- geometry endpoints ----

type arrangeRequest struct {
	Snapshot schematic.Snapshot `json:"snapshot"`
	Options  pipeline.Options   `json:"options"`
}

type arrangeResponse struct {
	Snapshot schematic.Snapshot `json:"snapshot"`
	Cached   bool               `json:"cached"`
}

func (s *Server) handleArrange(w http.ResponseWriter, r *http.Request) {
	var req arrangeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	snap, hit, err := s.runner.ArrangeWithCacheInfo(r.Context(), req.Snapshot, req.Options)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, arrangeResponse{Snapshot: snap, Cached: hit})
}

type stitchRequest struct {
	Plan    floorplan.Plan   `json:"plan"`
	Options pipeline.Options `json:"options"`
}

type stitchResponse struct {
	Plan   floorplan.Plan `json:"plan"`
	Cached bool           `json:"cached"`
}

func (s *Server) handleStitch(w http.ResponseWriter, r *http.Request) {
	var req stitchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	plan, hit, err := s.runner.StitchWithCacheInfo(r.Context(), req.Plan, req.Options)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stitchResponse{Plan: plan, Cached: hit})
}

type roomsResponse struct {
	Rooms  []floorplan.Room `json:"rooms"`
	Cached bool             `json:"cached"`
}

func (s *Server) handleRooms(w http.ResponseWriter, r *http.Request) {
	var req stitchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	rooms, hit, err := s.runner.DetectRoomsWithCacheInfo(r.Context(), req.Plan, req.Options)
	if err != nil {
		writeError(w, err)
		return
	}
	if rooms == nil {
		rooms = []floorplan.Room{}
	}
	writeJSON(w, http.StatusOK, roomsResponse{Rooms: rooms, Cached: hit})
}

// ---- design CRUD ----

type designRequest struct {
	Name      string             `json:"name"`
	Schematic schematic.Snapshot `json:"schematic"`
	Plan      floorplan.Plan     `json:"plan"`
}

func (s *Server) handleCreateDesign(w http.ResponseWriter, r *http.Request) {
	var req designRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Name == "" {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "name is required"))
		return
	}

	d := &store.Design{Name: req.Name, Schematic: req.Schematic, Plan: req.Plan}
	if err := s.store.Create(r.Context(), d); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (s *Server) handleListDesigns(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if summaries == nil {
		summaries = []store.Summary{}
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetDesign(w http.ResponseWriter, r *http.Request) {
	d, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleUpdateDesign(w http.ResponseWriter, r *http.Request) {
	var req designRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	d := &store.Design{
		ID:        chi.URLParam(r, "id"),
		Name:      req.Name,
		Schematic: req.Schematic,
		Plan:      req.Plan,
	}
	if err := s.store.Update(r.Context(), d); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleDeleteDesign(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- pipeline over a stored design ----

type designPipelineRequest struct {
	Options pipeline.Options `json:"options"`
}

type designPipelineResponse struct {
	Design *store.Design      `json:"design"`
	Stats  pipeline.Stats     `json:"stats"`
	Cache  pipeline.CacheInfo `json:"cache"`
}

// handleDesignPipeline runs the geometry pipeline over a stored design and
// persists the result.
func (s *Server) handleDesignPipeline(w http.ResponseWriter, r *http.Request) {
	d, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	// An empty body means "run with defaults".
	var req designPipelineRequest
	if err := decodeJSON(r, &req); err != nil && !stderrors.Is(err, io.EOF) {
		writeError(w, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), d.Schematic, d.Plan, req.Options)
	if err != nil {
		writeError(w, err)
		return
	}

	d.Schematic = result.Schematic
	d.Plan = result.Plan
	if err := s.store.Update(r.Context(), d); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, designPipelineResponse{
		Design: d,
		Stats:  result.Stats,
		Cache:  result.CacheInfo,
	})
}

// ---- rendering ----

// handleRenderDesign renders a stored design. Query parameters:
//
//	format: png (plan raster), svg or dot (connectivity); default png
//	target: plan or schematic, for png; default plan
func (s *Server) handleRenderDesign(w http.ResponseWriter, r *http.Request) {
	d, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = render.FormatPNG
	}
	if !render.ValidFormats[format] {
		writeError(w, errors.New(errors.ErrCodeInvalidFormat, "invalid format %q", format))
		return
	}
	target := r.URL.Query().Get("target")
	if target == "" {
		target = "plan"
	}
	if target != "plan" && target != "schematic" {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid target %q", target))
		return
	}

	// Artifacts are cached by design content, not looked up by ID, so a
	// design edit naturally invalidates its renders.
	hash, err := cache.HashJSON(d)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "hash design"))
		return
	}
	keyOpts := struct{ Format, Target string }{format, target}
	key := s.runner.Keyer.ArtifactKey(hash, keyOpts)

	if data, hit, err := s.runner.Cache.Get(r.Context(), key); err == nil && hit {
		writeArtifact(w, format, data)
		return
	}

	var data []byte
	switch format {
	case render.FormatPNG:
		data, err = s.renderPNG(d, target)
	case render.FormatSVG:
		data, err = render.SVG(r.Context(), render.ToDOT(d.Schematic, render.DOTOptions{}))
	case render.FormatDOT:
		data = []byte(render.ToDOT(d.Schematic, render.DOTOptions{}))
	}
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format))
		return
	}

	_ = s.runner.Cache.Set(r.Context(), key, data, cache.TTLArtifact)
	writeArtifact(w, format, data)
}

func (s *Server) renderPNG(d *store.Design, target string) ([]byte, error) {
	switch target {
	case "schematic":
		return render.SchematicPNG(d.Schematic, render.Options{Labels: true})
	case "plan":
		return render.PlanPNG(d.Plan, int(pipeline.DefaultCanvasWidth), int(pipeline.DefaultCanvasHeight), render.Options{Labels: true})
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid target %q", target)
	}
}

func writeArtifact(w http.ResponseWriter, format string, data []byte) {
	switch format {
	case render.FormatPNG:
		w.Header().Set("Content-Type", "image/png")
	case render.FormatSVG:
		w.Header().Set("Content-Type", "image/svg+xml")
	default:
		w.Header().Set("Content-Type", "text/vnd.graphviz")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
