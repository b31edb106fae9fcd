package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"math"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/df07/go-stochastic-raytracer/pkg/canvas"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
	"github.com/df07/go-stochastic-raytracer/pkg/scene"
)

// Request limits, shared by /api/render, /api/inspect and /api/scenes
var (
	widthLimit   = paramLimit{Default: 400, Min: 1, Max: 2000}
	heightLimit  = paramLimit{Default: 250, Min: 1, Max: 2000}
	samplesLimit = paramLimit{Default: 16, Min: 1, Max: math.MaxUint8}
	objectsLimit = paramLimit{Default: scene.DefaultObjectCount, Min: 1, Max: 500}
	seedLimit    = paramLimit{Default: 42, Min: 0, Max: math.MaxInt32}
)

type paramLimit struct {
	Default int `json:"default"`
	Min     int `json:"min"`
	Max     int `json:"max"`
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string // Scene ID from the registry
	Width   int
	Height  int
	Samples int
	Sampler string // "jittered" or "random"
	Objects int    // Random scene sphere count
	Seed    int
}

// parseRenderRequest parses and validates query parameters
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "predefined"
	}
	if _, err := scene.Lookup(req.Scene); err != nil {
		return nil, err
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", widthLimit.Default, widthLimit.Min, widthLimit.Max); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", heightLimit.Default, heightLimit.Min, heightLimit.Max); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(query, "samples", samplesLimit.Default, samplesLimit.Min, samplesLimit.Max); err != nil {
		return nil, err
	}
	if req.Objects, err = parseIntParam(query, "objects", objectsLimit.Default, objectsLimit.Min, objectsLimit.Max); err != nil {
		return nil, err
	}
	if req.Seed, err = parseIntParam(query, "seed", seedLimit.Default, seedLimit.Min, seedLimit.Max); err != nil {
		return nil, err
	}
	if req.Sampler, err = parseChoiceParam(query, "sampler", "jittered", "jittered", "random"); err != nil {
		return nil, err
	}
	return req, nil
}

// canvasRequest converts the query into an image request
func (s *Server) canvasRequest(req *RenderRequest) canvas.Request {
	return canvas.Request{
		Width:           uint16(req.Width),
		Height:          uint16(req.Height),
		SamplesPerPixel: uint8(req.Samples),
		RandomScene:     req.Scene == "random",
		Jittered:        req.Sampler == "jittered",
		ObjectCount:     req.Objects,
		Seed:            int64(req.Seed),
		Workers:         s.workers,
	}
}

// handleRender renders one image and responds with it as a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request: %w", err))
		return
	}

	renderID := uuid.NewString()
	logger := s.logger.With("render_id", renderID, "scene", req.Scene,
		"width", req.Width, "height", req.Height, "samples", req.Samples)

	creq := s.canvasRequest(req)
	creq.Logger = renderer.NewSlogLogger(logger)
	pixels, stats, err := canvas.MakeImageWithStats(r.Context(), creq)
	if err != nil {
		switch {
		case errors.Is(err, canvas.ErrInvalidRequest), errors.Is(err, renderer.ErrInvalidConfig):
			s.writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, context.Canceled):
			logger.Info("render cancelled by client")
		default:
			logger.Error("render failed", "err", err)
			s.writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas.ToRGBA(pixels, req.Width, req.Height)); err != nil {
		logger.Error("encode failed", "err", err)
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-ID", renderID)
	w.Header().Set("X-Render-Duration-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.Header().Set("X-Render-Path-Evaluations", strconv.FormatInt(stats.PathEvaluations, 10))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// sceneListing is one entry of /api/scenes
type sceneListing struct {
	scene.SceneInfo
	Defaults map[string]any `json:"defaults"`
}

// handleScenes lists the available scenes together with parameter limits
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	var listings []sceneListing
	for _, info := range scene.List() {
		defaults := map[string]any{"sampler": "jittered"}
		if info.ID == "random" {
			defaults["objects"] = scene.DefaultObjectCount
		}
		listings = append(listings, sceneListing{SceneInfo: info, Defaults: defaults})
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"scenes": listings,
		"limits": map[string]paramLimit{
			"width":   widthLimit,
			"height":  heightLimit,
			"samples": samplesLimit,
			"objects": objectsLimit,
			"seed":    seedLimit,
		},
	})
}
