// Package httpadapter exposes the solver, generator and puzzle store as a
// JSON API.
package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"svw.info/klotski/internal/board"
	"svw.info/klotski/internal/domain"
	"svw.info/klotski/internal/geom"
	"svw.info/klotski/internal/infrastructure/storage"
	"svw.info/klotski/internal/search"
	"svw.info/klotski/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
	// SolveTimeout bounds a single solve request; zero means no limit.
	SolveTimeout time.Duration
}

func New(uc *usecase.Service) *Handler {
	return &Handler{UC: uc, SolveTimeout: 30 * time.Second}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/solve", h.handleSolve)
		r.Post("/generate", h.handleGenerate)
		r.Get("/puzzles", h.handleList)
		r.Post("/puzzles", h.handleSave)
		r.Get("/puzzles/{id}", h.handleLoad)
	})
}

func renderError(w http.ResponseWriter, r *http.Request, status int, err error) {
	render.Status(r, status)
	render.JSON(w, r, render.M{"error": err.Error()})
}

// ---- Solve ----

type solveRequest struct {
	Board     string `json:"board"`
	Algorithm string `json:"algorithm,omitempty"`
}

type solveResponse struct {
	Moves      []string `json:"moves"`
	DurationMs int64    `json:"durationMs"`
	Nodes      int      `json:"nodes"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}
	b, err := board.Parse(req.Board)
	if err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}
	if req.Algorithm == "" {
		req.Algorithm = "idastar"
	}

	ctx := r.Context()
	if h.SolveTimeout > 0 {
		var cancel func()
		ctx, cancel = context.WithTimeout(ctx, h.SolveTimeout)
		defer cancel()
	}
	moves, st, err := h.UC.Solve(ctx, req.Algorithm, b)
	switch {
	case errors.Is(err, usecase.ErrUnknownAlgorithm):
		renderError(w, r, http.StatusBadRequest, err)
		return
	case errors.Is(err, search.ErrNoSolution):
		renderError(w, r, http.StatusUnprocessableEntity, err)
		return
	case err != nil:
		renderError(w, r, http.StatusInternalServerError, err)
		return
	}

	out := solveResponse{
		Moves:      make([]string, 0, len(moves)),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	}
	for _, m := range moves {
		out.Moves = append(out.Moves, m.String())
	}
	render.JSON(w, r, out)
}

// ---- Generate ----

type generateRequest struct {
	Seed         int64 `json:"seed,omitempty"`
	Rows         int8  `json:"rows"`
	Cols         int8  `json:"cols"`
	BlockCount   int8  `json:"blockCount"`
	ShuffleRound int   `json:"shuffleRound,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}
	if req.Rows <= 0 || req.Cols <= 0 || req.BlockCount <= 0 {
		renderError(w, r, http.StatusBadRequest, errors.New("rows, cols and blockCount must be positive"))
		return
	}
	if req.Seed == 0 {
		req.Seed = time.Now().UnixNano()
	}
	if req.ShuffleRound == 0 {
		req.ShuffleRound = 8
	}
	p, st, err := h.UC.Generate(r.Context(), req.Seed, geom.V(req.Cols, req.Rows), req.BlockCount, req.ShuffleRound)
	if err != nil {
		renderError(w, r, http.StatusInternalServerError, err)
		return
	}
	render.JSON(w, r, render.M{
		"puzzle":     p,
		"durationMs": st.Duration.Milliseconds(),
	})
}

// ---- Puzzles ----

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var p domain.Puzzle
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		if errors.Is(err, board.ErrBadFormat) || errors.Is(err, board.ErrMalformedBlock) ||
			errors.Is(err, board.ErrMissingBlock) || errors.Is(err, board.ErrUnfittableLayout) {
			renderError(w, r, http.StatusBadRequest, err)
			return
		}
		renderError(w, r, http.StatusInternalServerError, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, render.M{"id": p.ID})
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.UC.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			renderError(w, r, http.StatusNotFound, err)
			return
		}
		renderError(w, r, http.StatusInternalServerError, err)
		return
	}
	render.JSON(w, r, p)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	metas, err := h.UC.List(r.Context())
	if err != nil {
		renderError(w, r, http.StatusInternalServerError, err)
		return
	}
	if metas == nil {
		metas = []domain.PuzzleMeta{}
	}
	render.JSON(w, r, render.M{"puzzles": metas})
}
