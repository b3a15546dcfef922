package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jwebster45206/battle-engine/internal/storage"
	"github.com/jwebster45206/battle-engine/pkg/faction"
	"github.com/jwebster45206/battle-engine/pkg/generator"
	"github.com/jwebster45206/battle-engine/pkg/tournament"
)

// TournamentArchive stores finished round robins and serves them back by id.
type TournamentArchive interface {
	SaveTournament(ctx context.Context, id string, seed int64, result tournament.Result) error
	LoadTournament(ctx context.Context, id string) (*storage.TournamentRun, error)
}

type TournamentRequest struct {
	RunOptions
	Factions []string `json:"factions"`
}

type TournamentResponse struct {
	ID string `json:"id"`
	tournament.Result
}

// TournamentHandler serves:
// POST /v1/tournaments      - play a round robin
// GET  /v1/tournaments/{id} - an archived round robin
type TournamentHandler struct {
	gen         *generator.Generator
	archive     TournamentArchive
	defaultSeed int64
	logger      *slog.Logger
}

// NewTournamentHandler creates a handler; archive may be nil.
func NewTournamentHandler(gen *generator.Generator, archive TournamentArchive, defaultSeed int64, logger *slog.Logger) *TournamentHandler {
	return &TournamentHandler{gen: gen, archive: archive, defaultSeed: defaultSeed, logger: logger}
}

func (h *TournamentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/tournaments"), "/")

	switch {
	case r.Method == http.MethodPost && id == "":
		h.handleCreate(w, r)
	case r.Method == http.MethodGet && id != "":
		h.handleGet(w, r, id)
	default:
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported: POST /v1/tournaments, GET /v1/tournaments/{id}")
	}
}

func (h *TournamentHandler) handleGet(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid tournament ID format")
		return
	}
	if h.archive == nil {
		writeError(w, h.logger, http.StatusNotFound, "Tournament not found")
		return
	}
	run, err := h.archive.LoadTournament(r.Context(), id.String())
	if err != nil {
		if errors.Is(err, storage.ErrRunNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "Tournament not found")
			return
		}
		h.logger.Error("Failed to load tournament", "error", err, "tournament_id", idStr)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load tournament")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, TournamentResponse{ID: run.ID, Result: run.Result})
}

func (h *TournamentHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req TournamentRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.logger.Warn("Invalid tournament request", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Factions) < 2 {
		writeError(w, h.logger, http.StatusBadRequest, "at least two factions are required")
		return
	}

	seed := req.seed(h.defaultSeed)
	result, err := h.gen.RoundRobin(req.Factions, seed, req.config(h.logger))
	if err != nil {
		if errors.Is(err, faction.ErrUnknownFaction) {
			writeError(w, h.logger, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Round robin failed", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to run tournament")
		return
	}

	id := uuid.New().String()
	if h.archive != nil {
		if err := h.archive.SaveTournament(r.Context(), id, seed, result); err != nil {
			h.logger.Warn("Failed to archive tournament", "id", id, "error", err)
		}
	}
	writeJSON(w, h.logger, http.StatusOK, TournamentResponse{ID: id, Result: result})
}
