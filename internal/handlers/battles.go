package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jwebster45206/battle-engine/internal/storage"
	"github.com/jwebster45206/battle-engine/pkg/faction"
	"github.com/jwebster45206/battle-engine/pkg/generator"
)

type BattleRequest struct {
	RunOptions
	A     string `json:"a"`
	B     string `json:"b"`
	Index int    `json:"index"`
}

// BattleHandler builds a single record. Records are served from the cache
// when one is configured.
type BattleHandler struct {
	gen         *generator.Generator
	cache       storage.RecordCache
	defaultSeed int64
	logger      *slog.Logger
}

// NewBattleHandler creates a handler; cache may be nil.
func NewBattleHandler(gen *generator.Generator, cache storage.RecordCache, defaultSeed int64, logger *slog.Logger) *BattleHandler {
	return &BattleHandler{gen: gen, cache: cache, defaultSeed: defaultSeed, logger: logger}
}

func (h *BattleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST")
		return
	}

	var req BattleRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.logger.Warn("Invalid battle request", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Index < 0 {
		writeError(w, h.logger, http.StatusBadRequest, "index must not be negative")
		return
	}

	a, b, err := lookupPair(h.gen.Registry(), req.A, req.B)
	if err != nil {
		if errors.Is(err, faction.ErrUnknownFaction) {
			writeError(w, h.logger, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Faction lookup failed", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to build battle")
		return
	}

	cfg := h.gen.Normalize(req.config(h.logger))
	seed := req.seed(h.defaultSeed)
	key := storage.RecordKey{A: a, B: b, Seed: seed, Index: req.Index, Config: cfg}

	ctx := r.Context()
	if h.cache != nil {
		cached, err := h.cache.GetRecord(ctx, key)
		if err != nil {
			h.logger.Warn("Record cache read failed", "error", err)
		} else if cached != nil {
			writeJSON(w, h.logger, http.StatusOK, cached)
			return
		}
	}

	rec, err := h.gen.BuildBattleRecord(a, b, seed, req.Index, cfg)
	if err != nil {
		h.logger.Error("Failed to build battle", "error", err, "matchup", a.Name+" vs "+b.Name)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to build battle")
		return
	}
	if h.cache != nil {
		if err := h.cache.PutRecord(ctx, key, rec); err != nil {
			h.logger.Warn("Record cache write failed", "error", err)
		}
	}
	writeJSON(w, h.logger, http.StatusOK, rec)
}

func lookupPair(reg *faction.Registry, aName, bName string) (faction.Faction, faction.Faction, error) {
	a, err := reg.Lookup(aName)
	if err != nil {
		return faction.Faction{}, faction.Faction{}, err
	}
	b, err := reg.Lookup(bName)
	if err != nil {
		return faction.Faction{}, faction.Faction{}, err
	}
	return a, b, nil
}
