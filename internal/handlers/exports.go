package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jwebster45206/battle-engine/pkg/export"
	"github.com/jwebster45206/battle-engine/pkg/generator"
)

type ExportRequest struct {
	RunOptions
	Template   []string `json:"template"`
	Days       int      `json:"days"`
	Aspects    string   `json:"aspects,omitempty"`
	WindowHint string   `json:"window_hint,omitempty"`
}

// ExportHandler builds a schedule and returns it as a ZIP bundle. The
// override files the server loaded ride along under config/.
type ExportHandler struct {
	gen         *generator.Generator
	configFiles map[string][]byte
	defaultSeed int64
	logger      *slog.Logger
}

func NewExportHandler(gen *generator.Generator, configFiles map[string][]byte, defaultSeed int64, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{gen: gen, configFiles: configFiles, defaultSeed: defaultSeed, logger: logger}
}

func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST")
		return
	}

	var req ExportRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.logger.Warn("Invalid export request", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	records, err := h.gen.BuildSchedule(r.Context(), req.Template, req.Days, req.seed(h.defaultSeed), req.config(h.logger))
	if err != nil {
		if errors.Is(err, generator.ErrEmptyTemplate) || errors.Is(err, generator.ErrInvalidDays) {
			writeError(w, h.logger, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Failed to build schedule for export", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to build export")
		return
	}

	var buf bytes.Buffer
	opts := export.Options{Aspects: export.ParseAspects(req.Aspects), WindowHint: req.WindowHint, Config: h.configFiles}
	if err := export.Bundle(&buf, records, opts); err != nil {
		h.logger.Error("Failed to write bundle", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to build export")
		return
	}

	name := fmt.Sprintf("battles-%s.zip", uuid.New().String()[:8])
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("Failed to write export response", "error", err)
	}
}
