package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jwebster45206/battle-engine/pkg/battle"
	"github.com/jwebster45206/battle-engine/pkg/generator"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, logger *slog.Logger, status int, msg string) {
	writeJSON(w, logger, status, ErrorResponse{Error: msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// RunOptions are the generation settings shared by every request body.
// Config wins over Preset; with neither, the Balanced preset is used.
type RunOptions struct {
	Seed   *int64            `json:"seed,omitempty"`
	Preset string            `json:"preset,omitempty"`
	Config *generator.Config `json:"config,omitempty"`
	// Weights overrides the weight mode of the preset or config.
	Weights battle.WeightMode `json:"weights,omitempty"`
}

func (o RunOptions) config(logger *slog.Logger) generator.Config {
	cfg := o.baseConfig(logger)
	if o.Weights != "" {
		cfg.WeightMode = o.Weights
	}
	return cfg
}

func (o RunOptions) baseConfig(logger *slog.Logger) generator.Config {
	if o.Config != nil {
		return *o.Config
	}
	if o.Preset == "" {
		return generator.DefaultConfig()
	}
	cfg, ok := generator.Preset(o.Preset)
	if !ok {
		logger.Warn("Unknown preset, using default", "preset", o.Preset, "default", generator.PresetBalanced)
	}
	return cfg
}

func (o RunOptions) seed(fallback int64) int64 {
	if o.Seed != nil {
		return *o.Seed
	}
	return fallback
}
