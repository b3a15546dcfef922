package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jwebster45206/battle-engine/pkg/faction"
)

type FactionsResponse struct {
	Factions []faction.Spec `json:"factions"`
}

// FactionsHandler lists the registry, or searches it with ?q=.
type FactionsHandler struct {
	registry *faction.Registry
	logger   *slog.Logger
}

func NewFactionsHandler(registry *faction.Registry, logger *slog.Logger) *FactionsHandler {
	return &FactionsHandler{registry: registry, logger: logger}
}

func (h *FactionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: GET")
		return
	}

	var names []string
	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		names = h.registry.Search(q)
	} else {
		names = h.registry.Names()
	}

	resp := FactionsResponse{Factions: make([]faction.Spec, 0, len(names))}
	for _, n := range names {
		if f, ok := h.registry.Get(n); ok {
			resp.Factions = append(resp.Factions, faction.SpecFrom(f))
		}
	}
	writeJSON(w, h.logger, http.StatusOK, resp)
}
