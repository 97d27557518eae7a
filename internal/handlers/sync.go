package handlers

import (
	"net/http"
	"strconv"

	"github.com/deckhaus/storesync/internal/models"
	"github.com/deckhaus/storesync/internal/repository"
	"github.com/deckhaus/storesync/internal/syncer"
	"github.com/gorilla/mux"
)

// SyncHandler exposes the sync orchestrator and audit history over HTTP
type SyncHandler struct {
	orch *syncer.Orchestrator
	repo *repository.Repository
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(orch *syncer.Orchestrator, repo *repository.Repository) *SyncHandler {
	return &SyncHandler{orch: orch, repo: repo}
}

// RegisterRoutes registers sync routes on the given (already protected) router
func (sh *SyncHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/sync/{kind}", sh.SyncEntity).Methods("POST")
	r.HandleFunc("/sync/history", sh.SyncHistory).Methods("GET")

	r.HandleFunc("/cache/stats", sh.CacheStats).Methods("GET")
	r.HandleFunc("/cache/{kind}", sh.GetCached).Methods("GET")
	r.HandleFunc("/cache/{kind}", sh.InvalidateCache).Methods("DELETE")
}

// SyncEntity triggers one sync run for an entity kind.
// Query params: limit (max records), force (bypass the cache).
func (sh *SyncHandler) SyncEntity(w http.ResponseWriter, r *http.Request) {
	kind, err := models.ParseEntityKind(mux.Vars(r)["kind"])
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := syncer.Options{
		ForceRefresh: r.URL.Query().Get("force") == "true",
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		opts.Limit = limit
	}

	summary, err := sh.orch.SyncEntity(r.Context(), kind, opts)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// SyncHistory returns a page of sync-log rows, newest first.
func (sh *SyncHandler) SyncHistory(w http.ResponseWriter, r *http.Request) {
	filter := repository.HistoryFilter{
		Outcome: r.URL.Query().Get("outcome"),
	}
	if v := r.URL.Query().Get("kind"); v != "" {
		kind, err := models.ParseEntityKind(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		filter.Kind = string(kind)
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	entries, total, err := sh.repo.SyncHistory(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"total":   total,
		"entries": entries,
	})
}

// GetCached returns the cached raw payload for a kind without syncing.
func (sh *SyncHandler) GetCached(w http.ResponseWriter, r *http.Request) {
	kind, err := models.ParseEntityKind(mux.Vars(r)["kind"])
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	payload := sh.orch.GetCached(kind)
	if payload == nil {
		respondError(w, http.StatusNotFound, "no valid cache entry")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"kind":    kind,
		"count":   len(payload),
		"records": payload,
	})
}

// InvalidateCache drops the cache entry for a kind.
func (sh *SyncHandler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	kind, err := models.ParseEntityKind(mux.Vars(r)["kind"])
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sh.orch.InvalidateCache(kind)
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "invalidated",
		"kind":   string(kind),
	})
}

// CacheStats reports cache hit/miss counters.
func (sh *SyncHandler) CacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, sh.orch.CacheStats())
}
