package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/masmeert/wisho/pkg/dict"
	"github.com/masmeert/wisho/pkg/normalize"
	"github.com/masmeert/wisho/pkg/search"
	"github.com/rs/zerolog/log"
)

// errBadRequest marks a request-shape error (bad query params), mapped to
// HTTP 422. Every other error maps to HTTP 500 with a short, non-leaking
// diagnostic code.
var errBadRequest = errors.New("httpapi: bad request")

// Handler serves the dictionary search endpoint.
type Handler struct {
	Coordinator *search.Coordinator
}

// NewHandler builds a Handler over coordinator.
func NewHandler(coordinator *search.Coordinator) *Handler {
	return &Handler{Coordinator: coordinator}
}

type searchResponseRow struct {
	ID       int64    `json:"id"`
	Score    float64  `json:"score"`
	Kanji    []string `json:"kanji"`
	Readings []string `json:"readings"`
	Glosses  []string `json:"glosses"`
}

// Search handles GET /v1/search?q=...&limit=...&offset=....
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	params, err := parseSearchParams(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid_query_params")
		return
	}

	rows, err := h.Coordinator.Search(r.Context(), params.Query, params.Limit, params.Offset)
	if err != nil {
		if errors.Is(err, normalize.ErrEmptyQuery) || errors.Is(err, dict.ErrEmptyQuery) {
			writeError(w, http.StatusUnprocessableEntity, "empty_query")
			return
		}
		log.Error().Err(err).Str("query", params.Query).Msg("search request failed")
		writeError(w, http.StatusInternalServerError, "search_failed")
		return
	}

	resp := make([]searchResponseRow, len(rows))
	for i, row := range rows {
		resp[i] = searchResponseRow{
			ID:       row.ID,
			Score:    row.Score,
			Kanji:    row.Kanji,
			Readings: row.Readings,
			Glosses:  row.Glosses,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Warn().Err(err).Msg("error encoding search response")
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: code}); err != nil {
		log.Warn().Err(err).Msg("error encoding error response")
	}
}
