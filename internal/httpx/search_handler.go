package httpx

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/copilot-skills-example/octocat-supply-api/internal/search"
	"github.com/copilot-skills-example/octocat-supply-api/internal/validate"
)

type SearchHandler struct {
	Service *search.Service
	Log     *logrus.Entry
}

func (h *SearchHandler) Register(r chi.Router) {
	r.Get("/api/search/suggestions", h.suggestions)
}

type suggestionsResponse struct {
	Query       string              `json:"query"`
	Suggestions []search.Suggestion `json:"suggestions"`
}

func (h *SearchHandler) suggestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if err := validate.MinLength("query", q, 3); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, err.Error())
		return
	}

	entity := r.URL.Query().Get("entity")
	if entity != "" {
		err := validate.OneOf("entity", entity,
			search.EntityProducts, search.EntitySuppliers, search.EntityOrders)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeValidation, err.Error())
			return
		}
	}

	limit := search.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			n = -1 // non-numeric fails the range check below
		}
		if err := validate.IntRange("limit", n, 1, search.MaxLimit); err != nil {
			writeError(w, http.StatusBadRequest, codeValidation, err.Error())
			return
		}
		limit = n
	}

	suggestions, err := h.Service.Suggest(r.Context(), q, entity, limit)
	if err != nil {
		internalError(w, h.Log, err)
		return
	}
	if suggestions == nil {
		suggestions = []search.Suggestion{}
	}
	writeJSON(w, http.StatusOK, suggestionsResponse{Query: q, Suggestions: suggestions})
}
