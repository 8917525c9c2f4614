package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/copilot-skills-example/octocat-supply-api/internal/orders"
	"github.com/copilot-skills-example/octocat-supply-api/internal/storage"
	"github.com/copilot-skills-example/octocat-supply-api/internal/validate"
)

type OrdersHandler struct {
	Service *orders.Service
	Log     *logrus.Entry
}

func (h *OrdersHandler) Register(r chi.Router) {
	r.Post("/api/orders", h.create)
	r.Get("/api/orders", h.list)
	r.Get("/api/orders/{id}", h.get)
	r.Patch("/api/orders/{id}/status", h.updateStatus)
}

func (h *OrdersHandler) create(w http.ResponseWriter, r *http.Request) {
	var req orders.CartOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	resp, err := h.Service.CreateFromCart(r.Context(), req)
	if err != nil {
		var ve *validate.Error
		var pnf *orders.ProductNotFoundError
		switch {
		case errors.As(err, &ve):
			// inline shape, not the generic envelope
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": ve.Message})
		case errors.As(err, &pnf):
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":     "Product not found",
				"productId": pnf.ProductID,
			})
		default:
			internalError(w, h.Log, err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *OrdersHandler) list(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context())
	if err != nil {
		internalError(w, h.Log, err)
		return
	}
	if list == nil {
		list = []orders.Order{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *OrdersHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	resp, err := h.Service.GetCart(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, "order not found")
		return
	}
	if err != nil {
		internalError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type updateStatusReq struct {
	Status string `json:"status"`
}

func (h *OrdersHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateStatusReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid json")
		return
	}

	o, err := h.Service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		var ve *validate.Error
		switch {
		case errors.As(err, &ve):
			writeError(w, http.StatusBadRequest, codeValidation, ve.Message)
		case errors.Is(err, storage.ErrNotFound):
			writeError(w, http.StatusNotFound, codeNotFound, "order not found")
		case errors.Is(err, orders.ErrInvalidTransition):
			writeError(w, http.StatusConflict, codeConflict, err.Error())
		default:
			internalError(w, h.Log, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, o)
}
