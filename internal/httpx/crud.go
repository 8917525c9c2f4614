package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/copilot-skills-example/octocat-supply-api/internal/storage"
)

// MountCRUD wires the standard create/read/update/delete/list routes for one
// entity table under path. One generic mount replaces a hand-written handler
// set per entity.
func MountCRUD[T any](r chi.Router, path string, table *storage.Table[T], log *logrus.Entry) {
	r.Route(path, func(r chi.Router) {
		r.Post("/", func(w http.ResponseWriter, req *http.Request) {
			var e T
			if err := json.NewDecoder(req.Body).Decode(&e); err != nil {
				writeError(w, http.StatusBadRequest, codeValidation, "invalid json")
				return
			}
			if err := table.Insert(req.Context(), &e); err != nil {
				internalError(w, log, err)
				return
			}
			writeJSON(w, http.StatusCreated, e)
		})

		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			list, err := table.List(req.Context())
			if err != nil {
				internalError(w, log, err)
				return
			}
			if list == nil {
				list = []T{}
			}
			writeJSON(w, http.StatusOK, list)
		})

		r.Get("/{id}", func(w http.ResponseWriter, req *http.Request) {
			id, ok := pathID(w, req)
			if !ok {
				return
			}
			e, err := table.GetByID(req.Context(), id)
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, codeNotFound, "not found")
				return
			}
			if err != nil {
				internalError(w, log, err)
				return
			}
			writeJSON(w, http.StatusOK, e)
		})

		r.Put("/{id}", func(w http.ResponseWriter, req *http.Request) {
			id, ok := pathID(w, req)
			if !ok {
				return
			}
			var e T
			if err := json.NewDecoder(req.Body).Decode(&e); err != nil {
				writeError(w, http.StatusBadRequest, codeValidation, "invalid json")
				return
			}
			err := table.Update(req.Context(), id, &e)
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, codeNotFound, "not found")
				return
			}
			if err != nil {
				internalError(w, log, err)
				return
			}
			writeJSON(w, http.StatusOK, e)
		})

		r.Delete("/{id}", func(w http.ResponseWriter, req *http.Request) {
			id, ok := pathID(w, req)
			if !ok {
				return
			}
			err := table.Delete(req.Context(), id)
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, codeNotFound, "not found")
				return
			}
			if err != nil {
				internalError(w, log, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
	})
}

func pathID(w http.ResponseWriter, req *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "id must be an integer")
		return 0, false
	}
	return id, true
}

func internalError(w http.ResponseWriter, log *logrus.Entry, err error) {
	log.WithError(err).Error("request failed")
	writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
}
