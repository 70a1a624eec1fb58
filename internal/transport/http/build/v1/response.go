package http

import (
	"encoding/json"
	"errors"
	"net/http"

	buildv1 "github.com/you-humble/pc-builder/internal/api/build/v1"
	"github.com/you-humble/pc-builder/internal/model"
	"github.com/you-humble/pc-builder/platform/logger"
)

const maxBodyBytes = 1 << 16

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "encode response", logger.ErrorF(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := mapError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed",
			logger.String("path", r.URL.Path),
			logger.ErrorF(err),
		)
	}

	writeJSON(w, r, status, buildv1.Error{Code: status, Message: err.Error()})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeJSON(w, r, http.StatusBadRequest, buildv1.Error{ // 400
			Code:    http.StatusBadRequest,
			Message: "invalid request body: " + err.Error(),
		})
		return false
	}
	return true
}

func mapError(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidArgument),
		errors.Is(err, model.ErrUnknownCategory),
		errors.Is(err, model.ErrCategoryMismatch):
		return http.StatusBadRequest // 400
	case errors.Is(err, model.ErrPartNotFound),
		errors.Is(err, model.ErrBuildNotFound),
		errors.Is(err, model.ErrCartIndexOutOfRange):
		return http.StatusNotFound // 404
	case errors.Is(err, model.ErrIncompatible),
		errors.Is(err, model.ErrCartEmpty):
		return http.StatusConflict // 409
	case errors.Is(err, model.ErrPartOutOfStock):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, model.ErrEventNotPublished):
		return http.StatusBadGateway // 502
	case errors.Is(err, model.ErrCatalogNotLoaded):
		return http.StatusServiceUnavailable // 503
	default:
		return http.StatusInternalServerError // 500
	}
}
