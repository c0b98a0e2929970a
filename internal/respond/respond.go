// Package respond writes the JSON envelopes shared by every HTTP handler.
package respond

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/backoffice/internal/apperr"
	"github.com/tair/backoffice/pkg/logger"
)

// JSON writes v with status
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}

// Error maps err to its status and writes {"error": message}. Internal details are never exposed.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal {
		logger.Error(r.Context()).Err(err).Str("path", r.URL.Path).Msg("Request failed")
	}
	JSON(w, apperr.HTTPStatus(kind), map[string]string{"error": apperr.PublicMessage(err)})
}

// Decode reads a JSON body into dst
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.InvalidInput("Request body is required")
		}
		return apperr.InvalidInput("Invalid request body")
	}
	return nil
}

// PathID parses a numeric path variable
func PathID(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	if err != nil || id == 0 {
		return 0, apperr.InvalidInputf("Invalid %s", name)
	}
	return uint(id), nil
}

// Page reads limit/offset query parameters, clamping limit to [1,100] with a default of 50
func Page(r *http.Request) (limit, offset int) {
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
