// Package respond writes JSON responses and the API's error envelope.
//
// Success bodies are written as-is (a list stays a list, an object stays an
// object). Failures are wrapped as {"error": {"code": ..., "message": ...}}
// with the HTTP status taken from the typed error.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/schoolhub/internal/app/system/apierr"
)

type errorEnvelope struct {
	Error *apierr.Error `json:"error"`
}

// JSON writes v as a JSON body with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// Error normalizes err through apierr.FromError and writes the envelope.
func Error(w http.ResponseWriter, err error) {
	e := apierr.FromError(err)
	if e == nil {
		e = apierr.ErrInternal
	}
	JSON(w, e.Status, errorEnvelope{Error: e})
}

// Message writes a single-field confirmation body, e.g. after a delete.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"message": msg})
}
