package httpadapter

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"cfomatch/internal/api"
	"cfomatch/internal/domain"
)

var statusByKind = map[domain.Kind]int{
	domain.KindValidation:      http.StatusBadRequest,
	domain.KindUnauthenticated: http.StatusUnauthorized,
	domain.KindForbidden:       http.StatusForbidden,
	domain.KindNotFound:        http.StatusNotFound,
	domain.KindConflict:        http.StatusConflict,
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a domain error kind to a status code. Anything without a
// client-facing kind is logged and reported as an opaque 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	body := api.Error{Kind: domain.KindInternal, Message: "internal error"}
	var de *domain.Error
	status, ok := http.StatusInternalServerError, false
	if errors.As(err, &de) {
		status, ok = statusByKind[de.Kind]
		if ok {
			body = api.Error{Kind: de.Kind, Message: de.Message, Fields: de.Fields}
		}
	}
	if !ok {
		status = http.StatusInternalServerError
		log.Printf("http: %s %s: %v", r.Method, r.URL.Path, err)
	}
	writeJSON(w, status, api.ErrorEnvelope{Error: body})
}

// requestError reports a parameter that failed to bind or a body that failed
// to decode as a validation error on that input.
func requestError(w http.ResponseWriter, r *http.Request, err error) {
	var param *api.InvalidParamFormatError
	if errors.As(err, &param) {
		reason := "invalid value"
		if param.ParamName == "id" {
			reason = "must be a uuid"
		}
		writeError(w, r, domain.FieldError(param.ParamName, reason))
		return
	}
	writeError(w, r, domain.FieldError("body", "malformed JSON: "+err.Error()))
}
