package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/goliatone/go-pagemeta/catalog"
)

const (
	codeInvalidParameter = "INVALID_PARAMETER"
	codeValidationError  = "VALIDATION_ERROR"
	codeNotFound         = "NOT_FOUND"
	codeInternalError    = "INTERNAL_ERROR"
)

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorEnvelope struct {
	Success bool      `json:"success"`
	Error   errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, successEnvelope{Success: true, Data: data})
}

func writeFailure(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// requestLanguage normalizes the lang query parameter at the boundary; any
// value other than "ar" resolves to English. An absent parameter falls back
// to the configured default language.
func (api *API) requestLanguage(r *http.Request) catalog.Language {
	raw := strings.TrimSpace(r.URL.Query().Get("lang"))
	if raw == "" {
		return api.defaultLang
	}
	return catalog.NormalizeLanguage(raw)
}

// parseLimit interprets the limit query parameter. Absent means "use the
// service default" and is signalled as -1; negative or non-numeric values are
// rejected.
func parseLimit(raw string) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return -1, true
	}
	limit, err := strconv.Atoi(trimmed)
	if err != nil || limit < 0 {
		return 0, false
	}
	return limit, true
}

// recovered converts handler panics into a well-formed INTERNAL_ERROR
// response instead of a dropped connection.
func (api *API) recovered(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			api.logger.Error("http.handler.panic", "path", r.URL.Path, "panic", rec)
			message := "internal server error"
			if api.exposeErrors {
				message = message + ": " + stringifyPanic(rec)
			}
			writeFailure(w, http.StatusInternalServerError, codeInternalError, message)
		}()
		next(w, r)
	}
}

func stringifyPanic(rec any) string {
	switch v := rec.(type) {
	case error:
		return v.Error()
	case string:
		return v
	default:
		return "unexpected failure"
	}
}
