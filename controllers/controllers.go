// Package controllers adapts HTTP requests to service calls and wraps
// every result in the {success, message, data} envelope.
package controllers

//go:generate mockgen -destination=../mocks/mock_controllers.go -package=mocks wholesale-delivery/controllers AdminAuth,DriverManager,InventoryManager,OrderManager,VendorManager

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"wholesale-delivery/errs"
	"wholesale-delivery/models"
)

// DefaultTimeout bounds the store work of one request.
const DefaultTimeout = 10 * time.Second

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: status < 400, Message: message, Data: data}); err != nil {
		log.Printf("ERROR: encode response: %v", err)
	}
}

// respondError maps the error kind to a status code. Internal errors are
// logged and reported with a generic message.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	kind := errs.KindOf(err)
	status := errs.HTTPStatus(kind)
	if status >= 500 {
		log.Printf("ERROR: %s %s: %v", r.Method, r.URL.Path, err)
	}
	respond(w, status, errs.Message(err), nil)
}

func badRequest(w http.ResponseWriter, message string) {
	respond(w, http.StatusBadRequest, message, nil)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errs.Wrap(errs.InvalidInput, "Invalid input", err)
	}
	return nil
}

// pageFrom reads ?page= and ?limit=; missing or malformed values fall back
// to the defaults.
func pageFrom(r *http.Request) models.Page {
	q := r.URL.Query()
	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	limit, _ := strconv.ParseInt(q.Get("limit"), 10, 64)
	return models.NewPage(page, limit)
}

func withTimeout(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(r.Context(), timeout)
}
