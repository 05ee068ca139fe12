// Package api exposes the core services over JSON HTTP. It is the stand-in
// for the browser UI shell: routes accept already-structured form values and
// return records and derived figures.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vendorunity/vendorunity/internal/orders"
	"github.com/vendorunity/vendorunity/internal/service"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	vendors   *service.VendorService
	suppliers *service.SupplierService
	orders    *service.OrderService
	admin     *service.AdminService
}

// NewHandler builds the Handler from its services.
func NewHandler(vendors *service.VendorService, suppliers *service.SupplierService, orderSvc *service.OrderService, admin *service.AdminService) *Handler {
	return &Handler{
		vendors:   vendors,
		suppliers: suppliers,
		orders:    orderSvc,
		admin:     admin,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// respondError maps service errors onto HTTP statuses: validation problems
// and bad indexes are the caller's fault, missing records are 404, and
// everything else is internal.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case service.IsValidation(err), errors.Is(err, orders.ErrIndexOutOfRange):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		slog.Error("Request failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// decode reads a JSON request body into v, rejecting unknown fields.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &service.ValidationError{Field: "body", Reason: err.Error()}
	}
	return nil
}
