package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendorunity/vendorunity/internal/models"
)

func (h *Handler) registerSupplier(w http.ResponseWriter, r *http.Request) {
	var form models.SupplierForm
	if err := decode(r, &form); err != nil {
		respondError(w, err)
		return
	}
	record, err := h.suppliers.RegisterSupplier(r.Context(), form)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, record)
}

func (h *Handler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.suppliers.ListSuppliers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if suppliers == nil {
		suppliers = []models.SupplierRecord{}
	}
	respondJSON(w, http.StatusOK, suppliers)
}

func (h *Handler) deleteSupplier(w http.ResponseWriter, r *http.Request) {
	if err := h.suppliers.DeleteSupplier(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
