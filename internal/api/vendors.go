package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendorunity/vendorunity/internal/models"
)

type registerVendorRequest struct {
	models.VendorForm
	// JoinCode attaches the vendor to an existing group; omitting the
	// field creates one.
	JoinCode *string `json:"joinCode"`
}

func (h *Handler) registerVendor(w http.ResponseWriter, r *http.Request) {
	var req registerVendorRequest
	if err := decode(r, &req); err != nil {
		respondError(w, err)
		return
	}
	record, err := h.vendors.RegisterVendor(r.Context(), req.VendorForm, req.JoinCode)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, record)
}

func (h *Handler) listGroupVendors(w http.ResponseWriter, r *http.Request) {
	members, err := h.vendors.ListVendorsInGroup(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		respondError(w, err)
		return
	}
	if members == nil {
		members = []models.VendorRecord{}
	}
	respondJSON(w, http.StatusOK, members)
}

func (h *Handler) listGroups(w http.ResponseWriter, r *http.Request) {
	overviews, err := h.vendors.GroupOverviews(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if overviews == nil {
		overviews = []models.GroupOverview{}
	}
	respondJSON(w, http.StatusOK, overviews)
}

func (h *Handler) deleteVendor(w http.ResponseWriter, r *http.Request) {
	if err := h.vendors.DeleteVendor(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) deleteGroup(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if err := h.vendors.DeleteGroup(r.Context(), code); err != nil {
		respondError(w, err)
		return
	}
	h.orders.DropBook(code)
	respondJSON(w, http.StatusNoContent, nil)
}
