package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vendorunity/vendorunity/internal/invoice"
	"github.com/vendorunity/vendorunity/internal/models"
	"github.com/vendorunity/vendorunity/internal/orders"
	"github.com/vendorunity/vendorunity/internal/service"
)

type addItemRequest struct {
	VendorID string `json:"vendorId"`
}

type patchItemRequest struct {
	VendorID string `json:"vendorId"`
	orders.ItemPatch
}

type groupSummaryResponse struct {
	TotalPaise  int64 `json:"totalPaise"`
	SharePaise  int64 `json:"sharePaise"`
	VendorCount int   `json:"vendorCount"`
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decode(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.VendorID == "" {
		respondError(w, &service.ValidationError{Field: "vendorId", Reason: "required"})
		return
	}
	index := h.orders.Book(chi.URLParam(r, "code")).AddItem(req.VendorID)
	respondJSON(w, http.StatusCreated, map[string]int{"index": index})
}

func (h *Handler) patchItem(w http.ResponseWriter, r *http.Request) {
	index, err := itemIndex(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var req patchItemRequest
	if err := decode(r, &req); err != nil {
		respondError(w, err)
		return
	}
	book := h.orders.Book(chi.URLParam(r, "code"))
	if err := book.Apply(req.VendorID, index, req.ItemPatch); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, book.Items(req.VendorID)[index])
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	index, err := itemIndex(r)
	if err != nil {
		respondError(w, err)
		return
	}
	vendorID := r.URL.Query().Get("vendor_id")
	if vendorID == "" {
		respondError(w, &service.ValidationError{Field: "vendor_id", Reason: "required"})
		return
	}
	if err := h.orders.Book(chi.URLParam(r, "code")).Remove(vendorID, index); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) groupSummary(w http.ResponseWriter, r *http.Request) {
	total, share, count, err := h.orders.GroupSummary(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, groupSummaryResponse{
		TotalPaise:  total,
		SharePaise:  share,
		VendorCount: count,
	})
}

func (h *Handler) groupInvoice(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	vendorID := r.URL.Query().Get("vendor_id")
	if vendorID == "" {
		respondError(w, &service.ValidationError{Field: "vendor_id", Reason: "required"})
		return
	}

	members, err := h.vendors.ListVendorsInGroup(r.Context(), code)
	if err != nil {
		respondError(w, err)
		return
	}
	var vendor *models.VendorRecord
	for i := range members {
		if members[i].ID == vendorID {
			vendor = &members[i]
			break
		}
	}
	if vendor == nil {
		respondError(w, fmt.Errorf("vendor %s in group %s: %w", vendorID, code, service.ErrNotFound))
		return
	}

	book := h.orders.Book(code)
	text := invoice.Render(invoice.Params{
		Vendor:       *vendor,
		Items:        book.Items(vendorID),
		TotalPaise:   book.TotalPaise(),
		SharePaise:   book.SharePaise(len(members)),
		MemberCount:  len(members),
		DeliverySlot: r.URL.Query().Get("delivery_slot"),
		Now:          time.Now(),
	})

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

type submitOrderRequest struct {
	DeliverySlot string `json:"deliverySlot"`
}

func (h *Handler) submitGroupOrder(w http.ResponseWriter, r *http.Request) {
	var req submitOrderRequest
	if err := decode(r, &req); err != nil {
		respondError(w, err)
		return
	}
	order, err := h.orders.SubmitGroupOrder(r.Context(), chi.URLParam(r, "code"), req.DeliverySlot)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	all, err := h.orders.ListGroupOrders(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if all == nil {
		all = []models.GroupOrder{}
	}
	respondJSON(w, http.StatusOK, all)
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := decode(r, &req); err != nil {
		respondError(w, err)
		return
	}
	order, err := h.orders.UpdateOrderStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func itemIndex(r *http.Request) (int, error) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return 0, &service.ValidationError{Field: "index", Reason: "must be an integer"}
	}
	return index, nil
}
