package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vendorunity/vendorunity/internal/config"
	"github.com/vendorunity/vendorunity/internal/models"
	"github.com/vendorunity/vendorunity/internal/observability"
	"github.com/vendorunity/vendorunity/internal/service"
	"github.com/vendorunity/vendorunity/internal/storage"
	"github.com/vendorunity/vendorunity/internal/storage/sqlite"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	kv, err := sqlite.New(filepath.Join(t.TempDir(), "api_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	records := storage.NewRecords(kv)
	vendors := service.NewVendorService(records)
	suppliers := service.NewSupplierService(records)
	orderSvc := service.NewOrderService(records, vendors)
	admin := service.NewAdminService(records)

	h := NewHandler(vendors, suppliers, orderSvc, admin)
	cfg := &config.Config{AppEnv: "test", RateLimit: 10000}
	return NewRouter(h, cfg, observability.New())
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func vendorPayload(name string) map[string]any {
	return map[string]any{
		"name":              name,
		"phoneNumber":       "9876543210",
		"area":              "Connaught Place",
		"foodType":          "Chaat",
		"preferredTimeSlot": "Morning (6 AM - 12 PM)",
	}
}

func TestGroupOrderFlow(t *testing.T) {
	router := newTestRouter(t)

	// Asha registers and gets a fresh group.
	rec := doJSON(t, router, http.MethodPost, "/api/vendors", vendorPayload("Asha"))
	require.Equal(t, http.StatusCreated, rec.Code)
	asha := decodeBody[models.VendorRecord](t, rec)
	require.True(t, asha.IsGroupCreator)
	require.NotEmpty(t, asha.GroupCode)

	// Binod joins with the shared code.
	join := vendorPayload("Binod")
	join["joinCode"] = asha.GroupCode
	rec = doJSON(t, router, http.MethodPost, "/api/vendors", join)
	require.Equal(t, http.StatusCreated, rec.Code)
	binod := decodeBody[models.VendorRecord](t, rec)
	require.Equal(t, asha.GroupCode, binod.GroupCode)
	require.False(t, binod.IsGroupCreator)

	base := "/api/groups/" + asha.GroupCode

	rec = doJSON(t, router, http.MethodGet, base+"/vendors", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeBody[[]models.VendorRecord](t, rec), 2)

	// Asha adds one filled line item.
	rec = doJSON(t, router, http.MethodPost, base+"/items", map[string]any{"vendorId": asha.ID})
	require.Equal(t, http.StatusCreated, rec.Code)
	index := decodeBody[map[string]int](t, rec)["index"]

	rec = doJSON(t, router, http.MethodPatch, fmt.Sprintf("%s/items/%d", base, index), map[string]any{
		"vendorId":   asha.ID,
		"product":    "Onions",
		"quantity":   "25 kg",
		"pricePaise": 50000,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	item := decodeBody[models.LineItem](t, rec)
	require.Equal(t, "Onions", item.Product)
	require.Equal(t, int64(50000), item.PricePaise)

	// The ₹500 item splits evenly between the two members.
	rec = doJSON(t, router, http.MethodGet, base+"/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decodeBody[groupSummaryResponse](t, rec)
	require.Equal(t, int64(50000), summary.TotalPaise)
	require.Equal(t, int64(25000), summary.SharePaise)
	require.Equal(t, 2, summary.VendorCount)

	rec = doJSON(t, router, http.MethodGet, base+"/invoice?vendor_id="+asha.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	require.Contains(t, rec.Body.String(), "Vendor: Asha")
	require.Contains(t, rec.Body.String(), "Your Share: ₹250.00")

	rec = doJSON(t, router, http.MethodPost, base+"/submit", map[string]any{
		"deliverySlot": "8:00 AM - 10:00 AM",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	order := decodeBody[models.GroupOrder](t, rec)
	require.Equal(t, models.OrderPending, order.Status)
	require.Equal(t, int64(50000), order.TotalPaise)

	// Submission empties the book.
	rec = doJSON(t, router, http.MethodGet, base+"/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Zero(t, decodeBody[groupSummaryResponse](t, rec).TotalPaise)

	rec = doJSON(t, router, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	feed := decodeBody[[]models.GroupOrder](t, rec)
	require.Len(t, feed, 1)
	require.Equal(t, order.ID, feed[0].ID)

	// Status moves forward one step at a time.
	statusPath := "/api/orders/" + order.ID + "/status"
	rec = doJSON(t, router, http.MethodPost, statusPath, map[string]any{"status": "delivered"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, statusPath, map[string]any{"status": "confirmed"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, models.OrderConfirmed, decodeBody[models.GroupOrder](t, rec).Status)
}

func TestVendorValidationErrors(t *testing.T) {
	router := newTestRouter(t)

	missing := vendorPayload("Asha")
	delete(missing, "phoneNumber")
	rec := doJSON(t, router, http.MethodPost, "/api/vendors", missing)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	unknown := vendorPayload("Asha")
	unknown["favouriteColour"] = "blue"
	rec = doJSON(t, router, http.MethodPost, "/api/vendors", unknown)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	blank := vendorPayload("Asha")
	blank["joinCode"] = "   "
	rec = doJSON(t, router, http.MethodPost, "/api/vendors", blank)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotFoundResponses(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodDelete, "/api/vendors/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/suppliers/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/groups/GRPZZZZZZ/submit", map[string]any{
		"deliverySlot": "8:00 AM - 10:00 AM",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteGroupDropsBook(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/vendors", vendorPayload("Asha"))
	require.Equal(t, http.StatusCreated, rec.Code)
	asha := decodeBody[models.VendorRecord](t, rec)
	base := "/api/groups/" + asha.GroupCode

	rec = doJSON(t, router, http.MethodPost, base+"/items", map[string]any{"vendorId": asha.ID})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, base, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, base+"/vendors", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decodeBody[[]models.VendorRecord](t, rec))

	rec = doJSON(t, router, http.MethodGet, base+"/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Zero(t, decodeBody[groupSummaryResponse](t, rec).TotalPaise)
}

func TestAdminEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/vendors", vendorPayload("Asha"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/admin/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decodeBody[service.Summary](t, rec)
	require.Equal(t, 1, summary.VendorCount)
	require.Equal(t, 1, summary.GroupCount)

	rec = doJSON(t, router, http.MethodPut, "/api/language", map[string]any{"language": "hi"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodGet, "/api/language", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "hi", decodeBody[map[string]string](t, rec)["language"])

	rec = doJSON(t, router, http.MethodPut, "/api/language", map[string]any{"language": "xx"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/admin/reset", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/admin/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Zero(t, decodeBody[service.Summary](t, rec).VendorCount)
}

func TestHealthAndMetrics(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	// A request has gone through the middleware, so the counter exists.
	rec = doJSON(t, router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "vendorunity_http_requests_total"))
}
