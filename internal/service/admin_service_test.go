package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vendorunity/vendorunity/internal/models"
	"github.com/vendorunity/vendorunity/internal/storage"
)

func TestSummarize(t *testing.T) {
	records := newTestRecords(t)
	vendors := NewVendorService(records)
	suppliers := NewSupplierService(records)
	admin := NewAdminService(records)
	ctx := context.Background()

	a, err := vendors.RegisterVendor(ctx, vendorForm("Asha"), nil)
	require.NoError(t, err)
	_, err = vendors.RegisterVendor(ctx, vendorForm("Binod"), strptr(a.GroupCode))
	require.NoError(t, err)
	_, err = vendors.RegisterVendor(ctx, vendorForm("Chand"), nil)
	require.NoError(t, err)

	_, err = suppliers.RegisterSupplier(ctx, models.SupplierForm{
		Name:                 "Delhi Wholesale Traders",
		TypeOfProducts:       "Rice, Pulses, Spices",
		AreasServed:          "Connaught Place, Khan Market",
		ContactNumber:        "9811111111",
		MinimumOrderQuantity: "50 kg",
	})
	require.NoError(t, err)

	summary, err := admin.Summarize(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, summary.VendorCount)
	require.Equal(t, 1, summary.SupplierCount)
	require.Equal(t, 2, summary.GroupCount)
	require.Equal(t, 3, summary.TotalMemberships, "memberships equal vendors when all carry a group code")
}

func TestSummarizeEmptyStore(t *testing.T) {
	admin := NewAdminService(newTestRecords(t))

	summary, err := admin.Summarize(context.Background())
	require.NoError(t, err)
	require.Zero(t, summary.VendorCount)
	require.Zero(t, summary.SupplierCount)
	require.Zero(t, summary.GroupCount)
	require.Zero(t, summary.TotalMemberships)
}

func TestResetAll(t *testing.T) {
	records := newTestRecords(t)
	vendors := NewVendorService(records)
	suppliers := NewSupplierService(records)
	admin := NewAdminService(records)
	ctx := context.Background()

	_, err := vendors.RegisterVendor(ctx, vendorForm("Asha"), nil)
	require.NoError(t, err)
	_, err = suppliers.RegisterSupplier(ctx, models.SupplierForm{
		Name:                 "Delhi Wholesale Traders",
		TypeOfProducts:       "Rice",
		AreasServed:          "Delhi",
		ContactNumber:        "9811111111",
		MinimumOrderQuantity: "50 kg",
	})
	require.NoError(t, err)

	require.NoError(t, admin.ResetAll(ctx))

	var vs []models.VendorRecord
	require.NoError(t, records.Load(ctx, storage.Vendors, &vs))
	require.Empty(t, vs)

	var ss []models.SupplierRecord
	require.NoError(t, records.Load(ctx, storage.Suppliers, &ss))
	require.Empty(t, ss)
}

func TestLanguagePreference(t *testing.T) {
	admin := NewAdminService(newTestRecords(t))
	ctx := context.Background()

	code, err := admin.Language(ctx)
	require.NoError(t, err)
	require.Equal(t, "en", code, "default locale is en")

	require.NoError(t, admin.SetLanguage(ctx, "ta"))
	code, err = admin.Language(ctx)
	require.NoError(t, err)
	require.Equal(t, "ta", code)

	err = admin.SetLanguage(ctx, "fr")
	require.True(t, IsValidation(err), "locale outside the closed set is rejected")
}
