package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vendorunity/vendorunity/internal/models"
)

func supplierForm(name string) models.SupplierForm {
	return models.SupplierForm{
		Name:                 name,
		TypeOfProducts:       "Rice, Pulses, Spices",
		AreasServed:          "Connaught Place, Khan Market",
		ContactNumber:        "9811111111",
		MinimumOrderQuantity: "50 kg",
	}
}

func TestRegisterSupplier(t *testing.T) {
	suppliers := NewSupplierService(newTestRecords(t))
	ctx := context.Background()

	record, err := suppliers.RegisterSupplier(ctx, supplierForm("Delhi Wholesale Traders"))
	require.NoError(t, err)
	require.NotEmpty(t, record.ID)
	require.Equal(t, "Delhi Wholesale Traders", record.Name)
	require.NotZero(t, record.RegisteredAt)

	listed, err := suppliers.ListSuppliers(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, record.ID, listed[0].ID)
}

func TestRegisterSupplierValidation(t *testing.T) {
	suppliers := NewSupplierService(newTestRecords(t))

	form := supplierForm("Delhi Wholesale Traders")
	form.ContactNumber = ""
	_, err := suppliers.RegisterSupplier(context.Background(), form)
	require.True(t, IsValidation(err))
}

func TestDeleteSupplier(t *testing.T) {
	suppliers := NewSupplierService(newTestRecords(t))
	ctx := context.Background()

	first, err := suppliers.RegisterSupplier(ctx, supplierForm("Delhi Wholesale Traders"))
	require.NoError(t, err)
	second, err := suppliers.RegisterSupplier(ctx, supplierForm("Azadpur Mandi Direct"))
	require.NoError(t, err)

	require.NoError(t, suppliers.DeleteSupplier(ctx, first.ID))

	listed, err := suppliers.ListSuppliers(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, second.ID, listed[0].ID)

	err = suppliers.DeleteSupplier(ctx, first.ID)
	require.True(t, errors.Is(err, ErrNotFound))
}
