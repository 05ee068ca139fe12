package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/vendorunity/vendorunity/internal/models"
	"github.com/vendorunity/vendorunity/internal/storage"
)

// SupplierService manages supplier records.
type SupplierService struct {
	records  *storage.Records
	validate *validator.Validate
}

// NewSupplierService creates a SupplierService backed by the given record store.
func NewSupplierService(records *storage.Records) *SupplierService {
	return &SupplierService{
		records:  records,
		validate: validator.New(),
	}
}

// RegisterSupplier creates a supplier record, stamps it, and persists it.
func (s *SupplierService) RegisterSupplier(ctx context.Context, form models.SupplierForm) (*models.SupplierRecord, error) {
	slog.Info("RegisterSupplier request received", "name", form.Name)

	if err := s.validate.Struct(form); err != nil {
		return nil, validationError(err)
	}

	var suppliers []models.SupplierRecord
	if err := s.records.Load(ctx, storage.Suppliers, &suppliers); err != nil {
		return nil, err
	}

	record := models.SupplierRecord{
		ID:                   uuid.New().String(),
		Name:                 form.Name,
		TypeOfProducts:       form.TypeOfProducts,
		AreasServed:          form.AreasServed,
		ContactNumber:        form.ContactNumber,
		MinimumOrderQuantity: form.MinimumOrderQuantity,
		RegisteredAt:         time.Now().Unix(),
	}

	suppliers = append(suppliers, record)
	if err := s.records.Save(ctx, storage.Suppliers, suppliers); err != nil {
		return nil, err
	}

	slog.Info("Supplier registered", "supplier_id", record.ID)
	return &record, nil
}

// ListSuppliers returns every supplier record in registration order.
func (s *SupplierService) ListSuppliers(ctx context.Context) ([]models.SupplierRecord, error) {
	var suppliers []models.SupplierRecord
	if err := s.records.Load(ctx, storage.Suppliers, &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

// DeleteSupplier removes one supplier by id.
func (s *SupplierService) DeleteSupplier(ctx context.Context, id string) error {
	slog.Info("DeleteSupplier request received", "supplier_id", id)

	var suppliers []models.SupplierRecord
	if err := s.records.Load(ctx, storage.Suppliers, &suppliers); err != nil {
		return err
	}

	kept := suppliers[:0:0]
	found := false
	for _, sup := range suppliers {
		if sup.ID == id {
			found = true
			continue
		}
		kept = append(kept, sup)
	}
	if !found {
		return fmt.Errorf("supplier %s: %w", id, ErrNotFound)
	}

	if err := s.records.Save(ctx, storage.Suppliers, kept); err != nil {
		return err
	}
	slog.Info("Supplier deleted", "supplier_id", id)
	return nil
}
