package service

import (
	"context"
	"log/slog"

	"github.com/vendorunity/vendorunity/internal/models"
	"github.com/vendorunity/vendorunity/internal/storage"
)

// Summary is the admin panel's cross-cutting view of the record store.
type Summary struct {
	VendorCount   int `json:"vendorCount"`
	SupplierCount int `json:"supplierCount"`
	GroupCount    int `json:"groupCount"`

	// TotalMemberships sums the member count of every distinct group.
	// It always equals VendorCount because registered vendors always carry
	// a group code, but the panel reports it as its own figure.
	TotalMemberships int `json:"totalMemberships"`
}

// AdminService derives summary statistics and performs the full reset.
type AdminService struct {
	records *storage.Records
}

// NewAdminService creates an AdminService backed by the given record store.
func NewAdminService(records *storage.Records) *AdminService {
	return &AdminService{records: records}
}

// Summarize computes the admin panel counters from the live collections.
func (s *AdminService) Summarize(ctx context.Context) (*Summary, error) {
	var vendors []models.VendorRecord
	if err := s.records.Load(ctx, storage.Vendors, &vendors); err != nil {
		return nil, err
	}
	var suppliers []models.SupplierRecord
	if err := s.records.Load(ctx, storage.Suppliers, &suppliers); err != nil {
		return nil, err
	}

	perGroup := make(map[string]int)
	for _, v := range vendors {
		if v.GroupCode != "" {
			perGroup[v.GroupCode]++
		}
	}
	memberships := 0
	for _, n := range perGroup {
		memberships += n
	}

	return &Summary{
		VendorCount:      len(vendors),
		SupplierCount:    len(suppliers),
		GroupCount:       len(perGroup),
		TotalMemberships: memberships,
	}, nil
}

// ResetAll clears every collection unconditionally. There is no undo; the
// caller is responsible for confirming the action first.
func (s *AdminService) ResetAll(ctx context.Context) error {
	slog.Info("ResetAll request received")
	for _, collection := range []string{storage.Vendors, storage.Suppliers, storage.Orders} {
		if err := s.records.Clear(ctx, collection); err != nil {
			return err
		}
	}
	slog.Info("All collections cleared")
	return nil
}

// Language returns the persisted UI locale preference, defaulting to "en".
func (s *AdminService) Language(ctx context.Context) (string, error) {
	code, ok, err := s.records.GetValue(ctx, storage.Language)
	if err != nil {
		return "", err
	}
	if !ok || !models.ValidLanguage(code) {
		return "en", nil
	}
	return code, nil
}

// SetLanguage persists the UI locale preference.
func (s *AdminService) SetLanguage(ctx context.Context, code string) error {
	if !models.ValidLanguage(code) {
		return &ValidationError{Field: "language", Reason: "unsupported locale code"}
	}
	return s.records.SetValue(ctx, storage.Language, code)
}
