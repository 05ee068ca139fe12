// Package service implements the operations the UI shell calls: vendor and
// supplier registration, group queries, order submission, and the admin
// summary. Services own boundary validation and persist through the record
// store facade.
package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/vendorunity/vendorunity/internal/models"
	"github.com/vendorunity/vendorunity/internal/storage"
)

const (
	groupCodePrefix  = "GRP"
	groupCodeLength  = 6
	groupCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// VendorService manages vendor records and the groups derived from them.
type VendorService struct {
	records  *storage.Records
	validate *validator.Validate
}

// NewVendorService creates a VendorService backed by the given record store.
func NewVendorService(records *storage.Records) *VendorService {
	return &VendorService{
		records:  records,
		validate: validator.New(),
	}
}

// RegisterVendor creates a vendor record. A nil joinCode creates a new
// group with a freshly generated code and marks the vendor as its creator;
// a non-nil joinCode attaches the vendor to that group and must not be
// blank.
func (s *VendorService) RegisterVendor(ctx context.Context, form models.VendorForm, joinCode *string) (*models.VendorRecord, error) {
	slog.Info("RegisterVendor request received", "name", form.Name, "joining", joinCode != nil)

	if err := s.validate.Struct(form); err != nil {
		return nil, validationError(err)
	}

	var vendors []models.VendorRecord
	if err := s.records.Load(ctx, storage.Vendors, &vendors); err != nil {
		return nil, err
	}

	record := models.VendorRecord{
		ID:                uuid.New().String(),
		Name:              form.Name,
		PhoneNumber:       form.PhoneNumber,
		Area:              form.Area,
		FoodType:          form.FoodType,
		WhatsappNumber:    form.WhatsappNumber,
		PreferredTimeSlot: form.PreferredTimeSlot,
		CreatedAt:         time.Now().Unix(),
	}

	if joinCode == nil {
		code, err := newGroupCode(vendors)
		if err != nil {
			return nil, err
		}
		record.GroupCode = code
		record.IsGroupCreator = true
	} else {
		// The registration form upper-cases the code as it is typed.
		record.GroupCode = strings.ToUpper(strings.TrimSpace(*joinCode))
		if record.GroupCode == "" {
			return nil, &ValidationError{Field: "groupCode", Reason: "join code must not be blank"}
		}
		record.IsGroupCreator = false
	}

	vendors = append(vendors, record)
	if err := s.records.Save(ctx, storage.Vendors, vendors); err != nil {
		return nil, err
	}

	slog.Info("Vendor registered",
		"vendor_id", record.ID,
		"group_code", record.GroupCode,
		"creator", record.IsGroupCreator,
	)
	return &record, nil
}

// ListVendorsInGroup returns all vendors whose group code matches exactly,
// in registration order.
func (s *VendorService) ListVendorsInGroup(ctx context.Context, groupCode string) ([]models.VendorRecord, error) {
	var vendors []models.VendorRecord
	if err := s.records.Load(ctx, storage.Vendors, &vendors); err != nil {
		return nil, err
	}
	var members []models.VendorRecord
	for _, v := range vendors {
		if v.GroupCode == groupCode {
			members = append(members, v)
		}
	}
	return members, nil
}

// ListVendors returns every vendor record.
func (s *VendorService) ListVendors(ctx context.Context) ([]models.VendorRecord, error) {
	var vendors []models.VendorRecord
	if err := s.records.Load(ctx, storage.Vendors, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

// DeleteVendor removes one vendor by id. If the vendor was their group's
// creator and members remain, the earliest-registered member is promoted so
// the group keeps exactly one creator.
func (s *VendorService) DeleteVendor(ctx context.Context, id string) error {
	slog.Info("DeleteVendor request received", "vendor_id", id)

	var vendors []models.VendorRecord
	if err := s.records.Load(ctx, storage.Vendors, &vendors); err != nil {
		return err
	}

	var (
		kept    []models.VendorRecord
		deleted *models.VendorRecord
	)
	for _, v := range vendors {
		if v.ID == id {
			removed := v
			deleted = &removed
			continue
		}
		kept = append(kept, v)
	}
	if deleted == nil {
		return fmt.Errorf("vendor %s: %w", id, ErrNotFound)
	}

	if deleted.IsGroupCreator {
		promoteCreator(kept, deleted.GroupCode)
	}

	if err := s.records.Save(ctx, storage.Vendors, kept); err != nil {
		return err
	}
	slog.Info("Vendor deleted", "vendor_id", id, "group_code", deleted.GroupCode)
	return nil
}

// DeleteGroup removes every vendor in the group. Irreversible.
func (s *VendorService) DeleteGroup(ctx context.Context, groupCode string) error {
	slog.Info("DeleteGroup request received", "group_code", groupCode)

	var vendors []models.VendorRecord
	if err := s.records.Load(ctx, storage.Vendors, &vendors); err != nil {
		return err
	}

	kept := vendors[:0:0]
	removed := 0
	for _, v := range vendors {
		if v.GroupCode == groupCode {
			removed++
			continue
		}
		kept = append(kept, v)
	}
	if removed == 0 {
		return fmt.Errorf("group %s: %w", groupCode, ErrNotFound)
	}

	if err := s.records.Save(ctx, storage.Vendors, kept); err != nil {
		return err
	}
	slog.Info("Group deleted", "group_code", groupCode, "vendors_removed", removed)
	return nil
}

// DistinctGroupCodes returns every non-empty group code once, in first-seen
// order.
func (s *VendorService) DistinctGroupCodes(ctx context.Context) ([]string, error) {
	var vendors []models.VendorRecord
	if err := s.records.Load(ctx, storage.Vendors, &vendors); err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var codes []string
	for _, v := range vendors {
		if v.GroupCode == "" || seen[v.GroupCode] {
			continue
		}
		seen[v.GroupCode] = true
		codes = append(codes, v.GroupCode)
	}
	return codes, nil
}

// GroupOverviews summarizes every group: member count plus the creator's
// name and area when a creator exists.
func (s *VendorService) GroupOverviews(ctx context.Context) ([]models.GroupOverview, error) {
	var vendors []models.VendorRecord
	if err := s.records.Load(ctx, storage.Vendors, &vendors); err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var overviews []models.GroupOverview
	for _, v := range vendors {
		if v.GroupCode == "" {
			continue
		}
		i, ok := index[v.GroupCode]
		if !ok {
			i = len(overviews)
			index[v.GroupCode] = i
			overviews = append(overviews, models.GroupOverview{GroupCode: v.GroupCode})
		}
		overviews[i].MemberCount++
		if v.IsGroupCreator {
			overviews[i].CreatorName = v.Name
			overviews[i].Area = v.Area
		}
	}
	return overviews, nil
}

// promoteCreator flags the earliest-registered remaining member of the group
// as creator. No-op when the group is empty.
func promoteCreator(vendors []models.VendorRecord, groupCode string) {
	oldest := -1
	for i, v := range vendors {
		if v.GroupCode != groupCode {
			continue
		}
		if oldest == -1 || v.CreatedAt < vendors[oldest].CreatedAt {
			oldest = i
		}
	}
	if oldest >= 0 {
		vendors[oldest].IsGroupCreator = true
	}
}

// newGroupCode generates a fresh GRP-prefixed code not used by any existing
// vendor.
func newGroupCode(vendors []models.VendorRecord) (string, error) {
	inUse := make(map[string]bool, len(vendors))
	for _, v := range vendors {
		inUse[v.GroupCode] = true
	}
	for {
		code, err := randomGroupCode()
		if err != nil {
			return "", err
		}
		if !inUse[code] {
			return code, nil
		}
	}
}

func randomGroupCode() (string, error) {
	buf := make([]byte, groupCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate group code: %w", err)
	}
	for i, b := range buf {
		buf[i] = groupCodeCharset[int(b)%len(groupCodeCharset)]
	}
	return groupCodePrefix + string(buf), nil
}
