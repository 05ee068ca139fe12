package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vendorunity/vendorunity/internal/models"
	"github.com/vendorunity/vendorunity/internal/orders"
	"github.com/vendorunity/vendorunity/internal/storage"
)

// OrderService owns the per-group order books and the submitted supplier
// orders derived from them.
type OrderService struct {
	records *storage.Records
	vendors *VendorService
	books   *orders.Books
}

// NewOrderService creates an OrderService sharing the vendor service's view
// of group membership.
func NewOrderService(records *storage.Records, vendors *VendorService) *OrderService {
	return &OrderService{
		records: records,
		vendors: vendors,
		books:   orders.NewBooks(),
	}
}

// Book returns the in-session order book for a group.
func (s *OrderService) Book(groupCode string) *orders.Book {
	return s.books.ForGroup(groupCode)
}

// DropBook discards a group's book, used when the group itself is deleted.
func (s *OrderService) DropBook(groupCode string) {
	s.books.Drop(groupCode)
}

// GroupSummary reports a group's current book total, even per-vendor share,
// and vendor count.
func (s *OrderService) GroupSummary(ctx context.Context, groupCode string) (totalPaise, sharePaise int64, vendorCount int, err error) {
	members, err := s.vendors.ListVendorsInGroup(ctx, groupCode)
	if err != nil {
		return 0, 0, 0, err
	}
	book := s.books.ForGroup(groupCode)
	total := book.TotalPaise()
	return total, book.SharePaise(len(members)), len(members), nil
}

// SubmitGroupOrder snapshots the group's book into a persisted GroupOrder
// that suppliers can see, then empties the book. The delivery slot must be
// one of the published delivery windows and the book must not be empty.
func (s *OrderService) SubmitGroupOrder(ctx context.Context, groupCode, deliverySlot string) (*models.GroupOrder, error) {
	slog.Info("SubmitGroupOrder request received", "group_code", groupCode, "delivery_slot", deliverySlot)

	if !models.ValidDeliverySlot(deliverySlot) {
		return nil, &ValidationError{Field: "deliverySlot", Reason: "not a published delivery window"}
	}

	members, err := s.vendors.ListVendorsInGroup(ctx, groupCode)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("group %s: %w", groupCode, ErrNotFound)
	}

	book := s.books.ForGroup(groupCode)
	items := book.AllItems()
	if len(items) == 0 {
		return nil, &ValidationError{Field: "items", Reason: "order book is empty"}
	}

	// The creator's area labels the order; a creator always exists for a
	// non-empty group.
	area := ""
	for _, m := range members {
		if m.IsGroupCreator {
			area = m.Area
			break
		}
	}

	total := book.TotalPaise()
	order := models.GroupOrder{
		ID:           uuid.New().String(),
		GroupCode:    groupCode,
		Area:         area,
		Items:        items,
		TotalPaise:   total,
		SharePaise:   book.SharePaise(len(members)),
		VendorCount:  len(members),
		DeliverySlot: deliverySlot,
		Status:       models.OrderPending,
		CreatedAt:    time.Now().Unix(),
	}

	var all []models.GroupOrder
	if err := s.records.Load(ctx, storage.Orders, &all); err != nil {
		return nil, err
	}
	all = append(all, order)
	if err := s.records.Save(ctx, storage.Orders, all); err != nil {
		return nil, err
	}

	book.Reset()
	slog.Info("Group order submitted",
		"order_id", order.ID,
		"group_code", groupCode,
		"total_paise", total,
		"vendor_count", order.VendorCount,
	)
	return &order, nil
}

// ListGroupOrders returns every submitted order, newest first.
func (s *OrderService) ListGroupOrders(ctx context.Context) ([]models.GroupOrder, error) {
	var all []models.GroupOrder
	if err := s.records.Load(ctx, storage.Orders, &all); err != nil {
		return nil, err
	}
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	return all, nil
}

// UpdateOrderStatus advances one order's status. The lifecycle is strictly
// forward (pending → confirmed → delivered); any other move is rejected.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (*models.GroupOrder, error) {
	slog.Info("UpdateOrderStatus request received", "order_id", id, "status", status)

	var all []models.GroupOrder
	if err := s.records.Load(ctx, storage.Orders, &all); err != nil {
		return nil, err
	}

	for i := range all {
		if all[i].ID != id {
			continue
		}
		if err := all[i].Advance(status); err != nil {
			return nil, &ValidationError{Field: "status", Reason: err.Error()}
		}
		if err := s.records.Save(ctx, storage.Orders, all); err != nil {
			return nil, err
		}
		slog.Info("Order status updated", "order_id", id, "status", status)
		return &all[i], nil
	}
	return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
}
