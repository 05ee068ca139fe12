package models

import "fmt"

// LineItem is one product entry in a group's in-session bulk order.
// Line items live in memory only; they are snapshotted into a GroupOrder
// on submission and never persisted on their own.
type LineItem struct {
	// Product is the catalog product name, or free text for "Other".
	Product string `json:"product"`

	// Quantity is free-form (e.g., "10 kg").
	Quantity string `json:"quantity"`

	// PricePaise is the price of this line in paise.
	PricePaise int64 `json:"pricePaise"`

	// IsPaid marks whether this line has been paid for.
	IsPaid bool `json:"isPaid"`
}

// OrderStatus is the lifecycle state of a submitted group order.
// Transitions are strictly forward: pending → confirmed → delivered.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderDelivered OrderStatus = "delivered"
)

// next returns the only status reachable from s, or "" at the end of life.
func (s OrderStatus) next() OrderStatus {
	switch s {
	case OrderPending:
		return OrderConfirmed
	case OrderConfirmed:
		return OrderDelivered
	default:
		return ""
	}
}

// CanTransition reports whether s may move to target. There is no backward
// transition and no cancellation path.
func (s OrderStatus) CanTransition(target OrderStatus) bool {
	return s.next() == target && target != ""
}

// Valid reports whether s is a known status value.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderDelivered:
		return true
	}
	return false
}

// GroupOrder is a submitted snapshot of a group's order book, the unit
// suppliers see and act on.
type GroupOrder struct {
	// ID is the unique identifier for the order (UUID format).
	ID string `json:"id"`

	// GroupCode identifies the group that placed the order.
	GroupCode string `json:"groupCode"`

	// Area is the group creator's area at submission time.
	Area string `json:"area"`

	// Items are the snapshotted line items across all vendors in the group.
	Items []LineItem `json:"items"`

	// TotalPaise is the sum of all item prices at submission time.
	TotalPaise int64 `json:"totalPaise"`

	// SharePaise is the even per-vendor share at submission time.
	SharePaise int64 `json:"sharePaise"`

	// VendorCount is the group size at submission time.
	VendorCount int `json:"vendorCount"`

	// DeliverySlot is the agreed delivery window.
	DeliverySlot string `json:"deliverySlot"`

	// Status is the supplier-facing lifecycle state.
	Status OrderStatus `json:"status"`

	// CreatedAt is the Unix timestamp when the order was submitted.
	CreatedAt int64 `json:"createdAt"`
}

// Advance moves the order to target, enforcing the forward-only lifecycle.
func (o *GroupOrder) Advance(target OrderStatus) error {
	if !target.Valid() {
		return fmt.Errorf("unknown order status %q", target)
	}
	if !o.Status.CanTransition(target) {
		return fmt.Errorf("cannot move order from %q to %q", o.Status, target)
	}
	o.Status = target
	return nil
}
