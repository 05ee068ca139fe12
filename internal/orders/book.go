// Package orders holds the in-session order books: the mutable line item
// lists a group assembles before submitting a bulk order. Books live in
// memory only and do not survive a restart.
package orders

import (
	"errors"
	"sync"

	"github.com/vendorunity/vendorunity/internal/calculator"
	"github.com/vendorunity/vendorunity/internal/models"
)

// ErrIndexOutOfRange is returned when an item index does not exist in the
// addressed vendor's list.
var ErrIndexOutOfRange = errors.New("line item index out of range")

// ItemPatch names the line item fields a vendor may change. Nil fields are
// left untouched.
type ItemPatch struct {
	Product    *string `json:"product"`
	Quantity   *string `json:"quantity"`
	PricePaise *int64  `json:"pricePaise"`
	IsPaid     *bool   `json:"isPaid"`
}

// Book is one group's in-session order state: a mapping from vendor ID to
// that vendor's ordered line items. Handlers for several vendors may touch
// the same book, so all access goes through the mutex.
type Book struct {
	mu    sync.Mutex
	items map[string][]models.LineItem
}

// NewBook returns an empty order book.
func NewBook() *Book {
	return &Book{items: make(map[string][]models.LineItem)}
}

// AddItem appends a zero-valued line item to the vendor's list and returns
// its index.
func (b *Book) AddItem(vendorID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items[vendorID] = append(b.items[vendorID], models.LineItem{})
	return len(b.items[vendorID]) - 1
}

// Apply replaces the patched fields of the item at index in the vendor's
// list. An out-of-range index is an error, not a silent no-op.
func (b *Book) Apply(vendorID string, index int, patch ItemPatch) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.items[vendorID]
	if index < 0 || index >= len(list) {
		return ErrIndexOutOfRange
	}
	item := &list[index]
	if patch.Product != nil {
		item.Product = *patch.Product
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.PricePaise != nil {
		item.PricePaise = *patch.PricePaise
	}
	if patch.IsPaid != nil {
		item.IsPaid = *patch.IsPaid
	}
	return nil
}

// Remove deletes the item at index from the vendor's list, preserving the
// relative order of the rest.
func (b *Book) Remove(vendorID string, index int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.items[vendorID]
	if index < 0 || index >= len(list) {
		return ErrIndexOutOfRange
	}
	b.items[vendorID] = append(list[:index], list[index+1:]...)
	return nil
}

// Items returns a copy of the vendor's line items.
func (b *Book) Items(vendorID string) []models.LineItem {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.LineItem(nil), b.items[vendorID]...)
}

// AllItems returns a copy of every vendor's line items, flattened in
// per-vendor order. Vendor iteration order is not specified.
func (b *Book) AllItems() []models.LineItem {
	b.mu.Lock()
	defer b.mu.Unlock()
	var all []models.LineItem
	for _, list := range b.items {
		all = append(all, list...)
	}
	return all
}

// TotalPaise sums the price of every line item of every vendor in the book.
func (b *Book) TotalPaise() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return calculator.TotalPaise(b.items)
}

// SharePaise returns the even per-vendor share of the book's total for
// vendorCount vendors.
func (b *Book) SharePaise(vendorCount int) int64 {
	return calculator.SharePaise(b.TotalPaise(), vendorCount)
}

// Len reports the total number of line items across all vendors.
func (b *Book) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, list := range b.items {
		n += len(list)
	}
	return n
}

// Reset drops every vendor's items, returning the book to its empty state.
// Called after a successful submission.
func (b *Book) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = make(map[string][]models.LineItem)
}

// Books tracks one Book per group code, created on first use.
type Books struct {
	mu    sync.Mutex
	books map[string]*Book
}

// NewBooks returns an empty book registry.
func NewBooks() *Books {
	return &Books{books: make(map[string]*Book)}
}

// ForGroup returns the group's book, creating it if needed.
func (s *Books) ForGroup(groupCode string) *Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	book, ok := s.books[groupCode]
	if !ok {
		book = NewBook()
		s.books[groupCode] = book
	}
	return book
}

// Drop discards the group's book, if any. Called when a group is deleted.
func (s *Books) Drop(groupCode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.books, groupCode)
}
