// Package calculator computes group order totals and even per-vendor shares.
// All amounts are int64 paise; the division for a share truncates, and any
// remainder is a presentation concern.
package calculator

import "github.com/vendorunity/vendorunity/internal/models"

// TotalPaise sums the price of every line item across every vendor's list.
// Aggregation always spans the whole book, not just one vendor's items.
func TotalPaise(book map[string][]models.LineItem) int64 {
	var total int64
	for _, items := range book {
		for _, item := range items {
			total += item.PricePaise
		}
	}
	return total
}

// SharePaise returns the even per-vendor share of total for vendorCount
// vendors. A vendor count of zero yields zero rather than a division fault.
func SharePaise(total int64, vendorCount int) int64 {
	if vendorCount <= 0 {
		return 0
	}
	return total / int64(vendorCount)
}
