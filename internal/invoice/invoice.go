// Package invoice renders the plain-text order invoice a vendor can
// download from the group dashboard.
package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/vendorunity/vendorunity/internal/models"
)

// Params carries everything one invoice needs. Now is injected so output is
// reproducible in tests.
type Params struct {
	Vendor       models.VendorRecord
	Items        []models.LineItem
	TotalPaise   int64
	SharePaise   int64
	MemberCount  int
	DeliverySlot string
	Now          time.Time
}

// Number derives the invoice number from the timestamp: "INV-" plus the
// last 8 digits of the unix-milli clock.
func Number(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "INV-" + ms
}

// Render produces the downloadable invoice text.
func Render(p Params) string {
	var b strings.Builder
	b.WriteString("VendorUnity Invoice\n")
	fmt.Fprintf(&b, "Invoice #: %s\n", Number(p.Now))
	fmt.Fprintf(&b, "Date: %s\n", p.Now.Format("02/01/2006"))
	fmt.Fprintf(&b, "Vendor: %s\n", p.Vendor.Name)
	fmt.Fprintf(&b, "Group Code: %s\n", p.Vendor.GroupCode)
	fmt.Fprintf(&b, "Area: %s\n", p.Vendor.Area)
	b.WriteString("\nOrder Details:\n")
	for _, item := range p.Items {
		fmt.Fprintf(&b, "%s - %s - %s\n", item.Product, item.Quantity, Rupees(item.PricePaise))
	}
	fmt.Fprintf(&b, "\nTotal Amount: %s\n", Rupees(p.TotalPaise))
	fmt.Fprintf(&b, "Group Members: %d vendors\n", p.MemberCount)
	fmt.Fprintf(&b, "Your Share: %s\n", Rupees(p.SharePaise))
	slot := p.DeliverySlot
	if slot == "" {
		slot = "TBD"
	}
	fmt.Fprintf(&b, "Delivery Time: %s\n", slot)
	return b.String()
}

// Rupees formats a paise amount as rupees with two decimals, e.g. 50000 →
// "₹500.00".
func Rupees(paise int64) string {
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}
	return fmt.Sprintf("%s₹%d.%02d", sign, paise/100, paise%100)
}
