package models

// Product, food type and time slot catalogs shown by the UI shell.
// "Other" keeps every list open-ended; line item products and food types
// are therefore not validated against these.

// Products is the bulk order product catalog.
var Products = []string{
	"Rice (per kg)", "Wheat Flour (per kg)", "Oil (per liter)",
	"Onions (per kg)", "Potatoes (per kg)", "Tomatoes (per kg)",
	"Pulses (per kg)", "Spices Mix (per kg)", "Tea Leaves (per kg)",
	"Sugar (per kg)", "Salt (per kg)", "Other",
}

// FoodTypes lists what vendors sell.
var FoodTypes = []string{
	"Chaat", "Dosa", "Idli", "Vada Pav", "Pani Puri", "Samosa",
	"Biryani", "Rolls", "Paratha", "Tea/Coffee", "Juice", "Other",
}

// VendorTimeSlots are the restocking windows offered at registration.
var VendorTimeSlots = []string{
	"Morning (6 AM - 10 AM)",
	"Late Morning (10 AM - 12 PM)",
	"Afternoon (12 PM - 4 PM)",
	"Evening (4 PM - 8 PM)",
	"Night (8 PM - 11 PM)",
}

// DeliverySlots are the delivery windows a group can pick when submitting
// an order. Unlike the open-ended catalogs above, submission requires one
// of these exact values.
var DeliverySlots = []string{
	"8:00 AM - 10:00 AM",
	"10:00 AM - 12:00 PM",
	"2:00 PM - 4:00 PM",
	"4:00 PM - 6:00 PM",
	"6:00 PM - 8:00 PM",
}

// ValidDeliverySlot reports whether slot is one of DeliverySlots.
func ValidDeliverySlot(slot string) bool {
	for _, s := range DeliverySlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Languages is the closed set of UI locale codes the shell persists.
var Languages = []string{"en", "hi", "ta"}

// ValidLanguage reports whether code is a supported locale.
func ValidLanguage(code string) bool {
	for _, l := range Languages {
		if l == code {
			return true
		}
	}
	return false
}
