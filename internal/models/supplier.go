package models

// SupplierRecord represents a registered wholesale supplier.
// Suppliers are independent of groups in the data model; they see
// submitted group orders through the order feed.
type SupplierRecord struct {
	// ID is the unique identifier for the supplier (UUID format).
	ID string `json:"id"`

	// Name is the supplier's business name.
	Name string `json:"name"`

	// TypeOfProducts is a free-form description of what the supplier sells.
	TypeOfProducts string `json:"typeOfProducts"`

	// AreasServed lists the localities the supplier delivers to.
	AreasServed string `json:"areasServed"`

	// ContactNumber is the supplier's contact number.
	ContactNumber string `json:"contactNumber"`

	// MinimumOrderQuantity is free-form (e.g., "50 kg", "₹10,000").
	MinimumOrderQuantity string `json:"minimumOrderQuantity"`

	// RegisteredAt is the Unix timestamp when the supplier registered.
	RegisteredAt int64 `json:"registeredAt"`
}

// SupplierForm holds the validated registration input for a supplier.
type SupplierForm struct {
	Name                 string `json:"name" validate:"required"`
	TypeOfProducts       string `json:"typeOfProducts" validate:"required"`
	AreasServed          string `json:"areasServed" validate:"required"`
	ContactNumber        string `json:"contactNumber" validate:"required"`
	MinimumOrderQuantity string `json:"minimumOrderQuantity" validate:"required"`
}
