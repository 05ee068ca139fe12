package models

// VendorRecord represents a registered street vendor.
// Vendors sharing a GroupCode form one buying group.
type VendorRecord struct {
	// ID is the unique identifier for the vendor (UUID format).
	ID string `json:"id"`

	// Name is the vendor's display name.
	Name string `json:"name"`

	// PhoneNumber is the vendor's primary contact number.
	PhoneNumber string `json:"phoneNumber"`

	// Area is the locality the vendor operates in
	// (e.g., "Connaught Place, Delhi").
	Area string `json:"area"`

	// FoodType is what the vendor sells (e.g., "Chaat", "Dosa").
	FoodType string `json:"foodType"`

	// WhatsappNumber is optional and may be empty.
	WhatsappNumber string `json:"whatsappNumber,omitempty"`

	// PreferredTimeSlot is the vendor's preferred restocking window.
	PreferredTimeSlot string `json:"preferredTimeSlot"`

	// GroupCode identifies the vendor's buying group. Generated when the
	// vendor creates a group, supplied by the vendor when joining one.
	GroupCode string `json:"groupCode"`

	// IsGroupCreator is true iff this vendor generated the GroupCode.
	// A non-empty group always has exactly one creator.
	IsGroupCreator bool `json:"isGroupCreator"`

	// CreatedAt is the Unix timestamp when the vendor registered.
	CreatedAt int64 `json:"createdAt"`
}

// VendorForm holds the validated registration input for a vendor.
// The join code is passed separately since it selects between creating
// and joining a group.
type VendorForm struct {
	Name              string `json:"name" validate:"required"`
	PhoneNumber       string `json:"phoneNumber" validate:"required"`
	Area              string `json:"area" validate:"required"`
	FoodType          string `json:"foodType" validate:"required"`
	WhatsappNumber    string `json:"whatsappNumber"`
	PreferredTimeSlot string `json:"preferredTimeSlot" validate:"required"`
}

// GroupOverview summarizes one derived group for the admin panel.
type GroupOverview struct {
	GroupCode   string `json:"groupCode"`
	MemberCount int    `json:"memberCount"`
	CreatorName string `json:"creatorName,omitempty"`
	Area        string `json:"area,omitempty"`
}
