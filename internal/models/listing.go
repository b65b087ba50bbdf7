package models

// ListingCollection is the collection listings are stored in.
const ListingCollection = "listing"

// Listing ties a car to a pickup city, a daily price and an optional
// availability window. Car and owner references are unvalidated foreign keys.
type Listing struct {
	CarID         string   `bson:"car_id" json:"car_id" validate:"required"`
	OwnerID       string   `bson:"owner_id" json:"owner_id" validate:"required"`
	City          string   `bson:"city" json:"city" validate:"required"`
	DailyPrice    *float64 `bson:"daily_price" json:"daily_price" validate:"required,gte=0"`
	Description   *string  `bson:"description,omitempty" json:"description,omitempty"`
	AvailableFrom *string  `bson:"available_from,omitempty" json:"available_from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AvailableTo   *string  `bson:"available_to,omitempty" json:"available_to,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Validate checks field-level constraints.
func (l *Listing) Validate() error {
	return validate.Struct(l)
}
