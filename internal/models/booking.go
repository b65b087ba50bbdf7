package models

// BookingCollection is the collection bookings are stored in.
const BookingCollection = "booking"

// Booking statuses.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// Booking is a renter's reservation of a listing for a date range.
// start_date < end_date is deliberately not enforced; a same-day or
// inverted range is stored as sent.
type Booking struct {
	ListingID  string   `bson:"listing_id" json:"listing_id" validate:"required"`
	RenterID   string   `bson:"renter_id" json:"renter_id" validate:"required"`
	StartDate  string   `bson:"start_date" json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string   `bson:"end_date" json:"end_date" validate:"required,datetime=2006-01-02"`
	TotalPrice *float64 `bson:"total_price" json:"total_price" validate:"required,gte=0"`
	Status     string   `bson:"status" json:"status"` // pending | confirmed | cancelled | completed
}

// ApplyDefaults fills optional fields the caller left unset.
func (b *Booking) ApplyDefaults() {
	if b.Status == "" {
		b.Status = BookingPending
	}
}

// Validate checks field-level constraints.
func (b *Booking) Validate() error {
	return validate.Struct(b)
}
