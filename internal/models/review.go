package models

// ReviewCollection is the collection reviews are stored in.
const ReviewCollection = "review"

// Review is left by a renter for a listing.
type Review struct {
	ListingID string  `bson:"listing_id" json:"listing_id" validate:"required"`
	RenterID  string  `bson:"renter_id" json:"renter_id" validate:"required"`
	Rating    int     `bson:"rating" json:"rating" validate:"required,gte=1,lte=5"`
	Comment   *string `bson:"comment,omitempty" json:"comment,omitempty"`
}

// Validate checks field-level constraints.
func (r *Review) Validate() error {
	return validate.Struct(r)
}
