package models

// CarCollection is the collection cars are stored in.
const CarCollection = "car"

// Car holds the details of a car managed by an owner. The owner reference
// is an unvalidated foreign key.
type Car struct {
	OwnerID      string   `bson:"owner_id" json:"owner_id" validate:"required"`
	Make         string   `bson:"make" json:"make" validate:"required"`
	Model        string   `bson:"model" json:"model" validate:"required"`
	Year         int      `bson:"year" json:"year" validate:"required,gte=1980,lte=2100"`
	Transmission string   `bson:"transmission" json:"transmission" validate:"required"` // manual | automatic
	Fuel         string   `bson:"fuel" json:"fuel" validate:"required"`                 // gasoline | diesel | hybrid | electric
	Seats        int      `bson:"seats" json:"seats" validate:"required,gte=2,lte=9"`
	Features     []string `bson:"features" json:"features"` // feature tags (AC, GPS, ...)
	Photos       []string `bson:"photos" json:"photos"`     // image URLs
}

// ApplyDefaults fills optional fields the caller left unset.
func (c *Car) ApplyDefaults() {
	if c.Features == nil {
		c.Features = []string{}
	}
	if c.Photos == nil {
		c.Photos = []string{}
	}
}

// Validate checks field-level constraints.
func (c *Car) Validate() error {
	return validate.Struct(c)
}
