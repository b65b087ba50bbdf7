package models

// UserCollection is the collection users are stored in.
const UserCollection = "user"

// User roles.
const (
	RoleRenter = "renter"
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
)

// User represents a platform user: owner, renter or admin.
type User struct {
	Name       string  `bson:"name" json:"name" validate:"required"`
	Email      string  `bson:"email" json:"email" validate:"required,email"`
	Phone      *string `bson:"phone,omitempty" json:"phone,omitempty"`
	Role       string  `bson:"role" json:"role"` // renter | owner | admin; not enforced beyond the default
	City       *string `bson:"city,omitempty" json:"city,omitempty"`
	IsVerified bool    `bson:"is_verified" json:"is_verified"`
}

// ApplyDefaults fills optional fields the caller left unset.
func (u *User) ApplyDefaults() {
	if u.Role == "" {
		u.Role = RoleRenter
	}
}

// Validate checks field-level constraints.
func (u *User) Validate() error {
	return validate.Struct(u)
}
