package models

// Review represents a user's review of a business
type Review struct {
	ID         ID     `json:"id"`
	UserID     ID     `json:"userId" validate:"required"`
	BusinessID ID     `json:"businessId" validate:"required"`
	Dollars    int    `json:"dollars" validate:"required,min=1,max=4"`
	Stars      int    `json:"stars" validate:"min=0,max=5"`
	Review     string `json:"review,omitempty" validate:"max=4096"`
}

// ReviewClientFields lists the fields a client may set on a review
var ReviewClientFields = []string{"userId", "businessId", "dollars", "stars", "review"}

// Fields identifying who wrote a photo or review and what it is about.
// They are never part of an update.
const (
	UserOwnerField   = "userId"
	BusinessRefField = "businessId"
)
