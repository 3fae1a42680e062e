package models

// Photo represents a photo of a business uploaded by a user.
// Only the URL is stored, the image itself lives elsewhere.
type Photo struct {
	ID         ID     `json:"id"`
	UserID     ID     `json:"userId" validate:"required"`
	BusinessID ID     `json:"businessId" validate:"required"`
	URL        string `json:"url" validate:"required,url,max=2048"`
	Caption    string `json:"caption,omitempty" validate:"max=1024"`
}

// PhotoClientFields lists the fields a client may set on a photo
var PhotoClientFields = []string{"userId", "businessId", "url", "caption"}
