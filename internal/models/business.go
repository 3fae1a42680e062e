package models

// Business represents a business listed on the platform
type Business struct {
	ID          ID     `json:"id"`
	OwnerID     ID     `json:"ownerId" validate:"required"`
	Name        string `json:"name" validate:"required,max=255"`
	Address     string `json:"address" validate:"required,max=255"`
	City        string `json:"city" validate:"required,max=255"`
	State       string `json:"state" validate:"required,max=255"`
	Zip         string `json:"zip" validate:"required,max=32"`
	Phone       string `json:"phone" validate:"required,max=64"`
	Category    string `json:"category" validate:"required,max=255"`
	Subcategory string `json:"subcategory" validate:"required,max=255"`
	Website     string `json:"website,omitempty" validate:"omitempty,url,max=255"`
	Email       string `json:"email,omitempty" validate:"omitempty,email,max=255"`
}

// BusinessDetails is a business together with its photos and reviews
type BusinessDetails struct {
	Business
	Photos  []Photo  `json:"photos"`
	Reviews []Review `json:"reviews"`
}

// BusinessClientFields lists the fields a client may set on a business
var BusinessClientFields = []string{
	"ownerId",
	"name",
	"address",
	"city",
	"state",
	"zip",
	"phone",
	"category",
	"subcategory",
	"website",
	"email",
}

// BusinessOwnerField is the payload key identifying the owner of a business
const BusinessOwnerField = "ownerId"

// BusinessList is a single page of businesses
type BusinessList struct {
	Businesses []Business `json:"businesses"`
	PageNumber int        `json:"pageNumber"`
	TotalPages int        `json:"totalPages"`
	PageSize   int        `json:"pageSize"`
	TotalCount int        `json:"totalCount"`
	Links      Links      `json:"links"`
}

// Links holds the HATEOAS navigation links of a paginated list
type Links struct {
	NextPage  string `json:"nextPage,omitempty"`
	LastPage  string `json:"lastPage,omitempty"`
	PrevPage  string `json:"prevPage,omitempty"`
	FirstPage string `json:"firstPage,omitempty"`
}
