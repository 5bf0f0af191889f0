package models

// Category represents a storefront category used to group products
type Category struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	SortOrder int    `json:"sortOrder"`
	IsActive  bool   `json:"isActive"`
}
