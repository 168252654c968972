package category

import "time"

type Category struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Color        *string   `json:"color,omitempty"`
	SortOrder    int       `json:"sortOrder"`
	IsActive     bool      `json:"isActive"`
	ProductCount int       `json:"productCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"-"`
}
