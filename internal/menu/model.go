package menu

import "time"

type Item struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurantId"`
	Name         string `json:"name"`
	// We store price as a string to avoid rounding errors (NUMERIC in Postgres)
	Price       string    `json:"price"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateItemRequest payload of menu item creation.
// swagger:model CreateMenuItemRequest
type CreateItemRequest struct {
	Name  string `json:"name"  example:"Margherita"`
	Price string `json:"price" example:"9.99"`
}

// UpdateItemRequest payload of partial update; nil fields stay unchanged.
// swagger:model UpdateMenuItemRequest
type UpdateItemRequest struct {
	Price       *string `json:"price"`
	IsAvailable *bool   `json:"isAvailable"`
}
