package restaurant

import "time"

type Restaurant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateRestaurantRequest payload of creation.
// swagger:model CreateRestaurantRequest
type CreateRestaurantRequest struct {
	Name     string `json:"name"     example:"Trattoria Roma"`
	Location string `json:"location" example:"Via Appia 7"`
}
