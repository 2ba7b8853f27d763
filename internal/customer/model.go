package customer

import "time"

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phoneNumber"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateCustomerRequest payload of creation.
// swagger:model CreateCustomerRequest
type CreateCustomerRequest struct {
	Name    string `json:"name"        example:"Ada Lovelace"`
	Email   string `json:"email"       example:"ada@example.com"`
	Phone   string `json:"phoneNumber" example:"+1-555-0101"`
	Address string `json:"address"     example:"12 Analytical Ave"`
}
