package order

// LineItem is one requested (menuItemId, quantity) pair.
// swagger:model OrderLineItem
type LineItem struct {
	MenuItemID string `json:"menuItemId" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Quantity   int    `json:"quantity"   example:"2"`
}

// CreateRequest payload of order placement.
// swagger:model CreateOrderRequest
type CreateRequest struct {
	CustomerID   string     `json:"customerId"   example:"b2f5ff47-2b1e-4f22-8a96-5f3c1f2f2e7b"`
	RestaurantID string     `json:"restaurantId" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	Items        []LineItem `json:"items"`
}

// UpdateStatusRequest payload of PATCH /orders/:id/status.
// swagger:model UpdateOrderStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" example:"Delivered"`
}
