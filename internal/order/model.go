package order

import (
	"time"

	"restaurant-orders/internal/customer"
	"restaurant-orders/internal/menu"
	"restaurant-orders/internal/restaurant"
)

const StatusPlaced = "Placed"

type Order struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customerId"`
	RestaurantID string `json:"restaurantId"`
	Status       string `json:"status"`
	// NUMERIC -> string
	TotalPrice string    `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type Item struct {
	ID         string `json:"id"`
	OrderID    string `json:"orderId"`
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	// unit price captured at order time
	Price string `json:"price"`
}

// ItemDetail is an order item expanded with its menu item.
type ItemDetail struct {
	Item
	MenuItem menu.Item `json:"menuItem"`
}

// Details is the full representation served by GET /orders/:id.
type Details struct {
	Order
	Customer   *customer.Customer     `json:"customer"`
	Restaurant *restaurant.Restaurant `json:"restaurant"`
	Items      []ItemDetail           `json:"orderItems"`
}

// CustomerOrder is one entry of GET /customers/:id/orders.
type CustomerOrder struct {
	Order
	Restaurant *restaurant.Restaurant `json:"restaurant"`
	Items      []ItemDetail           `json:"orderItems"`
}
