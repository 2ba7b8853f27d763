package order

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the request shape before any database work. Quantities must
// be positive integers; fractional quantities never get this far because JSON
// binding into an int field rejects them.
func (req *CreateRequest) Validate() error {
	if strings.TrimSpace(req.CustomerID) == "" {
		return errors.New("customerId is required")
	}
	if strings.TrimSpace(req.RestaurantID) == "" {
		return errors.New("restaurantId is required")
	}
	if len(req.Items) == 0 {
		return errors.New("items must not be empty")
	}
	for _, it := range req.Items {
		if strings.TrimSpace(it.MenuItemID) == "" {
			return errors.New("menuItemId is required for every item")
		}
		if it.Quantity <= 0 {
			return fmt.Errorf("quantity for menu item %s must be a positive integer", it.MenuItemID)
		}
	}
	return nil
}

func (req *UpdateStatusRequest) Validate() error {
	if strings.TrimSpace(req.Status) == "" {
		return errors.New("status is required")
	}
	return nil
}
