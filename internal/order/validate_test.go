package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateRequestValidate(t *testing.T) {
	valid := CreateRequest{
		CustomerID:   "c1",
		RestaurantID: "r1",
		Items:        []LineItem{{MenuItemID: "m1", Quantity: 2}},
	}

	tests := []struct {
		name    string
		mutate  func(*CreateRequest)
		wantErr string
	}{
		{name: "valid", mutate: func(r *CreateRequest) {}},
		{
			name:    "missing customer",
			mutate:  func(r *CreateRequest) { r.CustomerID = " " },
			wantErr: "customerId is required",
		},
		{
			name:    "missing restaurant",
			mutate:  func(r *CreateRequest) { r.RestaurantID = "" },
			wantErr: "restaurantId is required",
		},
		{
			name:    "empty items",
			mutate:  func(r *CreateRequest) { r.Items = nil },
			wantErr: "items must not be empty",
		},
		{
			name:    "blank menu item id",
			mutate:  func(r *CreateRequest) { r.Items = []LineItem{{MenuItemID: "", Quantity: 1}} },
			wantErr: "menuItemId is required for every item",
		},
		{
			name:    "zero quantity",
			mutate:  func(r *CreateRequest) { r.Items = []LineItem{{MenuItemID: "m1", Quantity: 0}} },
			wantErr: "quantity for menu item m1 must be a positive integer",
		},
		{
			name:    "negative quantity",
			mutate:  func(r *CreateRequest) { r.Items = []LineItem{{MenuItemID: "m1", Quantity: -3}} },
			wantErr: "quantity for menu item m1 must be a positive integer",
		},
		{
			name: "later item invalid",
			mutate: func(r *CreateRequest) {
				r.Items = []LineItem{{MenuItemID: "m1", Quantity: 1}, {MenuItemID: "m2", Quantity: 0}}
			},
			wantErr: "quantity for menu item m2 must be a positive integer",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			err := req.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestUpdateStatusRequestValidate(t *testing.T) {
	assert.NoError(t, (&UpdateStatusRequest{Status: "Delivered"}).Validate())
	assert.EqualError(t, (&UpdateStatusRequest{Status: "  "}).Validate(), "status is required")
}
