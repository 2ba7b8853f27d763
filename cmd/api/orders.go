package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"restaurant-orders/internal/customer"
	"restaurant-orders/internal/menu"
	"restaurant-orders/internal/order"
	"restaurant-orders/internal/restaurant"
)

// placeOrderHandler runs the whole order-placement workflow: reference and
// line-item validation first, then a single transactional write of the order
// and its items with the final total. A failing line item aborts before
// anything is persisted.
//
// @Summary Place an order
// @Accept json
// @Produce json
// @Param order body order.CreateRequest true "order"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /orders [post]
func placeOrderHandler(orders order.Repository, customers customer.Repository, restaurants restaurant.Repository, menuItems menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errJSON(c, http.StatusBadRequest, "invalid json body")
			return
		}
		if err := req.Validate(); err != nil {
			errJSON(c, http.StatusBadRequest, err.Error())
			return
		}

		ctx := c.Request.Context()
		if _, err := customers.GetByID(ctx, req.CustomerID); err != nil {
			errJSON(c, http.StatusBadRequest, "customer does not exist")
			return
		}
		if _, err := restaurants.GetByID(ctx, req.RestaurantID); err != nil {
			errJSON(c, http.StatusBadRequest, "restaurant does not exist")
			return
		}

		o := &order.Order{
			ID:           uuid.NewString(),
			CustomerID:   req.CustomerID,
			RestaurantID: req.RestaurantID,
			Status:       order.StatusPlaced,
		}

		total := decimal.Zero
		items := make([]order.Item, 0, len(req.Items))
		for _, line := range req.Items {
			mi, err := menuItems.GetByID(ctx, line.MenuItemID)
			if err != nil || !mi.IsAvailable {
				errJSON(c, http.StatusBadRequest,
					fmt.Sprintf("menu item %s not found or unavailable", line.MenuItemID))
				return
			}
			lineTotal, err := order.LineTotal(mi.Price, line.Quantity)
			if err != nil {
				log.Printf("[orders] price of menu item %s: %v", mi.ID, err)
				errJSON(c, http.StatusInternalServerError, "failed to place order")
				return
			}
			total = total.Add(lineTotal)
			items = append(items, order.Item{
				ID:         uuid.NewString(),
				OrderID:    o.ID,
				MenuItemID: mi.ID,
				Quantity:   line.Quantity,
				Price:      mi.Price,
			})
		}
		o.TotalPrice = total.StringFixed(2)

		if err := orders.Create(ctx, o, items); err != nil {
			log.Printf("[orders] create: %v", err)
			errJSON(c, http.StatusInternalServerError, "failed to place order")
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": o})
	}
}

// @Summary Get an order with customer, restaurant and items
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} order.Details
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func getOrderHandler(orders order.Repository, customers customer.Repository, restaurants restaurant.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		o, err := orders.GetByID(ctx, c.Param("id"))
		if err != nil {
			errJSON(c, http.StatusNotFound, "order not found")
			return
		}

		cust, err := customers.GetByID(ctx, o.CustomerID)
		if err != nil {
			log.Printf("[orders] customer %s of order %s: %v", o.CustomerID, o.ID, err)
			errJSON(c, http.StatusInternalServerError, "error retrieving order")
			return
		}
		rst, err := restaurants.GetByID(ctx, o.RestaurantID)
		if err != nil {
			log.Printf("[orders] restaurant %s of order %s: %v", o.RestaurantID, o.ID, err)
			errJSON(c, http.StatusInternalServerError, "error retrieving order")
			return
		}
		items, err := orders.GetItems(ctx, o.ID)
		if err != nil {
			log.Printf("[orders] items of order %s: %v", o.ID, err)
			errJSON(c, http.StatusInternalServerError, "error retrieving order")
			return
		}

		c.JSON(http.StatusOK, order.Details{
			Order:      *o,
			Customer:   cust,
			Restaurant: rst,
			Items:      items,
		})
	}
}

// @Summary Update an order's status
// @Accept json
// @Produce json
// @Param id path string true "order id"
// @Param status body order.UpdateStatusRequest true "new status"
// @Success 200 {object} order.Order
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/status [patch]
func updateOrderStatusHandler(orders order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errJSON(c, http.StatusBadRequest, "invalid json body")
			return
		}
		if err := req.Validate(); err != nil {
			errJSON(c, http.StatusBadRequest, err.Error())
			return
		}

		ctx := c.Request.Context()
		id := c.Param("id")
		if err := orders.UpdateStatus(ctx, id, req.Status); err != nil {
			if errors.Is(err, order.ErrNotFound) {
				errJSON(c, http.StatusNotFound, "order not found")
				return
			}
			log.Printf("[orders] update status of %s: %v", id, err)
			errJSON(c, http.StatusInternalServerError, "error updating order status")
			return
		}

		o, err := orders.GetByID(ctx, id)
		if err != nil {
			log.Printf("[orders] refetch %s: %v", id, err)
			errJSON(c, http.StatusInternalServerError, "error updating order status")
			return
		}
		c.JSON(http.StatusOK, o)
	}
}
