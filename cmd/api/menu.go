package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"restaurant-orders/internal/menu"
)

// @Summary Update a menu item's price or availability
// @Accept json
// @Produce json
// @Param id path string true "menu item id"
// @Param item body menu.UpdateItemRequest true "fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /menu/{id} [patch]
func updateMenuItemHandler(menuItems menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req menu.UpdateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errJSON(c, http.StatusBadRequest, "invalid json body")
			return
		}

		ctx := c.Request.Context()
		m, err := menuItems.GetByID(ctx, c.Param("id"))
		if err != nil {
			errJSON(c, http.StatusNotFound, "menu item not found")
			return
		}

		if req.Price != nil {
			price, err := decimal.NewFromString(*req.Price)
			if err != nil || price.IsNegative() {
				errJSON(c, http.StatusBadRequest, "price must be a non-negative decimal")
				return
			}
			m.Price = price.StringFixed(2)
		}
		if req.IsAvailable != nil {
			m.IsAvailable = *req.IsAvailable
		}

		if err := menuItems.Update(ctx, m); err != nil {
			if errors.Is(err, menu.ErrNotFound) {
				errJSON(c, http.StatusNotFound, "menu item not found")
				return
			}
			log.Printf("[menu] update %s: %v", m.ID, err)
			errJSON(c, http.StatusInternalServerError, "unable to update menu item")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":  "menu item updated",
			"menuItem": m,
		})
	}
}

// @Summary Most ordered menu item
// @Produce json
// @Success 200 {object} menu.Item
// @Failure 404 {object} map[string]string
// @Router /menu/top-items [get]
func topMenuItemHandler(menuItems menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, err := menuItems.TopItem(c.Request.Context())
		if err != nil {
			if errors.Is(err, menu.ErrNotFound) {
				errJSON(c, http.StatusNotFound, "no menu items found")
				return
			}
			log.Printf("[menu] top item: %v", err)
			errJSON(c, http.StatusInternalServerError, "error retrieving top menu item")
			return
		}
		c.JSON(http.StatusOK, m)
	}
}
