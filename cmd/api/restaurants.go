package main

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"restaurant-orders/internal/menu"
	"restaurant-orders/internal/restaurant"
)

// @Summary Create a restaurant
// @Accept json
// @Produce json
// @Param restaurant body restaurant.CreateRestaurantRequest true "restaurant"
// @Success 201 {object} restaurant.Restaurant
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /restaurants [post]
func createRestaurantHandler(restaurants restaurant.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req restaurant.CreateRestaurantRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errJSON(c, http.StatusBadRequest, "invalid json body")
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			errJSON(c, http.StatusBadRequest, "name is required")
			return
		}

		ctx := c.Request.Context()
		if _, err := restaurants.GetByName(ctx, req.Name); err == nil {
			errJSON(c, http.StatusConflict, "restaurant name already exists")
			return
		}

		rst := &restaurant.Restaurant{
			ID:       uuid.NewString(),
			Name:     req.Name,
			Location: req.Location,
		}
		if err := restaurants.Create(ctx, rst); err != nil {
			if errors.Is(err, restaurant.ErrAlreadyExists) {
				errJSON(c, http.StatusConflict, "restaurant name already exists")
				return
			}
			log.Printf("[restaurants] create: %v", err)
			errJSON(c, http.StatusInternalServerError, "error creating a restaurant")
			return
		}
		c.JSON(http.StatusCreated, rst)
	}
}

// @Summary List restaurants
// @Produce json
// @Success 200 {array} restaurant.Restaurant
// @Router /restaurants [get]
func listRestaurantsHandler(restaurants restaurant.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := restaurants.List(c.Request.Context())
		if err != nil {
			log.Printf("[restaurants] list: %v", err)
			errJSON(c, http.StatusInternalServerError, "error listing restaurants")
			return
		}
		if out == nil {
			out = []restaurant.Restaurant{}
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Add a menu item to a restaurant
// @Accept json
// @Produce json
// @Param id path string true "restaurant id"
// @Param item body menu.CreateItemRequest true "menu item"
// @Success 201 {object} menu.Item
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /restaurants/{id}/menu [post]
func createMenuItemHandler(restaurants restaurant.Repository, menuItems menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req menu.CreateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errJSON(c, http.StatusBadRequest, "invalid json body")
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			errJSON(c, http.StatusBadRequest, "name is required")
			return
		}
		price, err := decimal.NewFromString(req.Price)
		if err != nil || price.IsNegative() {
			errJSON(c, http.StatusBadRequest, "price must be a non-negative decimal")
			return
		}

		ctx := c.Request.Context()
		id := c.Param("id")
		if _, err := restaurants.GetByID(ctx, id); err != nil {
			errJSON(c, http.StatusNotFound, "restaurant not found")
			return
		}

		m := &menu.Item{
			ID:           uuid.NewString(),
			RestaurantID: id,
			Name:         req.Name,
			Price:        price.StringFixed(2),
			IsAvailable:  true,
		}
		if err := menuItems.Create(ctx, m); err != nil {
			log.Printf("[menu] create for restaurant %s: %v", id, err)
			errJSON(c, http.StatusInternalServerError, "error creating menu item")
			return
		}
		c.JSON(http.StatusCreated, m)
	}
}

// @Summary List a restaurant's menu
// @Produce json
// @Param id path string true "restaurant id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /restaurants/{id}/menu [get]
func listRestaurantMenuHandler(restaurants restaurant.Repository, menuItems menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		rst, err := restaurants.GetByID(ctx, c.Param("id"))
		if err != nil {
			errJSON(c, http.StatusNotFound, "restaurant not found")
			return
		}

		items, err := menuItems.ListByRestaurant(ctx, rst.ID)
		if err != nil {
			log.Printf("[menu] list for restaurant %s: %v", rst.ID, err)
			errJSON(c, http.StatusInternalServerError, "error fetching menu items")
			return
		}
		if len(items) == 0 {
			errJSON(c, http.StatusNotFound, "no menu items found for this restaurant")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"restaurantName": rst.Name,
			"menuItems":      items,
		})
	}
}

// @Summary Total revenue of a restaurant
// @Produce json
// @Param id path string true "restaurant id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /restaurants/{id}/revenue [get]
func restaurantRevenueHandler(restaurants restaurant.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		rst, err := restaurants.GetByID(ctx, c.Param("id"))
		if err != nil {
			errJSON(c, http.StatusNotFound, "restaurant not found")
			return
		}

		raw, err := restaurants.Revenue(ctx, rst.ID)
		if err != nil {
			log.Printf("[restaurants] revenue of %s: %v", rst.ID, err)
			errJSON(c, http.StatusInternalServerError, "error calculating revenue")
			return
		}
		total, err := decimal.NewFromString(raw)
		if err != nil {
			log.Printf("[restaurants] revenue of %s: bad total %q", rst.ID, raw)
			errJSON(c, http.StatusInternalServerError, "error calculating revenue")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"restaurantName": rst.Name,
			"totalRevenue":   total.StringFixed(2),
		})
	}
}
