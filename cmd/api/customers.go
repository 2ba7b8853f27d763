package main

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"restaurant-orders/internal/customer"
	"restaurant-orders/internal/order"
	"restaurant-orders/internal/restaurant"
)

// @Summary List customers
// @Produce json
// @Success 200 {array} customer.Customer
// @Router /customers [get]
func listCustomersHandler(customers customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := customers.List(c.Request.Context())
		if err != nil {
			log.Printf("[customers] list: %v", err)
			errJSON(c, http.StatusInternalServerError, "error listing customers")
			return
		}
		if out == nil {
			out = []customer.Customer{}
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Create a customer
// @Accept json
// @Produce json
// @Param customer body customer.CreateCustomerRequest true "customer"
// @Success 201 {object} customer.Customer
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /customers [post]
func createCustomerHandler(customers customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req customer.CreateCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errJSON(c, http.StatusBadRequest, "invalid json body")
			return
		}
		if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Phone) == "" {
			errJSON(c, http.StatusBadRequest, "name, email and phoneNumber are required")
			return
		}

		ctx := c.Request.Context()
		if _, err := customers.GetByEmail(ctx, req.Email); err == nil {
			errJSON(c, http.StatusConflict, "email or phone number already exists")
			return
		}
		if _, err := customers.GetByPhone(ctx, req.Phone); err == nil {
			errJSON(c, http.StatusConflict, "email or phone number already exists")
			return
		}

		cust := &customer.Customer{
			ID:      uuid.NewString(),
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Address: req.Address,
		}
		if err := customers.Create(ctx, cust); err != nil {
			if errors.Is(err, customer.ErrAlreadyExists) {
				errJSON(c, http.StatusConflict, "email or phone number already exists")
				return
			}
			log.Printf("[customers] create: %v", err)
			errJSON(c, http.StatusInternalServerError, "error creating customer")
			return
		}
		c.JSON(http.StatusCreated, cust)
	}
}

// @Summary Top customers by order count
// @Produce json
// @Success 200 {array} customer.Customer
// @Failure 404 {object} map[string]string
// @Router /customers/top [get]
func topCustomersHandler(customers customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := customers.TopByOrders(c.Request.Context(), 5)
		if err != nil {
			log.Printf("[customers] top: %v", err)
			errJSON(c, http.StatusInternalServerError, "error retrieving top customers")
			return
		}
		if len(out) == 0 {
			errJSON(c, http.StatusNotFound, "no customers found")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Get a customer
// @Produce json
// @Param id path string true "customer id"
// @Success 200 {object} customer.Customer
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [get]
func getCustomerHandler(customers customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cust, err := customers.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			errJSON(c, http.StatusNotFound, "customer not found")
			return
		}
		c.JSON(http.StatusOK, cust)
	}
}

// @Summary List a customer's orders with restaurant and items
// @Produce json
// @Param id path string true "customer id"
// @Success 200 {array} order.CustomerOrder
// @Failure 404 {object} map[string]string
// @Router /customers/{id}/orders [get]
func listCustomerOrdersHandler(customers customer.Repository, orders order.Repository, restaurants restaurant.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("id")
		if _, err := customers.GetByID(ctx, id); err != nil {
			errJSON(c, http.StatusNotFound, "customer not found")
			return
		}

		list, err := orders.ListByCustomer(ctx, id)
		if err != nil {
			log.Printf("[customers] orders of %s: %v", id, err)
			errJSON(c, http.StatusInternalServerError, "error retrieving orders")
			return
		}

		out := make([]order.CustomerOrder, 0, len(list))
		for _, o := range list {
			rst, err := restaurants.GetByID(ctx, o.RestaurantID)
			if err != nil {
				log.Printf("[customers] restaurant %s of order %s: %v", o.RestaurantID, o.ID, err)
				errJSON(c, http.StatusInternalServerError, "error retrieving orders")
				return
			}
			items, err := orders.GetItems(ctx, o.ID)
			if err != nil {
				log.Printf("[customers] items of order %s: %v", o.ID, err)
				errJSON(c, http.StatusInternalServerError, "error retrieving orders")
				return
			}
			out = append(out, order.CustomerOrder{Order: o, Restaurant: rst, Items: items})
		}
		c.JSON(http.StatusOK, out)
	}
}
