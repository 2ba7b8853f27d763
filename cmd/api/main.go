package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "restaurant-orders/docs"
	"restaurant-orders/internal/config"
	"restaurant-orders/internal/customer"
	"restaurant-orders/internal/httpx"
	"restaurant-orders/internal/menu"
	"restaurant-orders/internal/order"
	"restaurant-orders/internal/restaurant"
)

// @title Restaurant Orders API
// @version 1.0
// @description JSON API for customers, restaurants, menu items and order placement.
// @BasePath /
func main() {
	cfg := config.Load()

	pool, err := pgxpool.New(context.Background(), cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	customers := customer.NewPGRepo(pool)
	restaurants := restaurant.NewPGRepo(pool)
	menuItems := menu.NewPGRepo(pool)
	orders := order.NewPGRepo(pool)

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())
	registerRoutes(r, customers, restaurants, menuItems, orders)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("restaurant-orders listening on %s", cfg.HTTPAddr)
	log.Fatal(r.Run(cfg.HTTPAddr))
}

func registerRoutes(r *gin.Engine,
	customers customer.Repository,
	restaurants restaurant.Repository,
	menuItems menu.Repository,
	orders order.Repository,
) {
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	r.GET("/customers", listCustomersHandler(customers))
	r.POST("/customers", createCustomerHandler(customers))
	r.GET("/customers/top", topCustomersHandler(customers))
	r.GET("/customers/:id", getCustomerHandler(customers))
	r.GET("/customers/:id/orders", listCustomerOrdersHandler(customers, orders, restaurants))

	r.POST("/restaurants", createRestaurantHandler(restaurants))
	r.GET("/restaurants", listRestaurantsHandler(restaurants))
	r.POST("/restaurants/:id/menu", createMenuItemHandler(restaurants, menuItems))
	r.GET("/restaurants/:id/menu", listRestaurantMenuHandler(restaurants, menuItems))
	r.GET("/restaurants/:id/revenue", restaurantRevenueHandler(restaurants))

	r.PATCH("/menu/:id", updateMenuItemHandler(menuItems))
	r.GET("/menu/top-items", topMenuItemHandler(menuItems))

	r.POST("/orders", placeOrderHandler(orders, customers, restaurants, menuItems))
	r.GET("/orders/:id", getOrderHandler(orders, customers, restaurants))
	r.PATCH("/orders/:id/status", updateOrderStatusHandler(orders))
}
