package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yash932/Backend-Node/middlewares"
	"github.com/yash932/Backend-Node/utils"
)

// RegisterRoutes wires every endpoint onto the engine. The store handle and
// token manager are injected here and passed down to the controllers.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, tokens *utils.TokenManager) {
	auth := NewAuthController(db, tokens)
	products := NewProductController(db)
	carts := NewCartController(db)
	orders := NewOrderController(db)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello")
	})

	// Public routes
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)
	r.GET("/products", products.List)
	r.GET("/products/:id", products.GetOne)

	// Admin-gated routes
	admin := r.Group("/", middlewares.RequireAdmin(tokens))
	admin.POST("/products", products.Create)
	admin.PUT("/products/:id", products.Update)
	admin.DELETE("/products/:id", products.Delete)
	admin.GET("/orders", orders.ListAll)

	// User-gated routes
	user := r.Group("/", middlewares.RequireUser(tokens))
	user.POST("/cart", carts.Add)
	user.GET("/cart", carts.List)
	user.PUT("/cart/:productId", carts.Update)
	user.DELETE("/cart/:productId", carts.Remove)
	user.POST("/order", orders.Place)
	user.GET("/order/:id", orders.GetOne)
}
