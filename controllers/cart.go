package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/yash932/Backend-Node/middlewares"
	"github.com/yash932/Backend-Node/models"
)

type CartController struct {
	DB *gorm.DB
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{DB: db}
}

// currentUserID reads the authenticated user's id that the gate stored in the
// request context. It is never taken from the request body.
func currentUserID(c *gin.Context) (uint, bool) {
	raw, exists := c.Get(middlewares.UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := raw.(uint)
	return id, ok
}

type addCartRequest struct {
	ProductID uint `json:"productId"`
	Quantity  *int `json:"quantity"`
}

// Add puts a product into the user's cart. A repeat add for the same product
// increments the existing row instead of creating a second one.
func (h *CartController) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.String(http.StatusForbidden, "No token provided.")
		return
	}

	var req addCartRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.String(http.StatusBadRequest, "Invalid cart data.")
		return
	}
	if req.ProductID == 0 {
		c.String(http.StatusBadRequest, "Product ID is required.")
		return
	}
	qty := 1
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			c.String(http.StatusBadRequest, "Quantity must be a positive number.")
			return
		}
		if *req.Quantity > 0 {
			qty = *req.Quantity
		}
	}

	var product models.Product
	if err := h.DB.First(&product, req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "Product not found.")
			return
		}
		logrus.WithError(err).Error("cart add: product lookup failed")
		c.String(http.StatusInternalServerError, "Error adding product to cart.")
		return
	}

	var item models.CartItem
	err := h.DB.Where("user_id = ? AND product_id = ?", userID, req.ProductID).First(&item).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{UserID: userID, ProductID: req.ProductID, Quantity: qty}
		if err := h.DB.Create(&item).Error; err != nil {
			logrus.WithError(err).Error("cart add: create failed")
			c.String(http.StatusInternalServerError, "Error adding product to cart.")
			return
		}
	case err != nil:
		logrus.WithError(err).Error("cart add: lookup failed")
		c.String(http.StatusInternalServerError, "Error adding product to cart.")
		return
	default:
		item.Quantity += qty
		if err := h.DB.Save(&item).Error; err != nil {
			logrus.WithError(err).Error("cart add: update failed")
			c.String(http.StatusInternalServerError, "Error adding product to cart.")
			return
		}
	}

	c.JSON(http.StatusCreated, item)
}

type cartItemProduct struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type cartItemDetail struct {
	ID        uint            `json:"id"`
	ProductID uint            `json:"productId"`
	Quantity  int             `json:"quantity"`
	Product   cartItemProduct `json:"product"`
}

// List returns the user's cart joined with the product catalog. An empty cart
// is 200 with an empty array, not 404.
func (h *CartController) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.String(http.StatusForbidden, "No token provided.")
		return
	}

	var items []models.CartItem
	if err := h.DB.Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
		logrus.WithError(err).Error("cart list failed")
		c.String(http.StatusInternalServerError, "Error retrieving cart.")
		return
	}

	details := make([]cartItemDetail, 0, len(items))
	for _, item := range items {
		details = append(details, cartItemDetail{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Product: cartItemProduct{
				Name:        item.Product.Name,
				Price:       item.Product.Price,
				Description: item.Product.Description,
			},
		})
	}
	c.JSON(http.StatusOK, details)
}

type updateCartRequest struct {
	Quantity *int `json:"quantity"`
}

// Update overwrites the quantity of one cart row. Absolute value, not an
// increment.
func (h *CartController) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.String(http.StatusForbidden, "No token provided.")
		return
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.String(http.StatusNotFound, "Product not found in cart.")
		return
	}

	var req updateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil || *req.Quantity <= 0 {
		c.String(http.StatusBadRequest, "Quantity must be a positive number.")
		return
	}

	var item models.CartItem
	if err := h.DB.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "Product not found in cart.")
			return
		}
		logrus.WithError(err).Error("cart update: lookup failed")
		c.String(http.StatusInternalServerError, "Error updating product quantity in cart.")
		return
	}

	var product models.Product
	if err := h.DB.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "Product not found.")
			return
		}
		logrus.WithError(err).Error("cart update: product lookup failed")
		c.String(http.StatusInternalServerError, "Error updating product quantity in cart.")
		return
	}

	item.Quantity = *req.Quantity
	if err := h.DB.Save(&item).Error; err != nil {
		logrus.WithError(err).Error("cart update failed")
		c.String(http.StatusInternalServerError, "Error updating product quantity in cart.")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Remove deletes one cart row.
func (h *CartController) Remove(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.String(http.StatusForbidden, "No token provided.")
		return
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.String(http.StatusNotFound, "Product not found in cart.")
		return
	}

	var item models.CartItem
	if err := h.DB.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "Product not found in cart.")
			return
		}
		logrus.WithError(err).Error("cart remove: lookup failed")
		c.String(http.StatusInternalServerError, "Error removing product from cart.")
		return
	}

	if err := h.DB.Delete(&item).Error; err != nil {
		logrus.WithError(err).Error("cart remove failed")
		c.String(http.StatusInternalServerError, "Error removing product from cart.")
		return
	}
	c.String(http.StatusOK, "Product removed from cart successfully.")
}
