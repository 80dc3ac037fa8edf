package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/yash932/Backend-Node/models"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// Place converts the user's cart into an immutable order. The order insert
// and the cart clear run in one transaction so a failure can never leave an
// order without emptying the cart or vice versa.
func (h *OrderController) Place(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.String(http.StatusForbidden, "No token provided.")
		return
	}

	var items []models.CartItem
	if err := h.DB.Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
		logrus.WithError(err).Error("place order: cart load failed")
		c.String(http.StatusInternalServerError, "Error placing order.")
		return
	}
	if len(items) == 0 {
		c.String(http.StatusBadRequest, "Cart is empty, cannot place an order.")
		return
	}

	var totalAmount float64
	lines := make(models.OrderLines, 0, len(items))
	for _, item := range items {
		totalAmount += float64(item.Quantity) * item.Product.Price
		lines = append(lines, models.OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
		})
	}

	order := models.Order{
		UserID:      userID,
		Products:    lines,
		TotalAmount: totalAmount,
		Status:      "pending",
	}
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		logrus.WithError(err).Error("place order failed")
		c.String(http.StatusInternalServerError, "Error placing order.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          order.ID,
		"userId":      order.UserID,
		"products":    order.Products,
		"totalAmount": order.TotalAmount,
		"status":      order.Status,
	})
}

// GetOne returns one order, visible only to its owner. Another user's order
// id yields 404, never the order body.
func (h *OrderController) GetOne(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.String(http.StatusForbidden, "No token provided.")
		return
	}

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Order not found.")
		return
	}

	var order models.Order
	if err := h.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "Order not found.")
			return
		}
		logrus.WithError(err).Error("get order failed")
		c.String(http.StatusInternalServerError, "Error retrieving order.")
		return
	}
	c.JSON(http.StatusOK, order)
}

type orderOwner struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type adminOrder struct {
	models.Order
	User orderOwner `json:"user"`
}

// ListAll returns every order joined with its owner. Admin only.
func (h *OrderController) ListAll(c *gin.Context) {
	var orders []models.Order
	if err := h.DB.Preload("User").Find(&orders).Error; err != nil {
		logrus.WithError(err).Error("list orders failed")
		c.String(http.StatusInternalServerError, "Error retrieving orders.")
		return
	}

	result := make([]adminOrder, 0, len(orders))
	for _, o := range orders {
		result = append(result, adminOrder{
			Order: o,
			User: orderOwner{
				ID:    o.User.ID,
				Name:  o.User.Name,
				Email: o.User.Email,
			},
		})
	}
	c.JSON(http.StatusOK, result)
}
