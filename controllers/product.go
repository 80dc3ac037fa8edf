package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/yash932/Backend-Node/models"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

type createProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	CategoryID  uint    `json:"categoryId"` // accepted but unused
}

// Create adds a catalog entry. Admin only.
func (p *ProductController) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Price <= 0 {
		c.String(http.StatusBadRequest, "Name and price are required.")
		return
	}

	product := models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Quantity:    req.Quantity,
	}
	if err := p.DB.Create(&product).Error; err != nil {
		logrus.WithError(err).Error("create product failed")
		c.String(http.StatusInternalServerError, "Error creating product.")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// List returns every product. No filtering or pagination.
func (p *ProductController) List(c *gin.Context) {
	var products []models.Product
	if err := p.DB.Find(&products).Error; err != nil {
		logrus.WithError(err).Error("list products failed")
		c.String(http.StatusInternalServerError, "Error retrieving products.")
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetOne returns a single product by id.
func (p *ProductController) GetOne(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Product not found.")
		return
	}

	var product models.Product
	if err := p.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "Product not found.")
			return
		}
		logrus.WithError(err).Error("get product failed")
		c.String(http.StatusInternalServerError, "Error retrieving product.")
		return
	}
	c.JSON(http.StatusOK, product)
}

type updateProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// Update applies a partial edit. Omitted or zero-valued fields are left
// unchanged. Admin only.
func (p *ProductController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Product not found.")
		return
	}

	var product models.Product
	if err := p.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "Product not found.")
			return
		}
		logrus.WithError(err).Error("update product lookup failed")
		c.String(http.StatusInternalServerError, "Error updating product.")
		return
	}

	// An empty body is a valid partial update that changes nothing.
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.String(http.StatusBadRequest, "Invalid product data.")
		return
	}
	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Price != 0 {
		product.Price = req.Price
	}
	if req.Description != "" {
		product.Description = req.Description
	}

	if err := p.DB.Save(&product).Error; err != nil {
		logrus.WithError(err).Error("update product failed")
		c.String(http.StatusInternalServerError, "Error updating product.")
		return
	}
	c.JSON(http.StatusOK, product)
}

// Delete removes a product. Admin only.
func (p *ProductController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Product not found.")
		return
	}

	var product models.Product
	if err := p.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "Product not found.")
			return
		}
		logrus.WithError(err).Error("delete product lookup failed")
		c.String(http.StatusInternalServerError, "Error deleting product.")
		return
	}

	if err := p.DB.Delete(&product).Error; err != nil {
		logrus.WithError(err).Error("delete product failed")
		c.String(http.StatusInternalServerError, "Error deleting product.")
		return
	}
	c.String(http.StatusOK, "Product deleted successfully.")
}
