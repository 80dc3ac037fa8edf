package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yash932/Backend-Node/models"
)

func TestPlaceOrderSnapshotsCart(t *testing.T) {
	r, db, tokens := newTestEnv(t)
	user := createUser(t, db, "Bob", "bob@example.com", "pw", "User")
	mug := createProduct(t, db, "Mug", 10, 100)
	pen := createProduct(t, db, "Pen", 5, 100)
	token := tokenFor(t, tokens, user)

	require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, ProductID: mug.ID, Quantity: 2}).Error)
	require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, ProductID: pen.ID, Quantity: 1}).Error)

	w := doRequest(r, http.MethodPost, "/order", "", token)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ID          uint               `json:"id"`
		UserID      uint               `json:"userId"`
		Products    []models.OrderLine `json:"products"`
		TotalAmount float64            `json:"totalAmount"`
		Status      string             `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, user.ID, resp.UserID)
	assert.Equal(t, 25.0, resp.TotalAmount)
	assert.Equal(t, "pending", resp.Status)
	require.Len(t, resp.Products, 2)
	assert.Equal(t, "Mug", resp.Products[0].Name)
	assert.Equal(t, 10.0, resp.Products[0].Price)
	assert.Equal(t, 2, resp.Products[0].Quantity)

	// Placing the order cleared the cart.
	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	r, db, tokens := newTestEnv(t)
	user := createUser(t, db, "Bob", "bob@example.com", "pw", "User")

	w := doRequest(r, http.MethodPost, "/order", "", tokenFor(t, tokens, user))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cart is empty, cannot place an order.", w.Body.String())

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestOrderTotalIsFrozen(t *testing.T) {
	r, db, tokens := newTestEnv(t)
	user := createUser(t, db, "Bob", "bob@example.com", "pw", "User")
	mug := createProduct(t, db, "Mug", 10, 100)
	token := tokenFor(t, tokens, user)
	require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, ProductID: mug.ID, Quantity: 2}).Error)

	w := doRequest(r, http.MethodPost, "/order", "", token)
	require.Equal(t, http.StatusCreated, w.Code)

	// A later price change never touches the placed order.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", mug.ID).Update("price", 99).Error)

	var order models.Order
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&order).Error)
	assert.Equal(t, 20.0, order.TotalAmount)
	require.Len(t, order.Products, 1)
	assert.Equal(t, 10.0, order.Products[0].Price)
}

func TestGetOrderIsOwnerOnly(t *testing.T) {
	r, db, tokens := newTestEnv(t)
	owner := createUser(t, db, "Bob", "bob@example.com", "pw", "User")
	stranger := createUser(t, db, "Eve", "eve@example.com", "pw", "User")
	mug := createProduct(t, db, "Mug", 10, 100)
	require.NoError(t, db.Create(&models.CartItem{UserID: owner.ID, ProductID: mug.ID, Quantity: 1}).Error)

	w := doRequest(r, http.MethodPost, "/order", "", tokenFor(t, tokens, owner))
	require.Equal(t, http.StatusCreated, w.Code)
	var placed struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &placed))

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/order/%d", placed.ID), "", tokenFor(t, tokens, owner))
	require.Equal(t, http.StatusOK, w.Code)
	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, placed.ID, order.ID)

	// Another user's order id is invisible even though it exists.
	w = doRequest(r, http.MethodGet, fmt.Sprintf("/order/%d", placed.ID), "", tokenFor(t, tokens, stranger))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order not found.", w.Body.String())

	w = doRequest(r, http.MethodGet, "/order/9999", "", tokenFor(t, tokens, owner))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAllOrdersIsAdminOnly(t *testing.T) {
	r, db, tokens := newTestEnv(t)
	admin := createUser(t, db, "Root", "root@example.com", "pw", "admin")
	user := createUser(t, db, "Bob", "bob@example.com", "pw", "User")
	mug := createProduct(t, db, "Mug", 10, 100)
	require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, ProductID: mug.ID, Quantity: 3}).Error)

	w := doRequest(r, http.MethodPost, "/order", "", tokenFor(t, tokens, user))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodGet, "/orders", "", tokenFor(t, tokens, user))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(r, http.MethodGet, "/orders", "", tokenFor(t, tokens, admin))
	require.Equal(t, http.StatusOK, w.Code)

	var orders []struct {
		ID          uint    `json:"id"`
		TotalAmount float64 `json:"totalAmount"`
		User        struct {
			ID    uint   `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, 30.0, orders[0].TotalAmount)
	assert.Equal(t, user.ID, orders[0].User.ID)
	assert.Equal(t, "Bob", orders[0].User.Name)
	assert.Equal(t, "bob@example.com", orders[0].User.Email)
}

func TestListAllOrdersEmpty(t *testing.T) {
	r, db, tokens := newTestEnv(t)
	admin := createUser(t, db, "Root", "root@example.com", "pw", "admin")

	w := doRequest(r, http.MethodGet, "/orders", "", tokenFor(t, tokens, admin))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
