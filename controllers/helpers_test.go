package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yash932/Backend-Node/models"
	"github.com/yash932/Backend-Node/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	logrus.SetLevel(logrus.PanicLevel)
}

// newTestEnv builds a full router over an isolated in-memory database, so
// tests go through the same gates and queries as production requests.
func newTestEnv(t *testing.T) (*gin.Engine, *gorm.DB, *utils.TokenManager) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Keep a single connection so every query sees the same in-memory DB.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
	))

	tokens := utils.NewTokenManager("test-secret", time.Hour)
	r := gin.New()
	RegisterRoutes(r, db, tokens)
	return r, db, tokens
}

func createUser(t *testing.T, db *gorm.DB, name, email, password, role string) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	user := models.User{Name: name, Email: email, Password: hash, Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createProduct(t *testing.T, db *gorm.DB, name string, price float64, quantity int) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: price, Quantity: quantity}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func tokenFor(t *testing.T, tm *utils.TokenManager, user models.User) string {
	t.Helper()
	token, err := tm.Generate(user.ID, user.Email, user.Role)
	require.NoError(t, err)
	return token
}

func doRequest(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
