package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-dashboard/controllers"
	"github.com/yeremiapane/restaurant-dashboard/models"
)

func setupTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Menu{},
		&models.Order{},
		&models.OrderItem{},
		&models.MiscExpense{},
		&models.Billing{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupMenuRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	menuCtrl := controllers.NewMenuController(db)
	r.GET("/menus", menuCtrl.GetAllMenus)
	r.POST("/menus", menuCtrl.CreateMenu)
	r.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)
	return r
}

func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getJSON(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMenuAddAndListInsertionOrder(t *testing.T) {
	db := setupTestDB(t, "menu_list")
	r := setupMenuRouter(db)

	items := []map[string]interface{}{
		{"name": "Nasi Goreng", "price": 10.0, "cost": 4.0},
		{"name": "Es Teh", "price": 5.0, "cost": 2.0},
		{"name": "", "price": 0.0, "cost": 0.0}, // empty name is allowed
	}
	for _, item := range items {
		w := postJSON(r, "/menus", item)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	w := getJSON(r, "/menus")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status bool `json:"status"`
		Data   []struct {
			ID    uint    `json:"id"`
			Name  string  `json:"name"`
			Price float64 `json:"price"`
			Cost  float64 `json:"cost"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	assert.Len(t, resp.Data, 3)

	for i, item := range items {
		assert.Equal(t, uint(i+1), resp.Data[i].ID)
		assert.Equal(t, item["name"], resp.Data[i].Name)
		assert.Equal(t, item["price"], resp.Data[i].Price)
		assert.Equal(t, item["cost"], resp.Data[i].Cost)
	}
}

func TestCreateMenuRejectsNegativePrice(t *testing.T) {
	db := setupTestDB(t, "menu_negative")
	r := setupMenuRouter(db)

	w := postJSON(r, "/menus", map[string]interface{}{"name": "Bad", "price": -1.0, "cost": 0.0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteMenuRejectsBadID(t *testing.T) {
	db := setupTestDB(t, "menu_delete_bad_id")
	r := setupMenuRouter(db)

	req := httptest.NewRequest(http.MethodDelete, "/menus/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteMenuCascadesItemsKeepsOrderTotals(t *testing.T) {
	db := setupTestDB(t, "menu_delete")
	r := setupMenuRouter(db)

	db.Create(&models.Menu{Name: "Sate", Price: 10, Cost: 4})
	db.Create(&models.Order{
		CreatedAt:    time.Now(),
		TotalRevenue: 10,
		TotalCost:    4,
	})
	db.Create(&models.OrderItem{OrderID: 1, MenuID: 1})

	req := httptest.NewRequest(http.MethodDelete, "/menus/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var menuCount, itemCount int64
	db.Model(&models.Menu{}).Count(&menuCount)
	db.Model(&models.OrderItem{}).Where("menu_id = ?", 1).Count(&itemCount)
	assert.Zero(t, menuCount)
	assert.Zero(t, itemCount)

	// historical totals are snapshots and must not change
	var order models.Order
	assert.NoError(t, db.First(&order, 1).Error)
	assert.Equal(t, 10.0, order.TotalRevenue)
	assert.Equal(t, 4.0, order.TotalCost)
}
