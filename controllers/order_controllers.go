package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-dashboard/models"
	"github.com/yeremiapane/restaurant-dashboard/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// OrderWithProfit is an order row plus the derived profit column.
type OrderWithProfit struct {
	ID           uint      `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	TotalRevenue float64   `json:"total_revenue"`
	TotalCost    float64   `json:"total_cost"`
	Profit       float64   `json:"profit"`
}

// CreateOrder -> place an order for the selected menu ids.
// Prices and costs are snapshotted from the current menu; ids that no longer
// exist contribute nothing but still get an association row, and the same id
// may appear more than once. The whole placement runs in one transaction so
// a crash can never leave an order without its items.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type reqBody struct {
		MenuIDs []uint `json:"menu_ids"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		var totalRevenue, totalCost float64
		for _, menuID := range body.MenuIDs {
			var menu models.Menu
			if err := tx.First(&menu, menuID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					// skip ids that have been deleted since the menu was loaded
					continue
				}
				return err
			}
			totalRevenue += menu.Price
			totalCost += menu.Cost
		}

		order = models.Order{
			CreatedAt:    time.Now(),
			TotalRevenue: totalRevenue,
			TotalCost:    totalCost,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, menuID := range body.MenuIDs {
			item := models.OrderItem{
				OrderID: order.ID,
				MenuID:  menuID,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order placed", OrderWithProfit{
		ID:           order.ID,
		CreatedAt:    order.CreatedAt,
		TotalRevenue: order.TotalRevenue,
		TotalCost:    order.TotalCost,
		Profit:       order.Profit(),
	})
}

// GetAllOrders -> full order history with derived profit
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	rows := make([]OrderWithProfit, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		rows = append(rows, OrderWithProfit{
			ID:           o.ID,
			CreatedAt:    o.CreatedAt,
			TotalRevenue: o.TotalRevenue,
			TotalCost:    o.TotalCost,
			Profit:       o.Profit(),
		})
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", rows)
}

// GetOrderByID -> detail of one order together with its items
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	idStr := c.Param("order_id")
	id, _ := strconv.Atoi(idStr)

	var order models.Order
	if err := oc.DB.Preload("OrderItems").First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}
