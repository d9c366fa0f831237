package controllers

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-dashboard/models"
	"github.com/yeremiapane/restaurant-dashboard/reports"
	"github.com/yeremiapane/restaurant-dashboard/utils"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

func (rc *ReportController) loadEntries() ([]reports.OrderEntry, error) {
	var orders []models.Order
	if err := rc.DB.Find(&orders).Error; err != nil {
		return nil, err
	}

	entries := make([]reports.OrderEntry, 0, len(orders))
	for _, o := range orders {
		entries = append(entries, reports.OrderEntry{
			CreatedAt:    o.CreatedAt,
			TotalRevenue: o.TotalRevenue,
			TotalCost:    o.TotalCost,
		})
	}
	return entries, nil
}

// GetSalesReport -> revenue/cost/profit summed per period
// Endpoint: GET /reports/sales?group_by=daily|weekly|monthly|yearly
func (rc *ReportController) GetSalesReport(c *gin.Context) {
	granularity, err := reports.ParseGranularity(c.Query("group_by"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	entries, err := rc.loadEntries()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if len(entries) == 0 {
		utils.RespondJSON(c, http.StatusOK, "No orders yet. Place an order to see reports.", gin.H{
			"group_by": granularity,
			"rows":     []reports.PeriodSummary{},
		})
		return
	}

	rows := reports.Summarize(entries, granularity)
	utils.RespondJSON(c, http.StatusOK, "Sales report", gin.H{
		"group_by": granularity,
		"rows":     rows,
	})
}

// GetSalesChart -> the same report rendered as a PNG line chart
func (rc *ReportController) GetSalesChart(c *gin.Context) {
	granularity, err := reports.ParseGranularity(c.Query("group_by"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	entries, err := rc.loadEntries()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	rows := reports.Summarize(entries, granularity)

	var buf bytes.Buffer
	if err := reports.RenderLineChart(&buf, rows); err != nil {
		if err == reports.ErrNotEnoughData {
			utils.RespondJSON(c, http.StatusOK, "Not enough data to draw a chart yet.", nil)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// ExportSalesReport -> the report as a CSV download
func (rc *ReportController) ExportSalesReport(c *gin.Context) {
	granularity, err := reports.ParseGranularity(c.Query("group_by"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	entries, err := rc.loadEntries()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	rows := reports.Summarize(entries, granularity)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"period", "total_revenue", "total_cost", "profit"})
	for _, row := range rows {
		w.Write([]string{
			row.Period,
			strconv.FormatFloat(row.TotalRevenue, 'f', 2, 64),
			strconv.FormatFloat(row.TotalCost, 'f', 2, 64),
			strconv.FormatFloat(row.Profit, 'f', 2, 64),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="sales_report.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// GetDashboardStats -> headline numbers for the dashboard
func (rc *ReportController) GetDashboardStats(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	var stats struct {
		TotalMenus     int64   `json:"total_menus"`
		TotalOrders    int64   `json:"total_orders"`
		TodayOrders    int64   `json:"today_orders"`
		TotalRevenue   float64 `json:"total_revenue"`
		TotalCost      float64 `json:"total_cost"`
		TotalProfit    float64 `json:"total_profit"`
		TotalExpenses  float64 `json:"total_expenses"`
		TotalBillings  float64 `json:"total_billings"`
		RevenueDisplay string  `json:"revenue_display"`
		ProfitDisplay  string  `json:"profit_display"`
	}

	// a storage failure must surface as a 500, not as zeroed stats
	err := rc.DB.Model(&models.Menu{}).Count(&stats.TotalMenus).Error
	if err == nil {
		err = rc.DB.Model(&models.Order{}).Count(&stats.TotalOrders).Error
	}
	if err == nil {
		err = rc.DB.Model(&models.Order{}).
			Where("DATE(created_at) = ?", today).Count(&stats.TodayOrders).Error
	}
	if err == nil {
		err = rc.DB.Model(&models.Order{}).
			Select("COALESCE(SUM(total_revenue), 0)").Row().Scan(&stats.TotalRevenue)
	}
	if err == nil {
		err = rc.DB.Model(&models.Order{}).
			Select("COALESCE(SUM(total_cost), 0)").Row().Scan(&stats.TotalCost)
	}
	if err == nil {
		err = rc.DB.Model(&models.MiscExpense{}).
			Select("COALESCE(SUM(amount), 0)").Row().Scan(&stats.TotalExpenses)
	}
	if err == nil {
		err = rc.DB.Model(&models.Billing{}).
			Select("COALESCE(SUM(total_amount), 0)").Row().Scan(&stats.TotalBillings)
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	stats.TotalProfit = stats.TotalRevenue - stats.TotalCost
	stats.RevenueDisplay = utils.FormatCurrency(stats.TotalRevenue)
	stats.ProfitDisplay = utils.FormatCurrency(stats.TotalProfit)

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}

// GetDashboardState -> everything the dashboard shows, in one payload.
// The write endpoints commit synchronously, so re-fetching this after any
// action always reflects that action.
func (rc *ReportController) GetDashboardState(c *gin.Context) {
	granularity, err := reports.ParseGranularity(c.Query("group_by"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var menus []models.Menu
	if err := rc.DB.Order("id asc").Find(&menus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var orders []models.Order
	if err := rc.DB.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	orderRows := make([]OrderWithProfit, 0, len(orders))
	entries := make([]reports.OrderEntry, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		orderRows = append(orderRows, OrderWithProfit{
			ID:           o.ID,
			CreatedAt:    o.CreatedAt,
			TotalRevenue: o.TotalRevenue,
			TotalCost:    o.TotalCost,
			Profit:       o.Profit(),
		})
		entries = append(entries, reports.OrderEntry{
			CreatedAt:    o.CreatedAt,
			TotalRevenue: o.TotalRevenue,
			TotalCost:    o.TotalCost,
		})
	}

	var expenses []models.MiscExpense
	if err := rc.DB.Order("id asc").Find(&expenses).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var billings []models.Billing
	if err := rc.DB.Order("id asc").Find(&billings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard state", gin.H{
		"menus":    menus,
		"orders":   orderRows,
		"report":   reports.Summarize(entries, granularity),
		"expenses": expenses,
		"billings": billings,
	})
}
