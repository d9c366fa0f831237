package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-dashboard/controllers"
	"github.com/yeremiapane/restaurant-dashboard/middlewares"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// 50 requests burst, 1/s sustained per IP. Registered before any route
	// so every handler sits behind it.
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db)
	expenseCtrl := controllers.NewExpenseController(db)
	billingCtrl := controllers.NewBillingController(db)
	reportCtrl := controllers.NewReportController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// MENU
	r.GET("/menus", menuCtrl.GetAllMenus)
	r.POST("/menus", menuCtrl.CreateMenu)
	r.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)

	// ORDERS (immutable once placed; no update/delete routes)
	r.GET("/orders", orderCtrl.GetAllOrders)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)

	// SALES REPORT
	r.GET("/reports/sales", reportCtrl.GetSalesReport)
	r.GET("/reports/sales/chart", reportCtrl.GetSalesChart)
	r.GET("/reports/sales/export", reportCtrl.ExportSalesReport)

	// MISCELLANEOUS EXPENSES
	r.GET("/expenses", expenseCtrl.GetAllExpenses)
	r.POST("/expenses", expenseCtrl.CreateExpense)

	// MONTHLY BILLINGS
	r.GET("/billings", billingCtrl.GetAllBillings)
	r.POST("/billings", billingCtrl.CreateBilling)

	// DASHBOARD
	r.GET("/dashboard/state", reportCtrl.GetDashboardState)
	r.GET("/dashboard/stats", reportCtrl.GetDashboardStats)

	return r
}
