package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-dashboard/models"
	"github.com/yeremiapane/restaurant-dashboard/utils"
	"gorm.io/gorm"
)

type ExpenseController struct {
	DB *gorm.DB
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db}
}

// CreateExpense -> append one miscellaneous expense, dated today
func (ec *ExpenseController) CreateExpense(c *gin.Context) {
	type reqBody struct {
		Amount float64 `json:"amount" binding:"gte=0"`
		Note   string  `json:"note"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	expense := models.MiscExpense{
		Date:   time.Now(),
		Amount: body.Amount,
		Note:   body.Note,
	}
	if err := ec.DB.Create(&expense).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Expense added", expense)
}

// GetAllExpenses
func (ec *ExpenseController) GetAllExpenses(c *gin.Context) {
	var expenses []models.MiscExpense
	if err := ec.DB.Order("id asc").Find(&expenses).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of expenses", expenses)
}
