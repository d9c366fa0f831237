package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-dashboard/models"
	"github.com/yeremiapane/restaurant-dashboard/utils"
	"gorm.io/gorm"
)

type BillingController struct {
	DB *gorm.DB
}

func NewBillingController(db *gorm.DB) *BillingController {
	return &BillingController{DB: db}
}

// CreateBilling -> append one monthly billing total. Month is free text and
// not unique; entering the same month twice keeps both rows.
func (bc *BillingController) CreateBilling(c *gin.Context) {
	type reqBody struct {
		Month       string  `json:"month"`
		TotalAmount float64 `json:"total_amount" binding:"gte=0"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	billing := models.Billing{
		Month:       body.Month,
		TotalAmount: body.TotalAmount,
	}
	if err := bc.DB.Create(&billing).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Billing added", billing)
}

// GetAllBillings
func (bc *BillingController) GetAllBillings(c *gin.Context) {
	var billings []models.Billing
	if err := bc.DB.Order("id asc").Find(&billings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of billings", billings)
}
