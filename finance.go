package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// -----------------------------
// Expenses (admin only)
// -----------------------------

func ListExpenses(c *gin.Context) {
	userID, _ := getUserIDFromContext(c)

	var expenses []Expense
	if err := DB.Where("user_id = ?", userID).Order("due_day asc").Find(&expenses).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, expenses)
}

type CreateExpenseRequest struct {
	Name     string `json:"name" binding:"required"`
	Amount   string `json:"amount" binding:"required"`
	DueDay   int    `json:"due_day" binding:"required,min=1,max=31"`
	Category string `json:"category" binding:"required,oneof=fixed variable"`
}

func CreateExpense(c *gin.Context) {
	userID, _ := getUserIDFromContext(c)

	var body CreateExpenseRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		jsonError(c, http.StatusBadRequest, "invalid amount")
		return
	}

	exp := Expense{
		UserID:   userID,
		Name:     strings.TrimSpace(body.Name),
		Amount:   amount,
		DueDay:   body.DueDay,
		Category: body.Category,
	}
	if err := DB.Create(&exp).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "could not create expense: "+err.Error())
		return
	}
	c.JSON(http.StatusCreated, exp)
}

type UpdateExpenseRequest struct {
	Name     *string `json:"name"`
	Amount   *string `json:"amount"`
	DueDay   *int    `json:"due_day"`
	Category *string `json:"category"`
}

func loadExpense(c *gin.Context) (*Expense, bool) {
	userID, _ := getUserIDFromContext(c)
	id, ok := pathID(c)
	if !ok {
		jsonError(c, http.StatusBadRequest, "invalid expense id")
		return nil, false
	}

	var exp Expense
	if err := DB.Where("user_id = ?", userID).First(&exp, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			jsonError(c, http.StatusNotFound, "expense not found")
			return nil, false
		}
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return nil, false
	}
	return &exp, true
}

func UpdateExpense(c *gin.Context) {
	exp, ok := loadExpense(c)
	if !ok {
		return
	}

	var body UpdateExpenseRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if body.Name != nil {
		updates["name"] = strings.TrimSpace(*body.Name)
	}
	if body.Amount != nil {
		amount, err := decimal.NewFromString(*body.Amount)
		if err != nil {
			jsonError(c, http.StatusBadRequest, "invalid amount")
			return
		}
		updates["amount"] = amount
	}
	if body.DueDay != nil {
		if *body.DueDay < 1 || *body.DueDay > 31 {
			jsonError(c, http.StatusBadRequest, "due_day must be 1-31")
			return
		}
		updates["due_day"] = *body.DueDay
	}
	if body.Category != nil {
		if *body.Category != "fixed" && *body.Category != "variable" {
			jsonError(c, http.StatusBadRequest, "category must be 'fixed' or 'variable'")
			return
		}
		updates["category"] = *body.Category
	}
	if len(updates) == 0 {
		c.JSON(http.StatusOK, exp)
		return
	}

	if err := DB.Model(exp).Updates(updates).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "could not update expense: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, exp)
}

func DeleteExpense(c *gin.Context) {
	exp, ok := loadExpense(c)
	if !ok {
		return
	}

	if err := DB.Delete(&Expense{}, exp.ID).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "delete failed: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "expense deleted"})
}

type TogglePaidRequest struct {
	IsPaid *bool `json:"is_paid" binding:"required"`
	Month  int   `json:"month"`
	Year   int   `json:"year"`
}

// ToggleExpensePaid flips the paid flag, recording when the bill was
// paid. Unpaying clears the paid month/year.
func ToggleExpensePaid(c *gin.Context) {
	exp, ok := loadExpense(c)
	if !ok {
		return
	}

	var body TogglePaidRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	updates := map[string]interface{}{"is_paid": *body.IsPaid}
	if *body.IsPaid {
		month, year := body.Month, body.Year
		if month == 0 || year == 0 {
			now := time.Now()
			month, year = int(now.Month()), now.Year()
		}
		updates["paid_month"] = month
		updates["paid_year"] = year
	} else {
		updates["paid_month"] = 0
		updates["paid_year"] = 0
	}

	if err := DB.Model(exp).Updates(updates).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "could not update expense: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, exp)
}

// ResetExpensesPaid clears the paid flag on every expense, typically at
// the start of a new month.
func ResetExpensesPaid(c *gin.Context) {
	userID, _ := getUserIDFromContext(c)

	updates := map[string]interface{}{"is_paid": false, "paid_month": 0, "paid_year": 0}
	if err := DB.Model(&Expense{}).Where("user_id = ?", userID).Updates(updates).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "could not reset expenses: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "paid status reset"})
}
