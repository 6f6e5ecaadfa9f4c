package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// -----------------------------
// User preferences
// -----------------------------

func GetPreferences(c *gin.Context) {
	userID, _ := getUserIDFromContext(c)

	var pref UserPreference
	err := DB.Where("user_id = ?", userID).First(&pref).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusOK, UserPreference{UserID: userID, Theme: "light"})
		return
	}
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, pref)
}

type SetThemeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=light dark"`
}

func SetTheme(c *gin.Context) {
	userID, _ := getUserIDFromContext(c)

	var body SetThemeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	var pref UserPreference
	err := DB.Where("user_id = ?", userID).First(&pref).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		pref = UserPreference{UserID: userID, Theme: body.Theme}
		if err := DB.Create(&pref).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "could not save preference: "+err.Error())
			return
		}
	case err != nil:
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return
	default:
		if err := DB.Model(&pref).Update("theme", body.Theme).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "could not save preference: "+err.Error())
			return
		}
	}
	c.JSON(http.StatusOK, pref)
}
