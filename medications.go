package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// -----------------------------
// Medications (admin only)
// -----------------------------

func ListMedications(c *gin.Context) {
	userID, _ := getUserIDFromContext(c)

	var meds []Medication
	if err := DB.Where("user_id = ?", userID).Order("sort_order asc").Find(&meds).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, meds)
}

type CreateMedicationRequest struct {
	Name  string `json:"name" binding:"required"`
	Time  string `json:"time" binding:"required"` // Manhã / Tarde / Noite
	Order int    `json:"order"`
}

func CreateMedication(c *gin.Context) {
	userID, _ := getUserIDFromContext(c)

	var body CreateMedicationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	med := Medication{
		UserID: userID,
		Name:   strings.TrimSpace(body.Name),
		Time:   body.Time,
		Order:  body.Order,
	}
	if err := DB.Create(&med).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "could not create medication: "+err.Error())
		return
	}
	c.JSON(http.StatusCreated, med)
}

type UpdateMedicationRequest struct {
	Name  *string `json:"name"`
	Time  *string `json:"time"`
	Order *int    `json:"order"`
}

func loadMedication(c *gin.Context) (*Medication, bool) {
	userID, _ := getUserIDFromContext(c)
	id, ok := pathID(c)
	if !ok {
		jsonError(c, http.StatusBadRequest, "invalid medication id")
		return nil, false
	}

	var med Medication
	if err := DB.Where("user_id = ?", userID).First(&med, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			jsonError(c, http.StatusNotFound, "medication not found")
			return nil, false
		}
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return nil, false
	}
	return &med, true
}

func UpdateMedication(c *gin.Context) {
	med, ok := loadMedication(c)
	if !ok {
		return
	}

	var body UpdateMedicationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if body.Name != nil {
		updates["name"] = strings.TrimSpace(*body.Name)
	}
	if body.Time != nil {
		updates["time"] = *body.Time
	}
	if body.Order != nil {
		updates["sort_order"] = *body.Order
	}
	if len(updates) == 0 {
		c.JSON(http.StatusOK, med)
		return
	}

	if err := DB.Model(med).Updates(updates).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "could not update medication: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, med)
}

// DeleteMedication removes a medication together with its intake logs.
func DeleteMedication(c *gin.Context) {
	med, ok := loadMedication(c)
	if !ok {
		return
	}

	if err := DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("medication_id = ?", med.ID).Delete(&MedicationLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Medication{}, med.ID).Error
	}); err != nil {
		jsonError(c, http.StatusInternalServerError, "delete failed: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "medication deleted"})
}

// -----------------------------
// Medication logs
// -----------------------------

func GetMedicationLogs(c *gin.Context) {
	userID, _ := getUserIDFromContext(c)
	date := c.Query("date")
	if !isValidDate(date) {
		jsonError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	var logs []MedicationLog
	if err := DB.Where("user_id = ? AND taken_date = ?", userID, date).Find(&logs).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, logs)
}

type LogTakenRequest struct {
	Date string `json:"date" binding:"required"`
}

func LogMedicationTaken(c *gin.Context) {
	med, ok := loadMedication(c)
	if !ok {
		return
	}

	var body LogTakenRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	if !isValidDate(body.Date) {
		jsonError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	entry := MedicationLog{
		UserID:       med.UserID,
		MedicationID: med.ID,
		TakenDate:    body.Date,
	}
	if err := DB.Create(&entry).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "could not log medication: "+err.Error())
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func UndoMedicationTaken(c *gin.Context) {
	med, ok := loadMedication(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if !isValidDate(date) {
		jsonError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	if err := DB.Where("medication_id = ? AND user_id = ? AND taken_date = ?",
		med.ID, med.UserID, date).Delete(&MedicationLog{}).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "delete failed: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "log removed"})
}
