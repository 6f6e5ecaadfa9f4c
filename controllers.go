package main

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/7nr8hmvthj-sketch/meu-organizador/schedule"
)

// adminUserID owns the shared shift calendar. Trainers schedule on the
// admin's agenda, never on one of their own.
const adminUserID uint = 1

// -----------------------------
// Helper functions
// -----------------------------

func jsonError(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"error": msg})
}

// getUserIDFromContext expects AuthMiddleware to set "user_id" (uint) in context.
// If not present -> unauthorized.
func getUserIDFromContext(c *gin.Context) (uint, bool) {
	uid, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	switch v := uid.(type) {
	case uint:
		return v, true
	case int:
		return uint(v), true
	case float64:
		return uint(v), true
	default:
		return 0, false
	}
}

func getUsernameFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get("username")
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func getRoleFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func isValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// toStoredEvents projects persisted events onto the core's event shape.
func toStoredEvents(events []Event) []schedule.StoredEvent {
	out := make([]schedule.StoredEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, schedule.StoredEvent{
			ID:          ev.ID,
			Date:        ev.Date,
			Type:        ev.Type,
			Description: ev.Description,
			IsPassed:    ev.IsPassed,
			IsCancelled: ev.IsCancelled,
		})
	}
	return out
}

// -----------------------------
// Events
// -----------------------------

// EventView is an Event enriched with its calendar presentation.
type EventView struct {
	Event
	Label string `json:"label"`
	Color string `json:"color"`
}

func presentEvents(events []Event) []EventView {
	views := make([]EventView, 0, len(events))
	for _, ev := range events {
		views = append(views, EventView{
			Event: ev,
			Label: schedule.EventLabel(ev.Type, ev.Description),
			Color: schedule.EventColor(ev.Type, ev.IsPassed),
		})
	}
	return views
}

func ListEvents(c *gin.Context) {
	var events []Event
	if err := DB.Where("user_id = ?", adminUserID).Order("date asc").Find(&events).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, presentEvents(events))
}

func ListEventsByRange(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if !isValidDate(start) || !isValidDate(end) {
		jsonError(c, http.StatusBadRequest, "start and end must be YYYY-MM-DD")
		return
	}

	var events []Event
	if err := DB.Where("user_id = ? AND date >= ? AND date <= ?", adminUserID, start, end).
		Order("date asc").Find(&events).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, presentEvents(events))
}

type CreateEventRequest struct {
	Date        string `json:"date" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
	IsShift     *bool  `json:"is_shift"` // defaults to true
}

// trainerCanSchedule limits trainer-created entries to their training
// sub-types.
func trainerCanSchedule(eventType string) bool {
	tl := strings.ToLower(eventType)
	return strings.Contains(tl, "musculação") || strings.Contains(tl, "musculacao") ||
		strings.Contains(tl, "pilates")
}

func CreateEvent(c *gin.Context) {
	username, _ := getUsernameFromContext(c)
	role, _ := getRoleFromContext(c)

	var body CreateEventRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if !isValidDate(body.Date) {
		jsonError(c, http.StatusBadRequest, "invalid date format (use YYYY-MM-DD)")
		return
	}
	if role == "trainer" && !trainerCanSchedule(body.Type) {
		jsonError(c, http.StatusForbidden, "trainers can only schedule Musculação or Pilates")
		return
	}

	isShift := true
	if body.IsShift != nil {
		isShift = *body.IsShift
	}

	ev := Event{
		UserID:      adminUserID,
		Date:        body.Date,
		Type:        strings.TrimSpace(body.Type),
		Description: body.Description,
		IsShift:     isShift,
		CreatedBy:   username,
	}

	if err := DB.Create(&ev).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "could not create event: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, ev)
}

type UpdateEventRequest struct {
	Date        *string `json:"date"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
}

// loadOwnedEvent fetches an event of the shared calendar and enforces the
// trainer restriction: trainers touch only entries they created.
func loadOwnedEvent(c *gin.Context) (*Event, bool) {
	id, ok := pathID(c)
	if !ok {
		jsonError(c, http.StatusBadRequest, "invalid event id")
		return nil, false
	}

	var ev Event
	if err := DB.Where("user_id = ?", adminUserID).First(&ev, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			jsonError(c, http.StatusNotFound, "event not found")
			return nil, false
		}
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return nil, false
	}

	role, _ := getRoleFromContext(c)
	username, _ := getUsernameFromContext(c)
	if role == "trainer" && ev.CreatedBy != username {
		jsonError(c, http.StatusForbidden, "trainers can only change entries they created")
		return nil, false
	}
	return &ev, true
}

func UpdateEvent(c *gin.Context) {
	ev, ok := loadOwnedEvent(c)
	if !ok {
		return
	}

	var body UpdateEventRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if body.Date != nil {
		if !isValidDate(*body.Date) {
			jsonError(c, http.StatusBadRequest, "invalid date format (use YYYY-MM-DD)")
			return
		}
		updates["date"] = *body.Date
	}
	if body.Type != nil {
		updates["type"] = strings.TrimSpace(*body.Type)
	}
	if body.Description != nil {
		updates["description"] = *body.Description
	}
	if len(updates) == 0 {
		c.JSON(http.StatusOK, ev)
		return
	}

	if err := DB.Model(ev).Updates(updates).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "could not update event: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, ev)
}

func DeleteEvent(c *gin.Context) {
	ev, ok := loadOwnedEvent(c)
	if !ok {
		return
	}

	if err := DB.Delete(&Event{}, ev.ID).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "delete failed: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

type PassShiftRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// PassShift marks a shift as handed to another worker. The entry stays in
// history flagged rather than deleted.
func PassShift(c *gin.Context) {
	ev, ok := loadOwnedEvent(c)
	if !ok {
		return
	}

	var body PassShiftRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	updates := map[string]interface{}{"is_passed": true, "passed_reason": body.Reason}
	if err := DB.Model(ev).Updates(updates).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "could not update event: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, ev)
}

func UndoPass(c *gin.Context) {
	ev, ok := loadOwnedEvent(c)
	if !ok {
		return
	}

	updates := map[string]interface{}{"is_passed": false, "passed_reason": ""}
	if err := DB.Model(ev).Updates(updates).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "could not update event: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, ev)
}

func CancelEvent(c *gin.Context) {
	setCancelled(c, true)
}

func UndoCancelEvent(c *gin.Context) {
	setCancelled(c, false)
}

func setCancelled(c *gin.Context, cancelled bool) {
	ev, ok := loadOwnedEvent(c)
	if !ok {
		return
	}

	if err := DB.Model(ev).Update("is_cancelled", cancelled).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "could not update event: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, ev)
}

// GetZNHours returns the Zona Norte hour total for the billing window of
// the given month: day 20 of the previous month through day 19.
func GetZNHours(c *gin.Context) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		jsonError(c, http.StatusBadRequest, "month must be 1-12")
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		jsonError(c, http.StatusBadRequest, "invalid year")
		return
	}

	var events []Event
	if err := DB.Where("user_id = ?", adminUserID).Find(&events).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}

	total := schedule.TotalZNHours(toStoredEvents(events), month, year)
	c.JSON(http.StatusOK, gin.H{
		"month":       month,
		"year":        year,
		"total_hours": total,
	})
}
