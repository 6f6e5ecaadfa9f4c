package main

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// -----------------------------
// Diary (admin only, private)
// -----------------------------

func GetDiaryEntry(c *gin.Context) {
	userID, _ := getUserIDFromContext(c)
	date := c.Query("date")
	if !isValidDate(date) {
		jsonError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	var entry DiaryEntry
	err := DB.Where("user_id = ? AND date = ?", userID, date).First(&entry).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, entry)
}

type SaveDiaryRequest struct {
	Date    string `json:"date" binding:"required"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Tags    string `json:"tags"` // comma-separated
}

// SaveDiaryEntry upserts the page for a day: one entry per user per date.
func SaveDiaryEntry(c *gin.Context) {
	userID, _ := getUserIDFromContext(c)

	var body SaveDiaryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	if !isValidDate(body.Date) {
		jsonError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	var entry DiaryEntry
	err := DB.Where("user_id = ? AND date = ?", userID, body.Date).First(&entry).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		entry = DiaryEntry{
			UserID:  userID,
			Date:    body.Date,
			Title:   body.Title,
			Content: body.Content,
			Tags:    body.Tags,
		}
		if err := DB.Create(&entry).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "could not save entry: "+err.Error())
			return
		}
	case err != nil:
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return
	default:
		updates := map[string]interface{}{
			"title":   body.Title,
			"content": body.Content,
			"tags":    body.Tags,
		}
		if err := DB.Model(&entry).Updates(updates).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, "could not save entry: "+err.Error())
			return
		}
	}
	c.JSON(http.StatusOK, entry)
}

func ListDiaryEntries(c *gin.Context) {
	userID, _ := getUserIDFromContext(c)

	var entries []DiaryEntry
	if err := DB.Where("user_id = ?", userID).Order("date desc").Find(&entries).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, entries)
}

func SearchDiary(c *gin.Context) {
	userID, _ := getUserIDFromContext(c)
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		jsonError(c, http.StatusBadRequest, "missing search query")
		return
	}
	pattern := "%" + query + "%"

	var entries []DiaryEntry
	if err := DB.Where("user_id = ? AND (title ILIKE ? OR content ILIKE ? OR tags ILIKE ?)",
		userID, pattern, pattern, pattern).
		Order("date desc").Find(&entries).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, entries)
}

func DiaryEntriesByTag(c *gin.Context) {
	userID, _ := getUserIDFromContext(c)
	tag := strings.TrimSpace(c.Query("tag"))
	if tag == "" {
		jsonError(c, http.StatusBadRequest, "missing tag")
		return
	}

	var entries []DiaryEntry
	if err := DB.Where("user_id = ? AND tags ILIKE ?", userID, "%"+tag+"%").
		Order("date desc").Find(&entries).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ListDiaryTags collects the distinct tags across all entries.
func ListDiaryTags(c *gin.Context) {
	userID, _ := getUserIDFromContext(c)

	var rows []string
	if err := DB.Model(&DiaryEntry{}).Where("user_id = ?", userID).
		Pluck("tags", &rows).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}

	seen := map[string]bool{}
	tags := []string{}
	for _, row := range rows {
		for _, tag := range strings.Split(row, ",") {
			tag = strings.TrimSpace(tag)
			if tag != "" && !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)

	c.JSON(http.StatusOK, tags)
}

func DeleteDiaryEntry(c *gin.Context) {
	userID, _ := getUserIDFromContext(c)
	date := c.Query("date")
	if !isValidDate(date) {
		jsonError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	if err := DB.Where("user_id = ? AND date = ?", userID, date).
		Delete(&DiaryEntry{}).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "delete failed: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}
