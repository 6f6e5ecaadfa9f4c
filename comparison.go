package main

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/7nr8hmvthj-sketch/meu-organizador/schedule"
)

// CompareImport accepts a calendar export CSV (multipart field "file" or
// the raw request body), classifies every row and reconciles the run
// against the stored agenda. The computation is pure: corrections are
// applied by the caller through the normal create/pass endpoints.
func CompareImport(c *gin.Context) {
	var reader io.Reader = c.Request.Body
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			jsonError(c, http.StatusBadRequest, "could not read upload: "+err.Error())
			return
		}
		defer f.Close()
		reader = f
	}

	records, skipped, err := schedule.ParseImportCSV(reader)
	if err != nil {
		jsonError(c, http.StatusBadRequest, "invalid csv: "+err.Error())
		return
	}

	var events []Event
	if err := DB.Where("user_id = ?", adminUserID).Order("id asc").Find(&events).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}

	imported := schedule.ClassifyRecords(records)
	result := schedule.Reconcile(imported, toStoredEvents(events))

	c.JSON(http.StatusOK, gin.H{
		"run_id":       uuid.NewString(),
		"imported":     len(imported),
		"skipped_rows": skipped,
		"result":       result,
	})
}
