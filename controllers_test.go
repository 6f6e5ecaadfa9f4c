package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var eventColumns = []string{
	"id", "user_id", "date", "type", "description",
	"is_shift", "is_passed", "passed_reason", "is_cancelled", "created_by",
}

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	DB = gdb
	return mock
}

func adminContext(t *testing.T, w *httptest.ResponseRecorder, req *http.Request) *gin.Context {
	t.Helper()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set("user_id", adminUserID)
	c.Set("username", "USER")
	c.Set("role", "admin")
	return c
}

func TestListEventsPresentsLabelAndColor(t *testing.T) {
	mock := setupMockDB(t)

	rows := sqlmock.NewRows(eventColumns).
		AddRow(1, 1, "2026-03-10", "ZN 7-13", "", true, false, "", false, "USER").
		AddRow(2, 1, "2026-03-11", "HC Noturno", "", true, true, "passei", false, "USER")
	mock.ExpectQuery(`SELECT \* FROM "events"`).WillReturnRows(rows)

	w := httptest.NewRecorder()
	c := adminContext(t, w, httptest.NewRequest(http.MethodGet, "/api/events", nil))
	ListEvents(c)

	require.Equal(t, http.StatusOK, w.Code)

	var views []EventView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, 2)

	assert.Equal(t, "ZN 7-13", views[0].Label)
	assert.Equal(t, "amber", views[0].Color)
	// passed shifts are greyed out regardless of type
	assert.Equal(t, "gray", views[1].Color)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetZNHoursBillingWindow(t *testing.T) {
	mock := setupMockDB(t)

	rows := sqlmock.NewRows(eventColumns).
		AddRow(1, 1, "2026-03-10", "ZN 7-13", "", true, false, "", false, "").
		AddRow(2, 1, "2026-03-20", "ZN 7-13", "", true, false, "", false, ""). // next window
		AddRow(3, 1, "2026-03-12", "ZN 13-19", "", true, false, "", true, "") // cancelled
	mock.ExpectQuery(`SELECT \* FROM "events"`).WillReturnRows(rows)

	w := httptest.NewRecorder()
	c := adminContext(t, w, httptest.NewRequest(http.MethodGet, "/api/events/zn-hours?month=3&year=2026", nil))
	GetZNHours(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Month      int `json:"month"`
		Year       int `json:"year"`
		TotalHours int `json:"total_hours"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Month)
	assert.Equal(t, 2026, resp.Year)
	assert.Equal(t, 6, resp.TotalHours)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetZNHoursValidatesParams(t *testing.T) {
	setupMockDB(t)

	w := httptest.NewRecorder()
	c := adminContext(t, w, httptest.NewRequest(http.MethodGet, "/api/events/zn-hours?month=13&year=2026", nil))
	GetZNHours(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompareImportAgainstStore(t *testing.T) {
	mock := setupMockDB(t)

	// store holds one shift the export does not mention
	rows := sqlmock.NewRows(eventColumns).
		AddRow(5, 1, "2026-03-09", "Noturno (19-07)", "", true, false, "", false, "")
	mock.ExpectQuery(`SELECT \* FROM "events"`).WillReturnRows(rows)

	csv := strings.Join([]string{
		`start_date,title,place,notes,color`,
		`2026-03-05T07:00:00,"Manhã HC",HC,"",""`,
		`,"linha sem data","","",""`,
	}, "\n")

	req := httptest.NewRequest(http.MethodPost, "/api/comparison", strings.NewReader(csv))
	req.Header.Set("Content-Type", "text/csv")
	w := httptest.NewRecorder()
	c := adminContext(t, w, req)
	CompareImport(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		RunID       string `json:"run_id"`
		Imported    int    `json:"imported"`
		SkippedRows int    `json:"skipped_rows"`
		Result      struct {
			MissingInStore []struct {
				Date string `json:"date"`
				Type string `json:"type"`
			} `json:"missing_in_store"`
			StatusDiffs []interface{} `json:"status_diffs"`
			StoreOnly   []struct {
				ID uint `json:"id"`
			} `json:"store_only"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, 1, resp.Imported)
	assert.Equal(t, 1, resp.SkippedRows)
	require.Len(t, resp.Result.MissingInStore, 1)
	assert.Equal(t, "2026-03-05", resp.Result.MissingInStore[0].Date)
	assert.Equal(t, "HC Manhã", resp.Result.MissingInStore[0].Type)
	assert.Empty(t, resp.Result.StatusDiffs)
	require.Len(t, resp.Result.StoreOnly, 1)
	assert.Equal(t, uint(5), resp.Result.StoreOnly[0].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}
