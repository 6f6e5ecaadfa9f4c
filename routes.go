package main

import "github.com/gin-gonic/gin"

func SetupRoutes(r *gin.Engine) {

	// Public Routes
	r.POST("/login", Login)

	// Protected Routes
	authorized := r.Group("/api")
	authorized.Use(AuthMiddleware())
	{
		authorized.GET("/me", Me)

		// EVENTS (shared agenda: trainers read and schedule on the
		// admin calendar)
		authorized.GET("/events", ListEvents)
		authorized.GET("/events/range", ListEventsByRange)
		authorized.GET("/events/zn-hours", GetZNHours)
		authorized.POST("/events", CreateEvent)
		authorized.PUT("/events/:id", UpdateEvent)
		authorized.DELETE("/events/:id", DeleteEvent)
		authorized.POST("/events/:id/pass", PassShift)
		authorized.POST("/events/:id/unpass", AdminOnly(), UndoPass)
		authorized.POST("/events/:id/cancel", CancelEvent)
		authorized.POST("/events/:id/uncancel", UndoCancelEvent)

		// IMPORT RECONCILIATION
		authorized.POST("/comparison", AdminOnly(), CompareImport)

		// PREFERENCES
		authorized.GET("/preferences", GetPreferences)
		authorized.PUT("/preferences/theme", SetTheme)

		admin := authorized.Group("")
		admin.Use(AdminOnly())
		{
			// EXPENSES
			admin.GET("/expenses", ListExpenses)
			admin.POST("/expenses", CreateExpense)
			admin.PUT("/expenses/:id", UpdateExpense)
			admin.DELETE("/expenses/:id", DeleteExpense)
			admin.POST("/expenses/:id/toggle-paid", ToggleExpensePaid)
			// not under /expenses: a static segment there would clash
			// with the :id wildcard
			admin.POST("/expenses-reset-paid", ResetExpensesPaid)

			// MEDICATIONS
			admin.GET("/medications", ListMedications)
			admin.POST("/medications", CreateMedication)
			admin.PUT("/medications/:id", UpdateMedication)
			admin.DELETE("/medications/:id", DeleteMedication)
			admin.GET("/medications/logs", GetMedicationLogs)
			admin.POST("/medications/:id/taken", LogMedicationTaken)
			admin.DELETE("/medications/:id/taken", UndoMedicationTaken)

			// DIARY
			admin.GET("/diary", GetDiaryEntry)
			admin.PUT("/diary", SaveDiaryEntry)
			admin.DELETE("/diary", DeleteDiaryEntry)
			admin.GET("/diary/entries", ListDiaryEntries)
			admin.GET("/diary/search", SearchDiary)
			admin.GET("/diary/tags", ListDiaryTags)
			admin.GET("/diary/by-tag", DiaryEntriesByTag)
		}
	}
}
