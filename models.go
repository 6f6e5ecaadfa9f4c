package main

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is a calendar entry: a professional shift or a personal event.
// Dates are stored as plain YYYY-MM-DD strings so that day comparisons
// never involve a timezone; lexicographic order equals calendar order.
type Event struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"index;not null"`
	Date         string    `json:"date" gorm:"type:varchar(10);index;not null"`
	Type         string    `json:"type" gorm:"type:varchar(100);not null"`
	Description  string    `json:"description"`
	IsShift      bool      `json:"is_shift" gorm:"not null"`
	IsPassed     bool      `json:"is_passed" gorm:"not null"`
	PassedReason string    `json:"passed_reason"`
	IsCancelled  bool      `json:"is_cancelled" gorm:"not null"`
	CreatedBy    string    `json:"created_by" gorm:"type:varchar(50)"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Expense is a fixed or variable monthly bill.
type Expense struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"index;not null"`
	Name      string          `json:"name" gorm:"not null"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	DueDay    int             `json:"due_day" gorm:"not null"`                   // day of month (1-31)
	Category  string          `json:"category" gorm:"type:varchar(16);not null"` // fixed | variable
	IsPaid    bool            `json:"is_paid" gorm:"not null"`
	PaidMonth int             `json:"paid_month"`
	PaidYear  int             `json:"paid_year"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Medication is one item of the daily medication checklist.
type Medication struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Name      string    `json:"name" gorm:"not null"`
	Time      string    `json:"time" gorm:"type:varchar(50);not null"` // Manhã / Tarde / Noite
	Order     int       `json:"order" gorm:"column:sort_order;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// MedicationLog records that a medication was taken on a given day.
type MedicationLog struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"index;not null"`
	MedicationID uint      `json:"medication_id" gorm:"index;not null"`
	TakenAt      time.Time `json:"taken_at" gorm:"autoCreateTime"`
	TakenDate    string    `json:"taken_date" gorm:"type:varchar(10);index;not null"`
}

// DiaryEntry is one private markdown diary page, keyed per user per day.
type DiaryEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index:idx_diary_user_date,unique;not null"`
	Date      string    `json:"date" gorm:"type:varchar(10);index:idx_diary_user_date,unique;not null"`
	Title     string    `json:"title" gorm:"type:varchar(255)"`
	Content   string    `json:"content"`
	Tags      string    `json:"tags" gorm:"type:varchar(500)"` // comma-separated
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserPreference stores per-user display settings.
type UserPreference struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	Theme     string    `json:"theme" gorm:"type:varchar(8);not null"` // light | dark
	UpdatedAt time.Time `json:"updated_at"`
}
