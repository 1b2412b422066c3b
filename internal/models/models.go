package models

import (
	"time"

	"github.com/google/uuid"
)

// SalesRecord is one normalized row of the sales_data table. Its column names
// and types are the contract between the sync pipeline (writer) and the
// dashboard (reader) and must stay stable across versions.
type SalesRecord struct {
	ID                 uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name               string     `json:"name" gorm:"type:varchar(255)"`
	Email              string     `json:"email" gorm:"type:varchar(255)"`
	Number             string     `json:"number" gorm:"type:varchar(50)"`
	CountryName        string     `json:"country_name" gorm:"type:varchar(100)"`
	Remarks            string     `json:"remarks" gorm:"type:text"`
	Agent              string     `json:"agent" gorm:"type:varchar(100)"`
	FirstCallDate      *time.Time `json:"first_call_date" gorm:"type:date"`
	Status             string     `json:"status" gorm:"type:varchar(50)"`
	NotesFromCall      string     `json:"notes_from_call" gorm:"type:text"`
	PostCallEmail      string     `json:"post_call_email" gorm:"type:text"`
	Tags               string     `json:"tags" gorm:"type:text"`
	InterestedCategory string     `json:"interested_category" gorm:"type:varchar(100)"`
	SalesStatus        string     `json:"sales_status" gorm:"type:varchar(50)"`
	SalesAmount        float64    `json:"sales_amount" gorm:"type:numeric(10,2)"`
	NextFollowUpTime   string     `json:"next_follow_up_time" gorm:"type:varchar(50)"`
	NextFollowUpDate   *time.Time `json:"next_follow_up_date" gorm:"type:date"`
	CallingStamp       *time.Time `json:"calling_stamp" gorm:"column:Calling_Stamp;type:date"`
	SignupDate         *time.Time `json:"signup_date" gorm:"column:Signup_Date;type:date"`
}

// TableName pins the destination table; the dashboard queries it by this name.
func (SalesRecord) TableName() string {
	return "sales_data"
}

// SyncRun records one pipeline execution for observability. Runs are kept
// in memory only and discarded on restart.
type SyncRun struct {
	ID         uuid.UUID `json:"id"`
	Trigger    string    `json:"trigger"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	RowCount   int       `json:"row_count"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
}

// SyncRequest is the webhook payload. The message describes the trigger cause
// and is recorded as-is; it is not otherwise validated or trusted.
type SyncRequest struct {
	Message string `json:"message"`
}
