package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InstanceStatus string

const (
	StatusAvailable   InstanceStatus = "Available"
	StatusMaintenance InstanceStatus = "Maintenance"
	StatusLoaned      InstanceStatus = "Loaned"
	StatusReserved    InstanceStatus = "Reserved"
)

// InstanceStatuses is the closed set of copy states, in display order.
var InstanceStatuses = []InstanceStatus{StatusAvailable, StatusMaintenance, StatusLoaned, StatusReserved}

// ParseInstanceStatus matches s against the known statuses exactly.
func ParseInstanceStatus(s string) (InstanceStatus, bool) {
	for _, st := range InstanceStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

type BookInstance struct {
	ID      string         `json:"id" gorm:"primaryKey;type:uuid"`
	BookID  string         `json:"book_id" gorm:"type:uuid;not null;index"`
	Imprint string         `json:"imprint" gorm:"not null"`
	Status  InstanceStatus `json:"status" gorm:"size:20;not null"`
	DueBack *time.Time     `json:"due_back,omitempty" gorm:"type:date"`

	Book *Book `json:"book,omitempty" gorm:"foreignKey:BookID;constraint:OnDelete:RESTRICT;"`
}

// BeforeCreate sets the UUID and falls back to Maintenance for a blank status.
func (bi *BookInstance) BeforeCreate(tx *gorm.DB) (err error) {
	if bi.ID == "" {
		bi.ID = uuid.New().String()
	}
	if bi.Status == "" {
		bi.Status = StatusMaintenance
	}
	return
}

func (BookInstance) TableName() string {
	return "book_instances"
}

func (bi BookInstance) URL() string {
	return "/catalog/bookinstance/" + bi.ID
}

// DueBackFormatted renders the due date or an empty string.
func (bi BookInstance) DueBackFormatted() string {
	if bi.DueBack == nil {
		return ""
	}
	return bi.DueBack.Format(dateLayout)
}
