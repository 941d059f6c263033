package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const dateLayout = "Jan 2, 2006"

type Author struct {
	ID          string     `gorm:"primaryKey;type:uuid" json:"id"`
	FirstName   string     `gorm:"size:100;not null" json:"first_name"`
	FamilyName  string     `gorm:"size:100;not null" json:"family_name"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `gorm:"type:date" json:"date_of_death,omitempty"`
}

func (a *Author) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}

func (Author) TableName() string {
	return "authors"
}

// Name returns "family, first"; empty when either part is missing.
func (a Author) Name() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return a.FamilyName + ", " + a.FirstName
}

// Lifespan formats the known dates as "birth - death".
func (a Author) Lifespan() string {
	var born, died string
	if a.DateOfBirth != nil {
		born = a.DateOfBirth.Format(dateLayout)
	}
	if a.DateOfDeath != nil {
		died = a.DateOfDeath.Format(dateLayout)
	}
	if born == "" && died == "" {
		return ""
	}
	return born + " - " + died
}

func (a Author) URL() string {
	return "/catalog/author/" + a.ID
}
