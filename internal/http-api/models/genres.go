package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Genre struct {
	ID   string `json:"id" gorm:"primaryKey;type:uuid"`
	Name string `json:"name" gorm:"size:100;unique;not null"`
}

func (g *Genre) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	return
}

func (Genre) TableName() string {
	return "genres"
}

func (g Genre) URL() string {
	return "/catalog/genre/" + g.ID
}
