package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Quiz struct {
	ID          string     `gorm:"size:64;primaryKey" json:"id"`
	Title       string     `gorm:"size:64;uniqueIndex;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	CreatedBy   string     `gorm:"size:64;not null;index" json:"created_by"`
	Author      User       `gorm:"foreignKey:CreatedBy;constraint:OnDelete:CASCADE" json:"-"`
	Questions   []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (q *Quiz) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}
