package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Choice struct {
	ID         string `gorm:"size:64;primaryKey" json:"id"`
	Text       string `gorm:"size:200;not null" json:"text"`
	IsCorrect  bool   `gorm:"not null;default:false" json:"is_correct"`
	QuestionID string `gorm:"size:64;not null;index" json:"question_id"`
}

func (c *Choice) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
