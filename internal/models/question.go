package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Question struct {
	ID          string    `gorm:"size:64;primaryKey" json:"id"`
	QuizID      string    `gorm:"size:64;index" json:"quiz_id"`
	Prompt      string    `gorm:"type:text;not null" json:"prompt"`
	OptionOne   string    `gorm:"size:255;not null" json:"option_one"`
	OptionTwo   string    `gorm:"size:255;not null" json:"option_two"`
	OptionThree string    `gorm:"size:255;not null" json:"option_three"`
	Answer      string    `gorm:"size:255" json:"answer"`
	Choices     []Choice  `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"choices,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}
