package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserQuizScore records one quiz attempt. There is deliberately no unique
// index on (user_id, quiz_id): a user may record any number of scores for
// the same quiz.
type UserQuizScore struct {
	ID     string `gorm:"size:64;primaryKey" json:"id"`
	UserID string `gorm:"size:64;not null;index" json:"user_id"`
	QuizID string `gorm:"size:64;not null;index" json:"quiz_id"`
	Score  int    `gorm:"not null;default:0" json:"score"`
}

func (s *UserQuizScore) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
