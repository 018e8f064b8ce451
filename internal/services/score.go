package services

import (
	"quiz-builder-backend/internal/models"

	"gorm.io/gorm"
)

type ScoreService struct {
	db *gorm.DB
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{db: db}
}

func (s *ScoreService) Create(userID, quizID string, score int) (*models.UserQuizScore, error) {
	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}

	var quiz models.Quiz
	if err := s.db.Where("id = ?", quizID).First(&quiz).Error; err != nil {
		return nil, ErrQuizNotFound
	}

	record := models.UserQuizScore{
		UserID: userID,
		QuizID: quizID,
		Score:  score,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *ScoreService) ListByUser(userID string) ([]models.UserQuizScore, error) {
	var scores []models.UserQuizScore
	if err := s.db.Where("user_id = ?", userID).Find(&scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}
