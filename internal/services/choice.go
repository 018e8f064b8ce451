package services

import (
	"errors"

	"quiz-builder-backend/internal/models"

	"gorm.io/gorm"
)

type ChoiceService struct {
	db *gorm.DB
}

func NewChoiceService(db *gorm.DB) *ChoiceService {
	return &ChoiceService{db: db}
}

func (s *ChoiceService) Create(text string, isCorrect bool, questionID string) (*models.Choice, error) {
	var question models.Question
	if err := s.db.Where("id = ?", questionID).First(&question).Error; err != nil {
		return nil, ErrQuestionNotFound
	}

	choice := models.Choice{
		Text:       text,
		IsCorrect:  isCorrect,
		QuestionID: questionID,
	}
	if err := s.db.Create(&choice).Error; err != nil {
		return nil, err
	}
	return &choice, nil
}

func (s *ChoiceService) GetByID(choiceID string) (*models.Choice, error) {
	var choice models.Choice
	err := s.db.Where("id = ?", choiceID).First(&choice).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrChoiceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &choice, nil
}

// UpdateChoiceInput carries the optional fields of a partial choice update.
type UpdateChoiceInput struct {
	Text      *string `json:"text"`
	IsCorrect *bool   `json:"is_correct"`
}

func (s *ChoiceService) Update(choiceID string, input UpdateChoiceInput) (*models.Choice, error) {
	choice, err := s.GetByID(choiceID)
	if err != nil {
		return nil, err
	}

	if input.Text != nil {
		choice.Text = *input.Text
	}
	if input.IsCorrect != nil {
		choice.IsCorrect = *input.IsCorrect
	}

	if err := s.db.Save(choice).Error; err != nil {
		return nil, err
	}
	return choice, nil
}

func (s *ChoiceService) Delete(choiceID string) error {
	choice, err := s.GetByID(choiceID)
	if err != nil {
		return err
	}
	return s.db.Delete(choice).Error
}
