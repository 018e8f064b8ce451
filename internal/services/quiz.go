package services

import (
	"errors"
	"time"

	"quiz-builder-backend/internal/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

func (s *QuizService) Create(authorID, title, description string) (*models.Quiz, error) {
	var existing models.Quiz
	if err := s.db.Where("title = ?", title).First(&existing).Error; err == nil {
		return nil, ErrTitleTaken
	}

	quiz := models.Quiz{
		Title:       title,
		Description: description,
		CreatedBy:   authorID,
	}
	if err := s.db.Create(&quiz).Error; err != nil {
		return nil, err
	}

	return s.GetByID(quiz.ID)
}

func (s *QuizService) GetByID(quizID string) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.db.Preload("Author").Preload("Questions").
		Where("id = ?", quizID).First(&quiz).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (s *QuizService) ListAll() ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := s.db.Preload("Author").Preload("Questions").
		Order("created_at DESC").
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (s *QuizService) ListByAuthor(authorID string) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := s.db.Where("created_by = ?", authorID).
		Preload("Author").Preload("Questions").
		Order("created_at DESC").
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

// UpdateQuizInput carries the optional fields of a partial quiz update.
// Nil means "leave unchanged".
type UpdateQuizInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (s *QuizService) Update(quizID, callerID string, input UpdateQuizInput) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.db.Where("id = ?", quizID).First(&quiz).Error; err != nil {
		return nil, ErrQuizNotFound
	}
	if quiz.CreatedBy != callerID {
		return nil, ErrNotQuizOwner
	}

	if input.Title != nil && *input.Title != quiz.Title {
		var existing models.Quiz
		if err := s.db.Where("title = ? AND id <> ?", *input.Title, quizID).First(&existing).Error; err == nil {
			return nil, ErrTitleTaken
		}
		quiz.Title = *input.Title
	}
	if input.Description != nil {
		quiz.Description = *input.Description
	}

	if err := s.db.Save(&quiz).Error; err != nil {
		return nil, err
	}
	return s.GetByID(quizID)
}

// Delete removes a quiz with its questions, their choices and any recorded
// scores in a single transaction.
func (s *QuizService) Delete(quizID, callerID string) error {
	var quiz models.Quiz
	if err := s.db.Where("id = ?", quizID).First(&quiz).Error; err != nil {
		return ErrQuizNotFound
	}
	if quiz.CreatedBy != callerID {
		return ErrNotQuizOwner
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id IN (SELECT id FROM questions WHERE quiz_id = ?)", quizID).
			Delete(&models.Choice{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quizID).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quizID).Delete(&models.UserQuizScore{}).Error; err != nil {
			return err
		}
		return tx.Delete(&quiz).Error
	})
}

type QuestionInput struct {
	Prompt      string `json:"prompt"`
	OptionOne   string `json:"option_one"`
	OptionTwo   string `json:"option_two"`
	OptionThree string `json:"option_three"`
	Answer      string `json:"answer"`
}

// AddQuestion creates a question and touches the parent quiz in one
// transaction, then returns the refreshed quiz.
func (s *QuizService) AddQuestion(quizID, callerID string, input QuestionInput) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.db.Where("id = ?", quizID).First(&quiz).Error; err != nil {
		return nil, ErrQuizNotFound
	}
	if quiz.CreatedBy != callerID {
		return nil, ErrNotQuizOwner
	}

	question := models.Question{
		QuizID:      quizID,
		Prompt:      input.Prompt,
		OptionOne:   input.OptionOne,
		OptionTwo:   input.OptionTwo,
		OptionThree: input.OptionThree,
		Answer:      input.Answer,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		return tx.Model(&models.Quiz{}).Where("id = ?", quizID).
			Update("updated_at", time.Now()).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(quizID)
}

// UpdateQuestionInput carries the optional fields of a partial question
// update. Nil means "leave unchanged".
type UpdateQuestionInput struct {
	Prompt      *string `json:"prompt"`
	OptionOne   *string `json:"option_one"`
	OptionTwo   *string `json:"option_two"`
	OptionThree *string `json:"option_three"`
	Answer      *string `json:"answer"`
}

func (s *QuizService) UpdateQuestion(questionID, callerID string, input UpdateQuestionInput) (*models.Question, error) {
	var question models.Question
	if err := s.db.Where("id = ?", questionID).First(&question).Error; err != nil {
		return nil, ErrQuestionNotFound
	}

	var quiz models.Quiz
	if err := s.db.Where("id = ?", question.QuizID).First(&quiz).Error; err != nil {
		return nil, ErrQuizNotFound
	}
	if quiz.CreatedBy != callerID {
		return nil, ErrNotQuizOwner
	}

	if input.Prompt != nil {
		question.Prompt = *input.Prompt
	}
	if input.OptionOne != nil {
		question.OptionOne = *input.OptionOne
	}
	if input.OptionTwo != nil {
		question.OptionTwo = *input.OptionTwo
	}
	if input.OptionThree != nil {
		question.OptionThree = *input.OptionThree
	}
	if input.Answer != nil {
		question.Answer = *input.Answer
	}

	if err := s.db.Save(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// DeleteQuestion removes a question and its choices, then returns the
// refreshed parent quiz. Ownership is checked through the parent.
func (s *QuizService) DeleteQuestion(questionID, callerID string) (*models.Quiz, error) {
	var question models.Question
	if err := s.db.Where("id = ?", questionID).First(&question).Error; err != nil {
		return nil, ErrQuestionNotFound
	}

	var quiz models.Quiz
	if err := s.db.Where("id = ?", question.QuizID).First(&quiz).Error; err != nil {
		return nil, ErrQuizNotFound
	}
	if quiz.CreatedBy != callerID {
		return nil, ErrNotQuizOwner
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", questionID).Delete(&models.Choice{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&question).Error; err != nil {
			return err
		}
		return tx.Model(&models.Quiz{}).Where("id = ?", quiz.ID).
			Update("updated_at", time.Now()).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(quiz.ID)
}
