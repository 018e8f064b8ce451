// Package serializer builds the JSON response shapes for each entity.
// Every entity has one explicit builder; nothing here relies on the models'
// own struct tags, so a row can carry fields the API never exposes.
package serializer

import (
	"math/rand"
	"time"

	"quiz-builder-backend/internal/models"
)

type UserResponse struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Username  string         `json:"username"`
	Quizzes   []QuizResponse `json:"quizzes"`
}

type QuizResponse struct {
	ID          string             `json:"id"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	CreatedBy   string             `json:"created_by"`
	Questions   []QuestionResponse `json:"questions"`
}

type QuestionResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Prompt    string    `json:"prompt"`
	Options   []string  `json:"options"`
	QuizID    string    `json:"quiz_id"`
}

type ChoiceResponse struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	IsCorrect  bool   `json:"is_correct"`
	QuestionID string `json:"question_id"`
}

type ScoreResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	QuizID string `json:"quiz_id"`
	Score  int    `json:"score"`
}

// User inlines the user's full quiz graph.
func User(u *models.User) UserResponse {
	quizzes := make([]QuizResponse, 0, len(u.Quizzes))
	for i := range u.Quizzes {
		quizzes = append(quizzes, quiz(&u.Quizzes[i], u.Username))
	}
	return UserResponse{
		ID:        u.ID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		Username:  u.Username,
		Quizzes:   quizzes,
	}
}

// Quiz expects q.Author to be loaded; created_by carries the author's
// username, not their id.
func Quiz(q *models.Quiz) QuizResponse {
	return quiz(q, q.Author.Username)
}

func Quizzes(qs []models.Quiz) []QuizResponse {
	out := make([]QuizResponse, 0, len(qs))
	for i := range qs {
		out = append(out, Quiz(&qs[i]))
	}
	return out
}

func quiz(q *models.Quiz, createdBy string) QuizResponse {
	questions := make([]QuestionResponse, 0, len(q.Questions))
	for i := range q.Questions {
		questions = append(questions, Question(&q.Questions[i]))
	}
	return QuizResponse{
		ID:          q.ID,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
		Title:       q.Title,
		Description: q.Description,
		CreatedBy:   createdBy,
		Questions:   questions,
	}
}

// Question reshuffles the options on every call so the response never
// reveals which slot holds the answer. Two reads of the same question are
// therefore not comparable by position.
func Question(q *models.Question) QuestionResponse {
	options := []string{q.OptionOne, q.OptionTwo, q.OptionThree, q.Answer}
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return QuestionResponse{
		ID:        q.ID,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
		Prompt:    q.Prompt,
		Options:   options,
		QuizID:    q.QuizID,
	}
}

func Choice(c *models.Choice) ChoiceResponse {
	return ChoiceResponse{
		ID:         c.ID,
		Text:       c.Text,
		IsCorrect:  c.IsCorrect,
		QuestionID: c.QuestionID,
	}
}

func Score(s *models.UserQuizScore) ScoreResponse {
	return ScoreResponse{
		ID:     s.ID,
		UserID: s.UserID,
		QuizID: s.QuizID,
		Score:  s.Score,
	}
}

func Scores(ss []models.UserQuizScore) []ScoreResponse {
	out := make([]ScoreResponse, 0, len(ss))
	for i := range ss {
		out = append(out, Score(&ss[i]))
	}
	return out
}
