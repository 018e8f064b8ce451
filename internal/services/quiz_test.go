package services

import (
	"errors"
	"testing"

	"quiz-builder-backend/internal/models"
)

func strptr(s string) *string { return &s }

func TestCreateQuizAndRetrieve(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db)
	alice := createTestUser(t, db, "alice")

	quiz, err := svc.Create(alice.ID, "T1", "first quiz")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if quiz.ID == "" {
		t.Fatal("quiz created without an id")
	}
	if quiz.Author.Username != "alice" {
		t.Fatalf("author = %q, want %q", quiz.Author.Username, "alice")
	}

	got, err := svc.GetByID(quiz.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "T1" || got.Description != "first quiz" {
		t.Fatalf("unexpected quiz: %+v", got)
	}

	mine, err := svc.ListByAuthor(alice.ID)
	if err != nil {
		t.Fatalf("ListByAuthor: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != quiz.ID {
		t.Fatalf("ListByAuthor = %+v, want the created quiz", mine)
	}
}

func TestCreateQuizDuplicateTitle(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	if _, err := svc.Create(alice.ID, "T1", "d"); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if _, err := svc.Create(bob.ID, "T1", "d"); !errors.Is(err, ErrTitleTaken) {
		t.Fatalf("duplicate Create = %v, want ErrTitleTaken", err)
	}

	var count int64
	db.Model(&models.Quiz{}).Count(&count)
	if count != 1 {
		t.Fatalf("quiz count = %d, want 1", count)
	}
}

func TestUpdateQuizPartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db)
	alice := createTestUser(t, db, "alice")

	quiz, err := svc.Create(alice.ID, "T1", "original description")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(quiz.ID, alice.ID, UpdateQuizInput{Title: strptr("T2")})
	if err != nil {
		t.Fatalf("Update title: %v", err)
	}
	if updated.Title != "T2" || updated.Description != "original description" {
		t.Fatalf("title-only update changed description: %+v", updated)
	}

	updated, err = svc.Update(quiz.ID, alice.ID, UpdateQuizInput{Description: strptr("new description")})
	if err != nil {
		t.Fatalf("Update description: %v", err)
	}
	if updated.Title != "T2" || updated.Description != "new description" {
		t.Fatalf("description-only update changed title: %+v", updated)
	}
}

func TestUpdateQuizOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	quiz, err := svc.Create(alice.ID, "T1", "d")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Update(quiz.ID, bob.ID, UpdateQuizInput{Title: strptr("stolen")}); !errors.Is(err, ErrNotQuizOwner) {
		t.Fatalf("Update by non-owner = %v, want ErrNotQuizOwner", err)
	}

	got, _ := svc.GetByID(quiz.ID)
	if got.Title != "T1" {
		t.Fatalf("title changed by rejected update: %q", got.Title)
	}
}

func TestDeleteQuizOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	quiz, err := svc.Create(alice.ID, "T1", "d")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.AddQuestion(quiz.ID, alice.ID, QuestionInput{
		Prompt: "p", OptionOne: "a", OptionTwo: "b", OptionThree: "c", Answer: "d",
	}); err != nil {
		t.Fatalf("AddQuestion: %v", err)
	}

	if err := svc.Delete(quiz.ID, bob.ID); !errors.Is(err, ErrNotQuizOwner) {
		t.Fatalf("Delete by non-owner = %v, want ErrNotQuizOwner", err)
	}

	got, err := svc.GetByID(quiz.ID)
	if err != nil {
		t.Fatalf("quiz gone after rejected delete: %v", err)
	}
	if len(got.Questions) != 1 {
		t.Fatalf("questions = %d after rejected delete, want 1", len(got.Questions))
	}
}

func TestDeleteQuizCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db)
	choiceSvc := NewChoiceService(db)
	scoreSvc := NewScoreService(db)
	alice := createTestUser(t, db, "alice")

	quiz, err := svc.Create(alice.ID, "T1", "d")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	updated, err := svc.AddQuestion(quiz.ID, alice.ID, QuestionInput{
		Prompt: "p", OptionOne: "a", OptionTwo: "b", OptionThree: "c", Answer: "d",
	})
	if err != nil {
		t.Fatalf("AddQuestion: %v", err)
	}
	questionID := updated.Questions[0].ID

	if _, err := choiceSvc.Create("a", true, questionID); err != nil {
		t.Fatalf("create choice: %v", err)
	}
	if _, err := scoreSvc.Create(alice.ID, quiz.ID, 5); err != nil {
		t.Fatalf("create score: %v", err)
	}

	if err := svc.Delete(quiz.ID, alice.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var questions, choices, scores int64
	db.Model(&models.Question{}).Where("quiz_id = ?", quiz.ID).Count(&questions)
	db.Model(&models.Choice{}).Where("question_id = ?", questionID).Count(&choices)
	db.Model(&models.UserQuizScore{}).Where("quiz_id = ?", quiz.ID).Count(&scores)
	if questions != 0 || choices != 0 || scores != 0 {
		t.Fatalf("cascade left rows behind: questions=%d choices=%d scores=%d", questions, choices, scores)
	}
}

func TestAddQuestionOwnershipAndMissingQuiz(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	quiz, err := svc.Create(alice.ID, "T1", "d")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	input := QuestionInput{Prompt: "p", OptionOne: "a", OptionTwo: "b", OptionThree: "c", Answer: "d"}

	if _, err := svc.AddQuestion(quiz.ID, bob.ID, input); !errors.Is(err, ErrNotQuizOwner) {
		t.Fatalf("AddQuestion by non-owner = %v, want ErrNotQuizOwner", err)
	}
	if _, err := svc.AddQuestion("missing-id", alice.ID, input); !errors.Is(err, ErrQuizNotFound) {
		t.Fatalf("AddQuestion on missing quiz = %v, want ErrQuizNotFound", err)
	}
}

func TestUpdateQuestionPartialAndTransitiveOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	quiz, err := svc.Create(alice.ID, "T1", "d")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	updated, err := svc.AddQuestion(quiz.ID, alice.ID, QuestionInput{
		Prompt: "p", OptionOne: "a", OptionTwo: "b", OptionThree: "c", Answer: "d",
	})
	if err != nil {
		t.Fatalf("AddQuestion: %v", err)
	}
	questionID := updated.Questions[0].ID

	// Ownership is checked through the parent quiz.
	if _, err := svc.UpdateQuestion(questionID, bob.ID, UpdateQuestionInput{Prompt: strptr("hacked")}); !errors.Is(err, ErrNotQuizOwner) {
		t.Fatalf("UpdateQuestion by non-owner = %v, want ErrNotQuizOwner", err)
	}

	question, err := svc.UpdateQuestion(questionID, alice.ID, UpdateQuestionInput{Answer: strptr("e")})
	if err != nil {
		t.Fatalf("UpdateQuestion: %v", err)
	}
	if question.Answer != "e" || question.Prompt != "p" || question.OptionOne != "a" {
		t.Fatalf("partial update touched other fields: %+v", question)
	}
}

func TestDeleteQuestionReturnsRefreshedQuiz(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db)
	alice := createTestUser(t, db, "alice")

	quiz, err := svc.Create(alice.ID, "T1", "d")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	updated, err := svc.AddQuestion(quiz.ID, alice.ID, QuestionInput{
		Prompt: "p", OptionOne: "a", OptionTwo: "b", OptionThree: "c", Answer: "d",
	})
	if err != nil {
		t.Fatalf("AddQuestion: %v", err)
	}

	after, err := svc.DeleteQuestion(updated.Questions[0].ID, alice.ID)
	if err != nil {
		t.Fatalf("DeleteQuestion: %v", err)
	}
	if len(after.Questions) != 0 {
		t.Fatalf("questions = %d after delete, want 0", len(after.Questions))
	}

	if _, err := svc.DeleteQuestion("missing-id", alice.ID); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("DeleteQuestion on missing id = %v, want ErrQuestionNotFound", err)
	}
}
