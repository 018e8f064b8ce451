package services

import "errors"

// Sentinel errors returned by the service layer. Handlers map these onto
// HTTP statuses with errors.Is.
var (
	ErrUserNotFound       = errors.New("user does not exist")
	ErrQuizNotFound       = errors.New("quiz does not exist")
	ErrQuestionNotFound   = errors.New("question does not exist")
	ErrChoiceNotFound     = errors.New("choice does not exist")
	ErrTitleTaken         = errors.New("that title is already in use")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotQuizOwner       = errors.New("not the quiz owner")
)
