package util

import "errors"

var (
	ErrUserNotFound        = errors.New("el usuario no existe")
	ErrEmailRegistered     = errors.New("este correo ya está registrado")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrTopicNotFound       = errors.New("topic not found")
	ErrQuizNotFound        = errors.New("quiz not found")
	ErrAssignmentNotFound  = errors.New("assignment not found")
	ErrAnswerRequired      = errors.New("la pregunta actual no tiene respuesta")
	ErrQuizFinished        = errors.New("quiz already finished")
	ErrAlreadyAttempted    = errors.New("quiz already attempted")
	ErrAlreadySubmitted    = errors.New("assignment already submitted")
	ErrEmptySubmission     = errors.New("la entrega no puede estar vacía")
	ErrSaveInFlight        = errors.New("save already in progress")
	ErrInvalidFileType     = errors.New("solo se permiten archivos PDF, ZIP o DOCX")
	ErrUnsupportedLanguage = errors.New("unsupported curriculum language")
)
