package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// AnswerMap asocia el índice de pregunta con la opción elegida (nil = sin
// responder). Se almacena como columna JSON.
type AnswerMap map[int]*int

func (m AnswerMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *AnswerMap) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		*m = AnswerMap{}
		return nil
	default:
		return errors.New("unsupported type for AnswerMap")
	}
	if len(data) == 0 {
		*m = AnswerMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}

// QuizAttempt es el único registro permitido por (usuario, quiz); el índice
// único cierra la carrera entre dos sesiones concurrentes.
// swagger:model QuizAttempt
type QuizAttempt struct {
	BaseModel
	UserID   uint      `gorm:"uniqueIndex:idx_user_quiz;not null" json:"userId"`
	QuizID   string    `gorm:"size:120;uniqueIndex:idx_user_quiz;not null" json:"quizId"`
	CourseID string    `gorm:"size:120;index" json:"courseId"`
	Score    int       `gorm:"not null" json:"score"` // 0..100
	Answers  AnswerMap `gorm:"type:json" json:"answers"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
