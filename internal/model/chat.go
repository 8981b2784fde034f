package model

import (
	"time"
)

// ChatMessage guarda el historial del panel de chat, con varias rondas por
// sesión. El rol sigue la convención de la API de Gemini (user | model).
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index" json:"userId"`
	SessionID string    `gorm:"size:50;index" json:"sessionId"`
	TopicID   string    `gorm:"size:120;index" json:"topicId"`
	Role      string    `gorm:"size:20;not null" json:"role"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
