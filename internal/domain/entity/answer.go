package entity

import (
	"time"
)

// Answer представляет вариант ответа на вопрос
type Answer struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	QuestionID  int       `gorm:"not null;index" json:"question_id"`
	AnswerNo    string    `gorm:"size:1;not null" json:"answer_no"` // Одна буква: A, B, C, D...
	Description string    `gorm:"type:text;not null" json:"description"`
	IsCorrect   bool      `gorm:"not null" json:"is_correct"`
	Question    *Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"` // Только для чтения
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Answer) TableName() string {
	return "answers"
}

