package entity

import (
	"time"
)

// Question представляет вопрос банка вопросов
type Question struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Type        string    `gorm:"size:50;not null" json:"type"`
	Description string    `gorm:"type:text;not null" json:"description"`
	URL         *string   `gorm:"column:url;size:2048" json:"url"` // Опционально (картинка, видео и т.п.)
	Answers     []Answer  `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// HasURL сообщает, задан ли у вопроса непустой URL
func (q *Question) HasURL() bool {
	return q.URL != nil && *q.URL != ""
}
