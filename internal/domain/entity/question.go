package entity

import (
	"time"
)

// Типы вопросов. В генерацию квизов попадают только вопросы типа "exam",
// остальные типы (например, flashcard) обслуживаются другими подсистемами.
const (
	QuestionTypeExam      = "exam"
	QuestionTypeFlashcard = "flashcard"
)

// Question представляет вопрос, привязанный к главе курса.
// Вопросы создаются внешним генератором и с точки зрения движка неизменяемы.
type Question struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ChapterID       uint      `gorm:"not null;index" json:"chapter_id"`
	Type            string    `gorm:"size:20;not null;default:'exam';index" json:"type"`
	Text            string    `gorm:"type:text;not null" json:"text"`
	SuggestedAnswer string    `gorm:"type:text;not null;default:''" json:"suggested_answer"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// IsExam проверяет, является ли вопрос экзаменационным
func (q *Question) IsExam() bool {
	return q.Type == QuestionTypeExam
}

// IsValidType проверяет, что тип вопроса известен системе
func (q *Question) IsValidType() bool {
	return q.Type == QuestionTypeExam || q.Type == QuestionTypeFlashcard
}
