package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// AnswerRecord представляет один ответ пользователя внутри результата квиза.
// Правильность ответа указывается самим пользователем (самооценка),
// движок не проверяет свободный текст.
type AnswerRecord struct {
	QuestionID uint   `json:"question_id"`
	ChapterID  uint   `json:"chapter_id"`
	UserAnswer string `json:"user_answer"`
	IsCorrect  bool   `json:"is_correct"`
	IsReview   bool   `json:"is_review"`
}

// AnswerRecordArray - пользовательский тип для хранения ответов в JSONB
type AnswerRecordArray []AnswerRecord

// Scan реализует интерфейс sql.Scanner для AnswerRecordArray
func (a *AnswerRecordArray) Scan(value interface{}) error {
	if value == nil {
		*a = AnswerRecordArray{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	if len(bytes) == 0 {
		*a = AnswerRecordArray{}
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Value реализует интерфейс driver.Valuer для AnswerRecordArray
func (a AnswerRecordArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// CountCorrect возвращает количество ответов, отмеченных пользователем как правильные
func (a AnswerRecordArray) CountCorrect() int {
	count := 0
	for _, answer := range a {
		if answer.IsCorrect {
			count++
		}
	}
	return count
}

// ContainsReview проверяет, есть ли среди ответов повторяемый материал
func (a AnswerRecordArray) ContainsReview() bool {
	for _, answer := range a {
		if answer.IsReview {
			return true
		}
	}
	return false
}

// ChapterIDs возвращает идентификаторы глав, из которых были вопросы
func (a AnswerRecordArray) ChapterIDs() []uint {
	ids := make([]uint, 0, len(a))
	for _, answer := range a {
		ids = append(ids, answer.ChapterID)
	}
	return ids
}

// QuizResult представляет итоговый результат прохождения квиза.
// Это единственный артефакт обратной связи: политика отбора читает
// последние результаты, чтобы решить, какой материал поднять на повторение.
type QuizResult struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	UserID         uint              `gorm:"not null;index" json:"user_id"`
	SessionID      *uint             `gorm:"index" json:"session_id,omitempty"`
	Answers        AnswerRecordArray `gorm:"type:jsonb;not null" json:"answers"`
	Score          float64           `gorm:"not null;default:0" json:"score"`
	IncludesReview bool              `gorm:"not null;default:false" json:"includes_review"`
	CreatedAt      time.Time         `gorm:"index" json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (QuizResult) TableName() string {
	return "quiz_results"
}
