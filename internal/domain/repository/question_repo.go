package repository

import (
	"github.com/yourusername/studyquiz-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	CreateBatch(questions []entity.Question) error
	GetByChapterID(chapterID uint) ([]entity.Question, error)

	// GetExamByChapterIDs возвращает все exam-вопросы перечисленных глав.
	// Для пустого набора глав возвращает пустой срез без обращения к базе.
	GetExamByChapterIDs(chapterIDs []uint) ([]entity.Question, error)
}
