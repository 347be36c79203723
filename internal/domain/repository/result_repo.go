package repository

import (
	"github.com/yourusername/studyquiz-api/internal/domain/entity"
)

// ResultRepository определяет методы для работы с результатами квизов
type ResultRepository interface {
	Create(result *entity.QuizResult) error

	// GetRecentByUser возвращает последние результаты пользователя,
	// отсортированные от новых к старым.
	GetRecentByUser(userID uint, limit int) ([]entity.QuizResult, error)
}
