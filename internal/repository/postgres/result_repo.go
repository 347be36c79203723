package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/studyquiz-api/internal/domain/entity"
)

// ResultRepo реализует repository.ResultRepository
type ResultRepo struct {
	db *gorm.DB
}

// NewResultRepo создает новый репозиторий результатов
func NewResultRepo(db *gorm.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// Create сохраняет итоговый результат квиза
func (r *ResultRepo) Create(result *entity.QuizResult) error {
	return r.db.Create(result).Error
}

// GetRecentByUser возвращает последние результаты пользователя (новые первыми)
func (r *ResultRepo) GetRecentByUser(userID uint, limit int) ([]entity.QuizResult, error) {
	var results []entity.QuizResult
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
