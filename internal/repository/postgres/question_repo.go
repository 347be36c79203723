package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/studyquiz-api/internal/domain/entity"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// CreateBatch создает пакет вопросов
func (r *QuestionRepo) CreateBatch(questions []entity.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Устанавливаем кодировку UTF-8 внутри транзакции
		if err := tx.Exec("SET CLIENT_ENCODING TO 'UTF8'").Error; err != nil {
			return err
		}
		return tx.Create(&questions).Error
	})
}

// GetByChapterID возвращает все вопросы главы
func (r *QuestionRepo) GetByChapterID(chapterID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("chapter_id = ?", chapterID).Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// GetExamByChapterIDs возвращает exam-вопросы перечисленных глав
func (r *QuestionRepo) GetExamByChapterIDs(chapterIDs []uint) ([]entity.Question, error) {
	if len(chapterIDs) == 0 {
		return []entity.Question{}, nil
	}

	var questions []entity.Question
	err := r.db.Where("chapter_id IN ? AND type = ?", chapterIDs, entity.QuestionTypeExam).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}
