package repository

import (
	"github.com/yourusername/studyquiz-api/internal/domain/entity"
)

// CourseRepository определяет методы для работы с курсами и главами
type CourseRepository interface {
	Create(course *entity.Course) error
	GetByID(id uint) (*entity.Course, error)
	ListByUser(userID uint) ([]entity.Course, error)

	// Методы для работы с главами курса
	CreateChapters(chapters []entity.Chapter) error
	GetChapters(courseID uint) ([]entity.Chapter, error)
	GetChapterByID(chapterID uint) (*entity.Chapter, error)

	// GetChapterIDs возвращает идентификаторы всех глав курса ("вселенная курса")
	GetChapterIDs(courseID uint) ([]uint, error)
}
