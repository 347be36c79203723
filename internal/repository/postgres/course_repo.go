package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/studyquiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/studyquiz-api/internal/pkg/errors"
)

// CourseRepo реализует repository.CourseRepository
type CourseRepo struct {
	db *gorm.DB
}

// NewCourseRepo создает новый репозиторий курсов
func NewCourseRepo(db *gorm.DB) *CourseRepo {
	return &CourseRepo{db: db}
}

// Create создает новый курс
func (r *CourseRepo) Create(course *entity.Course) error {
	return r.db.Create(course).Error
}

// GetByID возвращает курс по ID
func (r *CourseRepo) GetByID(id uint) (*entity.Course, error) {
	var course entity.Course
	err := r.db.First(&course, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

// ListByUser возвращает все курсы пользователя
func (r *CourseRepo) ListByUser(userID uint) ([]entity.Course, error) {
	var courses []entity.Course
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// CreateChapters создает пакет глав
func (r *CourseRepo) CreateChapters(chapters []entity.Chapter) error {
	return r.db.Create(&chapters).Error
}

// GetChapters возвращает все главы курса в порядке следования
func (r *CourseRepo) GetChapters(courseID uint) ([]entity.Chapter, error) {
	var chapters []entity.Chapter
	err := r.db.Where("course_id = ?", courseID).Order("order_index, id").Find(&chapters).Error
	if err != nil {
		return nil, err
	}
	return chapters, nil
}

// GetChapterByID возвращает главу по ID
func (r *CourseRepo) GetChapterByID(chapterID uint) (*entity.Chapter, error) {
	var chapter entity.Chapter
	err := r.db.First(&chapter, chapterID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &chapter, nil
}

// GetChapterIDs возвращает идентификаторы всех глав курса
func (r *CourseRepo) GetChapterIDs(courseID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&entity.Chapter{}).
		Where("course_id = ?", courseID).
		Order("order_index, id").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
