package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/yourusername/studyquiz-api/internal/domain/entity"
	"github.com/yourusername/studyquiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/studyquiz-api/internal/pkg/errors"
)

// CourseService предоставляет методы для работы с курсами, главами и вопросами
type CourseService struct {
	courseRepo   repository.CourseRepository
	questionRepo repository.QuestionRepository
	cacheRepo    repository.CacheRepository
}

// NewCourseService создает новый сервис курсов
func NewCourseService(
	courseRepo repository.CourseRepository,
	questionRepo repository.QuestionRepository,
	cacheRepo repository.CacheRepository,
) *CourseService {
	return &CourseService{
		courseRepo:   courseRepo,
		questionRepo: questionRepo,
		cacheRepo:    cacheRepo,
	}
}

// CreateCourse создает новый курс для пользователя
func (s *CourseService) CreateCourse(userID uint, title, description string) (*entity.Course, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", apperrors.ErrValidation)
	}

	course := &entity.Course{
		UserID:      userID,
		Title:       title,
		Description: description,
	}

	if err := s.courseRepo.Create(course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	return course, nil
}

// ListCourses возвращает все курсы пользователя
func (s *CourseService) ListCourses(userID uint) ([]entity.Course, error) {
	return s.courseRepo.ListByUser(userID)
}

// GetChapters возвращает главы курса. Чужой курс недоступен.
func (s *CourseService) GetChapters(userID, courseID uint) ([]entity.Chapter, error) {
	if _, err := s.getOwnedCourse(userID, courseID); err != nil {
		return nil, err
	}
	return s.courseRepo.GetChapters(courseID)
}

// AddChapters добавляет главы к курсу и сбрасывает кеш списка глав
func (s *CourseService) AddChapters(userID, courseID uint, titles []string) ([]entity.Chapter, error) {
	if len(titles) == 0 {
		return nil, fmt.Errorf("%w: no chapters provided", apperrors.ErrValidation)
	}

	if _, err := s.getOwnedCourse(userID, courseID); err != nil {
		return nil, err
	}

	existing, err := s.courseRepo.GetChapters(courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get existing chapters: %w", err)
	}

	chapters := make([]entity.Chapter, 0, len(titles))
	for i, title := range titles {
		if strings.TrimSpace(title) == "" {
			return nil, fmt.Errorf("%w: chapter title #%d is empty", apperrors.ErrValidation, i+1)
		}
		chapters = append(chapters, entity.Chapter{
			CourseID:   courseID,
			Title:      title,
			OrderIndex: len(existing) + i,
		})
	}

	if err := s.courseRepo.CreateChapters(chapters); err != nil {
		return nil, fmt.Errorf("failed to create chapters: %w", err)
	}

	// Сбрасываем кеш вселенной курса, чтобы селектор увидел новые главы
	if s.cacheRepo != nil {
		cacheKey := fmt.Sprintf("course:%d:chapters", courseID)
		if err := s.cacheRepo.Delete(cacheKey); err != nil {
			log.Printf("[CourseService] WARNING: Не удалось сбросить кеш глав курса %d: %v", courseID, err)
		}
	}

	log.Printf("[CourseService] Добавлено %d глав к курсу #%d", len(chapters), courseID)
	return chapters, nil
}

// UploadQuestions загружает пакет вопросов в главу.
// Вопросы считаются уже сгенерированными извне, здесь только валидация и сохранение.
func (s *CourseService) UploadQuestions(userID, chapterID uint, questions []entity.Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("%w: no questions provided", apperrors.ErrValidation)
	}

	chapter, err := s.courseRepo.GetChapterByID(chapterID)
	if err != nil {
		return err
	}
	if _, err := s.getOwnedCourse(userID, chapter.CourseID); err != nil {
		return err
	}

	// Проверяем все вопросы до записи
	for i := range questions {
		questions[i].ChapterID = chapterID
		if questions[i].Type == "" {
			questions[i].Type = entity.QuestionTypeExam
		}
		if !questions[i].IsValidType() {
			return fmt.Errorf("%w: unknown question type %q for question #%d", apperrors.ErrValidation, questions[i].Type, i+1)
		}
		if strings.TrimSpace(questions[i].Text) == "" {
			return fmt.Errorf("%w: question #%d has empty text", apperrors.ErrValidation, i+1)
		}
	}

	if err := s.questionRepo.CreateBatch(questions); err != nil {
		log.Printf("[CourseService] Ошибка при загрузке вопросов в главу #%d: %v", chapterID, err)
		return fmt.Errorf("failed to upload questions: %w", err)
	}

	log.Printf("[CourseService] Загружено %d вопросов в главу #%d", len(questions), chapterID)
	return nil
}

// getOwnedCourse возвращает курс, если он существует и принадлежит пользователю
func (s *CourseService) getOwnedCourse(userID, courseID uint) (*entity.Course, error) {
	course, err := s.courseRepo.GetByID(courseID)
	if err != nil {
		return nil, err
	}
	if !course.IsOwnedBy(userID) {
		return nil, fmt.Errorf("%w: course %d belongs to another user", apperrors.ErrForbidden, courseID)
	}
	return course, nil
}
